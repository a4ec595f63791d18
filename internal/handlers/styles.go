package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/platefront/platefront/internal/db"
	"github.com/platefront/platefront/internal/models"
	"github.com/platefront/platefront/internal/palette"
	"github.com/platefront/platefront/internal/themes"
)

// ThemeCSSHandler serves the draft's live theme stylesheet. The preview
// pane links this once and picks up palette changes through the CSS
// custom properties it defines.
func ThemeCSSHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "/* draft not found */")
		return
	}
	draftID := uint(id)

	current, ok := previewStore.Lookup(draftID)
	if !ok {
		// Cold cache after a restart: fall back to the stored form
		// state, which the preview must always agree with.
		var draft models.Draft
		if err := db.GetDB().First(&draft, draftID).Error; err != nil {
			c.String(http.StatusNotFound, "/* draft not found */")
			return
		}
		current = palette.Palette{
			Primary:   draft.PrimaryColor,
			Secondary: draft.SecondaryColor,
			Accent:    draft.AccentColor,
		}
		previewStore.Set(draftID, current)
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(themes.GenerateThemeCSS(current)))
}
