// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/platefront/platefront/internal/config"
	"github.com/platefront/platefront/internal/db"
	"github.com/platefront/platefront/internal/media"
	"github.com/platefront/platefront/internal/models"
	"github.com/platefront/platefront/internal/palette"
	"github.com/platefront/platefront/internal/themes"
	"github.com/platefront/platefront/internal/uploads"
)

// draftSink writes an extracted palette through to the draft's stored
// colors and the live preview surface for the same draft.
type draftSink struct {
	draftID uint
}

func (s draftSink) SetFormColors(p palette.Palette) error {
	return db.GetDB().Model(&models.Draft{}).Where("id = ?", s.draftID).
		Updates(map[string]interface{}{
			"primary_color":   p.Primary,
			"secondary_color": p.Secondary,
			"accent_color":    p.Accent,
		}).Error
}

func (s draftSink) SetPreviewColors(p palette.Palette) error {
	previewStore.Set(s.draftID, p)
	return nil
}

func extractionOptions() palette.Options {
	return palette.Options{
		Quality:        config.GetInt("extraction.quality"),
		AlphaThreshold: config.GetInt("extraction.alpha_threshold"),
		MinContrast:    config.GetFloat("extraction.min_contrast"),
	}
}

func draftUploadDir(draftID uint) string {
	uploadsDir := config.GetString("storage.uploads_dir")
	if uploadsDir == "" {
		uploadsDir = filepath.Join(os.TempDir(), "platefront-uploads")
	}
	return filepath.Join(uploadsDir, "draft-"+strconv.FormatUint(uint64(draftID), 10))
}

// UploadLogoHandler accepts a logo image, saves it, derives the theme
// palette from it, and applies that palette to the draft. Each upload
// supersedes any still-running extraction for the same draft.
func UploadLogoHandler(c *gin.Context) {
	draft, ok := loadDraft(c)
	if !ok {
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo file is required"})
		return
	}

	if !uploads.IsImageUpload(file) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "logo must be an image"})
		return
	}

	// Claim the extraction slot before any slow work so a faster
	// follow-up upload can supersede this one.
	generation := themeApplier.Begin(draft.ID)

	logoPath, err := uploads.SaveLogo(file, draftUploadDir(draft.ID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store logo"})
		return
	}

	reader, err := os.Open(logoPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read stored logo"})
		return
	}
	defer reader.Close()

	extracted, err := logoExtractor.ExtractFromReader(reader, extractionOptions())
	if err != nil {
		// Keep the upload but leave the current theme untouched
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not decode logo image"})
		return
	}

	thumbnailPath := logoPath + ".preview.png"
	if err := media.GenerateLogoPreview(logoPath, thumbnailPath); err != nil {
		log.Printf("thumbnail generation failed for draft %d: %v", draft.ID, err)
		thumbnailPath = ""
	}

	if err := themeApplier.Apply(draft.ID, generation, extracted, draftSink{draftID: draft.ID}); err != nil {
		if errors.Is(err, themes.ErrStalePalette) {
			c.JSON(http.StatusConflict, gin.H{"error": "a newer logo upload superseded this one"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply palette"})
		return
	}

	update := map[string]interface{}{"logo_path": logoPath}
	if thumbnailPath != "" {
		update["thumbnail_path"] = thumbnailPath
	}
	if err := db.GetDB().Model(&models.Draft{}).Where("id = ?", draft.ID).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record logo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"palette":       extracted,
		"logoPath":      logoPath,
		"thumbnailPath": thumbnailPath,
	})
}
