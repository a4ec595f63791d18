// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/platefront/platefront/internal/auth"
	"github.com/platefront/platefront/internal/db"
	"github.com/platefront/platefront/internal/models"
	"github.com/platefront/platefront/internal/palette"
	"github.com/platefront/platefront/internal/themes"
)

var (
	themeApplier  = themes.NewApplier()
	previewStore  = themes.NewPreviewStore()
	logoExtractor = palette.NewExtractor()
)

// loadDraft fetches the draft named in the route, or replies 404.
func loadDraft(c *gin.Context) (*models.Draft, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
		return nil, false
	}

	var draft models.Draft
	if err := db.GetDB().Preload("Hours").Preload("Pages").First(&draft, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
		return nil, false
	}

	return &draft, true
}

// CreateDraftHandler starts a new wizard session
func CreateDraftHandler(c *gin.Context) {
	var body struct {
		RestaurantName string `json:"restaurantName"`
	}
	_ = c.ShouldBindJSON(&body) // name is optional on creation

	draft := models.Draft{
		RestaurantName: body.RestaurantName,
		Pages: []models.DraftPage{
			{Slug: "menu", Title: "Menu", Order: 1},
			{Slug: "about", Title: "About", Order: 2},
			{Slug: "contact", Title: "Contact", Order: 3},
		},
	}
	if err := db.GetDB().Create(&draft).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create draft"})
		return
	}

	token, err := auth.GenerateDraftToken(draft.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue draft token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"draft": draft,
		"token": token,
	})
}

// GetDraftHandler returns the full draft state
func GetDraftHandler(c *gin.Context) {
	draft, ok := loadDraft(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, draft)
}

// UpdateInfoHandler saves the restaurant info step
func UpdateInfoHandler(c *gin.Context) {
	draft, ok := loadDraft(c)
	if !ok {
		return
	}

	var body struct {
		RestaurantName string `json:"restaurantName"`
		Tagline        string `json:"tagline"`
		Cuisine        string `json:"cuisine"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft.RestaurantName = body.RestaurantName
	draft.Tagline = body.Tagline
	draft.Cuisine = body.Cuisine
	if err := db.GetDB().Save(draft).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save draft"})
		return
	}

	c.JSON(http.StatusOK, draft)
}

// UpdateContactHandler saves the contact step
func UpdateContactHandler(c *gin.Context) {
	draft, ok := loadDraft(c)
	if !ok {
		return
	}

	var body struct {
		ContactEmail string `json:"contactEmail"`
		ContactPhone string `json:"contactPhone"`
		Address      string `json:"address"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft.ContactEmail = body.ContactEmail
	draft.ContactPhone = body.ContactPhone
	draft.Address = body.Address
	if err := db.GetDB().Save(draft).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save draft"})
		return
	}

	c.JSON(http.StatusOK, draft)
}

// UpdateHoursHandler replaces the opening hours step wholesale
func UpdateHoursHandler(c *gin.Context) {
	draft, ok := loadDraft(c)
	if !ok {
		return
	}

	var body struct {
		Hours []models.OpeningHours `json:"hours"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	for _, entry := range body.Hours {
		if entry.Weekday < 0 || entry.Weekday > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weekday out of range"})
			return
		}
	}

	err := db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("draft_id = ?", draft.ID).Delete(&models.OpeningHours{}).Error; err != nil {
			return err
		}
		for index := range body.Hours {
			body.Hours[index].ID = 0
			body.Hours[index].DraftID = draft.ID
		}
		if len(body.Hours) == 0 {
			return nil
		}
		return tx.Create(&body.Hours).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save hours"})
		return
	}

	draft.Hours = body.Hours
	c.JSON(http.StatusOK, draft)
}

// UpdatePagesHandler replaces the page selection step wholesale
func UpdatePagesHandler(c *gin.Context) {
	draft, ok := loadDraft(c)
	if !ok {
		return
	}

	var body struct {
		Pages []models.DraftPage `json:"pages"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("draft_id = ?", draft.ID).Delete(&models.DraftPage{}).Error; err != nil {
			return err
		}
		for index := range body.Pages {
			body.Pages[index].ID = 0
			body.Pages[index].DraftID = draft.ID
		}
		if len(body.Pages) == 0 {
			return nil
		}
		return tx.Create(&body.Pages).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save pages"})
		return
	}

	draft.Pages = body.Pages
	c.JSON(http.StatusOK, draft)
}

// UpdateDesignHandler saves the design step. Colors can come from a
// named starter palette or from individual picker edits; either way
// the preview surface is updated along with the form state.
func UpdateDesignHandler(c *gin.Context) {
	draft, ok := loadDraft(c)
	if !ok {
		return
	}

	var body struct {
		StarterPalette string `json:"starterPalette"`
		PrimaryColor   string `json:"primaryColor"`
		SecondaryColor string `json:"secondaryColor"`
		AccentColor    string `json:"accentColor"`
		FontPair       string `json:"fontPair"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if body.StarterPalette != "" {
		starter := themes.GetStarterPalette(body.StarterPalette)
		if starter == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown starter palette"})
			return
		}
		body.PrimaryColor = starter.Palette.Primary
		body.SecondaryColor = starter.Palette.Secondary
		body.AccentColor = starter.Palette.Accent
	}

	for _, value := range []string{body.PrimaryColor, body.SecondaryColor, body.AccentColor} {
		if value == "" {
			continue
		}
		if _, err := palette.ParseHex(value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid color value"})
			return
		}
	}

	// Picker edits are last-write-wins over any extracted palette
	if body.PrimaryColor != "" {
		draft.PrimaryColor = body.PrimaryColor
	}
	if body.SecondaryColor != "" {
		draft.SecondaryColor = body.SecondaryColor
	}
	if body.AccentColor != "" {
		draft.AccentColor = body.AccentColor
	}
	if body.FontPair != "" {
		draft.FontPair = body.FontPair
	}

	if err := db.GetDB().Save(draft).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save draft"})
		return
	}

	previewStore.Set(draft.ID, palette.Palette{
		Primary:   draft.PrimaryColor,
		Secondary: draft.SecondaryColor,
		Accent:    draft.AccentColor,
	})

	c.JSON(http.StatusOK, draft)
}

// ListStarterPalettesHandler returns the selectable starter palettes
func ListStarterPalettesHandler(c *gin.Context) {
	listed := themes.ListStarterPalettes()
	response := make([]gin.H, 0, len(listed))
	for _, starter := range listed {
		response = append(response, gin.H{
			"name":    starter.Name,
			"palette": starter.Palette,
		})
	}
	c.JSON(http.StatusOK, gin.H{"palettes": response})
}
