package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/platefront/platefront/internal/config"
	"github.com/platefront/platefront/internal/db"
	"github.com/platefront/platefront/internal/generator"
)

// SubmitDraftHandler hands a finished draft to the site generation
// backend and marks it submitted
func SubmitDraftHandler(c *gin.Context) {
	draft, ok := loadDraft(c)
	if !ok {
		return
	}

	if draft.Submitted {
		c.JSON(http.StatusConflict, gin.H{"error": "draft already submitted"})
		return
	}
	if draft.RestaurantName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant name is required before submission"})
		return
	}

	client := generator.NewClient(
		config.GetString("generator.endpoint"),
		config.GetDuration("generator.timeout"),
	)
	result, err := client.Submit(c.Request.Context(), *draft)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "site generation backend unavailable"})
		return
	}

	now := time.Now()
	draft.Submitted = true
	draft.SubmittedAt = &now
	if err := db.GetDB().Save(draft).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"siteUrl":     result.SiteURL,
		"jobId":       result.JobID,
		"submittedAt": draft.SubmittedAt,
	})
}
