// Package cleanup removes abandoned wizard drafts and their uploads.
package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/platefront/platefront/internal/models"
)

// Janitor deletes drafts nobody can edit anymore. A draft is abandoned
// when it was never submitted and its edit token has expired; the token
// lifetime is therefore the retention horizon.
type Janitor struct {
	db         *gorm.DB
	uploadsDir string
	retention  time.Duration
}

// NewJanitor creates a janitor for the given database and uploads root
func NewJanitor(db *gorm.DB, uploadsDir string, retention time.Duration) *Janitor {
	return &Janitor{
		db:         db,
		uploadsDir: uploadsDir,
		retention:  retention,
	}
}

// Sweep deletes all abandoned drafts and returns how many were removed
func (j *Janitor) Sweep() (int, error) {
	cutoff := time.Now().Add(-j.retention)

	var stale []models.Draft
	if err := j.db.Where("submitted = ? AND updated_at < ?", false, cutoff).Find(&stale).Error; err != nil {
		return 0, fmt.Errorf("failed to list abandoned drafts: %w", err)
	}

	removed := 0
	for _, draft := range stale {
		if err := j.db.Select("Hours", "Pages").Delete(&draft).Error; err != nil {
			return removed, fmt.Errorf("failed to delete draft %d: %w", draft.ID, err)
		}

		if j.uploadsDir != "" {
			draftDir := filepath.Join(j.uploadsDir, "draft-"+strconv.FormatUint(uint64(draft.ID), 10))
			if err := os.RemoveAll(draftDir); err != nil {
				return removed, fmt.Errorf("failed to remove uploads for draft %d: %w", draft.ID, err)
			}
		}
		removed++
	}

	return removed, nil
}
