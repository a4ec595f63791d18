package models

import (
	"time"

	"gorm.io/gorm"
)

// Draft is one restaurant's in-progress wizard session. The three
// color fields are overwritten together by a logo extraction and can
// afterward be edited individually from the color pickers; the last
// write wins.
type Draft struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RestaurantName string `json:"restaurantName"`
	Tagline        string `json:"tagline"`
	Cuisine        string `json:"cuisine"`

	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`

	PrimaryColor   string `gorm:"default:#3b82f6" json:"primaryColor"`
	SecondaryColor string `gorm:"default:#1e40af" json:"secondaryColor"`
	AccentColor    string `gorm:"default:#60a5fa" json:"accentColor"`
	FontPair       string `gorm:"default:system" json:"fontPair"`

	LogoPath      string `json:"logoPath"`
	ThumbnailPath string `json:"thumbnailPath"`

	Submitted   bool       `gorm:"default:false" json:"submitted"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`

	// Relationships
	Hours []OpeningHours `gorm:"foreignKey:DraftID;constraint:OnDelete:CASCADE" json:"hours,omitempty"`
	Pages []DraftPage    `gorm:"foreignKey:DraftID;constraint:OnDelete:CASCADE" json:"pages,omitempty"`
}

// OpeningHours is one weekday row of the hours step. Weekday follows
// time.Weekday numbering (0 = Sunday).
type OpeningHours struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	DraftID uint   `gorm:"not null;index" json:"-"`
	Weekday int    `gorm:"not null" json:"weekday"`
	Opens   string `json:"opens"`  // "11:30"
	Closes  string `json:"closes"` // "22:00"
	Closed  bool   `gorm:"default:false" json:"closed"`
}

// DraftPage is one selectable page of the generated site.
type DraftPage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	DraftID uint   `gorm:"not null;index" json:"-"`
	Slug    string `gorm:"not null" json:"slug"` // "menu", "about", "gallery", "contact"
	Title   string `gorm:"not null" json:"title"`
	Enabled bool   `gorm:"default:true" json:"enabled"`
	Order   int    `gorm:"not null" json:"order"`
}

// TableName overrides for consistent naming
func (Draft) TableName() string {
	return "drafts"
}

func (OpeningHours) TableName() string {
	return "opening_hours"
}

func (DraftPage) TableName() string {
	return "draft_pages"
}
