package entities

import (
	"time"
)

// Bookmark is a named tool/link record with optional description and logo.
// Name and URL are required at creation; Description and Logo default to
// the empty string. Duplicates across name/url are allowed.
type Bookmark struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	URL         string    `gorm:"type:text;not null" json:"url"`
	Description string    `gorm:"type:text" json:"description"`
	Logo        string    `gorm:"type:text" json:"logo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
