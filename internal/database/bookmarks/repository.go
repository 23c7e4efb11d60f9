// Package bookmarks provides database operations for the bookmark catalog.
//
// This package implements the BookmarkStore interface defined in
// internal/http/bookmarks.go.
//
// # Interface Implementation
//
//	var _ http.BookmarkStore = (*Repository)(nil)
package bookmarks

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/toolvault/toolvault/internal/entities"
)

// ErrBookmarkNotFound is returned when no bookmark matches the given ID.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// Patch carries a partial field set for an update. Nil fields are left
// untouched; non-nil fields overwrite, including with the empty string.
type Patch struct {
	Name        *string
	URL         *string
	Description *string
	Logo        *string
}

// Repository handles all bookmark database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new bookmarks repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListBookmarks returns every stored bookmark in insertion order.
// An empty store yields an empty slice, never an error.
func (r *Repository) ListBookmarks() ([]entities.Bookmark, error) {
	bookmarks := make([]entities.Bookmark, 0)
	err := r.db.Order("id ASC").Find(&bookmarks).Error
	return bookmarks, err
}

// GetBookmarkByID retrieves a single bookmark.
func (r *Repository) GetBookmarkByID(id uint) (*entities.Bookmark, error) {
	var bookmark entities.Bookmark
	err := r.db.First(&bookmark, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookmarkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// CreateBookmark persists a new bookmark and returns the stored record
// with its assigned ID. Presence of name/url is validated by the caller.
func (r *Repository) CreateBookmark(name, url, description, logo string) (*entities.Bookmark, error) {
	bookmark := &entities.Bookmark{
		Name:        name,
		URL:         url,
		Description: description,
		Logo:        logo,
	}
	if err := r.db.Create(bookmark).Error; err != nil {
		return nil, err
	}
	return bookmark, nil
}

// UpdateBookmark applies the non-nil fields of patch to an existing
// bookmark and returns the post-update record. Returns
// ErrBookmarkNotFound when the ID matches nothing.
func (r *Repository) UpdateBookmark(id uint, patch Patch) (*entities.Bookmark, error) {
	bookmark, err := r.GetBookmarkByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.URL != nil {
		updates["url"] = *patch.URL
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Logo != nil {
		updates["logo"] = *patch.Logo
	}

	if len(updates) == 0 {
		return bookmark, nil
	}

	if err := r.db.Model(bookmark).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update bookmark %d: %w", id, err)
	}

	return r.GetBookmarkByID(id)
}

// DeleteBookmark removes a bookmark permanently. Returns
// ErrBookmarkNotFound when nothing was deleted.
func (r *Repository) DeleteBookmark(id uint) error {
	result := r.db.Delete(&entities.Bookmark{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}

// CountBookmarks returns the number of stored bookmarks.
func (r *Repository) CountBookmarks() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Bookmark{}).Count(&count).Error
	return count, err
}
