package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toolvault/toolvault/internal/database/bookmarks"
	"github.com/toolvault/toolvault/internal/entities"
)

// BookmarkStore defines database operations for bookmark management.
type BookmarkStore interface {
	ListBookmarks() ([]entities.Bookmark, error)
	CreateBookmark(name, url, description, logo string) (*entities.Bookmark, error)
	UpdateBookmark(id uint, patch bookmarks.Patch) (*entities.Bookmark, error)
	DeleteBookmark(id uint) error
}

type BookmarksController struct {
	store BookmarkStore
}

func NewBookmarksController(store BookmarkStore) *BookmarksController {
	return &BookmarksController{store: store}
}

// ListBookmarks returns every stored bookmark
// GET /api/bookmarks
func (bc *BookmarksController) ListBookmarks(c *gin.Context) {
	list, err := bc.store.ListBookmarks()
	if err != nil {
		respondInternalError(c, err, "list bookmarks")
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateBookmark persists a new bookmark
// POST /api/bookmarks
func (bc *BookmarksController) CreateBookmark(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		URL         string `json:"url"`
		Description string `json:"description"`
		Logo        string `json:"logo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Name == "" || req.URL == "" {
		respondBadRequest(c, "name and url are required")
		return
	}

	bookmark, err := bc.store.CreateBookmark(req.Name, req.URL, req.Description, req.Logo)
	if err != nil {
		respondInternalError(c, err, "create bookmark")
		return
	}

	respondCreated(c, bookmark)
}

// UpdateBookmark applies a partial patch to an existing bookmark.
// Fields omitted from the body are left unchanged.
// PUT /api/bookmarks/:id
func (bc *BookmarksController) UpdateBookmark(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name        *string `json:"name"`
		URL         *string `json:"url"`
		Description *string `json:"description"`
		Logo        *string `json:"logo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	updated, err := bc.store.UpdateBookmark(id, bookmarks.Patch{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		Logo:        req.Logo,
	})
	if errors.Is(err, bookmarks.ErrBookmarkNotFound) {
		respondNotFound(c, "bookmark")
		return
	}
	if err != nil {
		respondInternalError(c, err, "update bookmark")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteBookmark removes a bookmark permanently
// DELETE /api/bookmarks/:id
func (bc *BookmarksController) DeleteBookmark(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := bc.store.DeleteBookmark(id)
	if errors.Is(err, bookmarks.ErrBookmarkNotFound) {
		respondNotFound(c, "bookmark")
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete bookmark")
		return
	}

	respondSuccess(c, "bookmark deleted")
}
