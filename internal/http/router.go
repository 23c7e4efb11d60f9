package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/toolvault/toolvault/internal/auth"
	"github.com/toolvault/toolvault/internal/database"
)

// RouterConfig receives all router dependencies, improving testability
// and reducing parameter count.
type RouterConfig struct {
	Database      *database.Database
	BookmarkStore BookmarkStore
	AuthService   *auth.Service // nil when auth mode is none
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
// Listing is always public; create/update/delete are gated behind an admin
// session when auth mode is admin. Every response allows cross-origin
// calls from any origin, and preflight requests succeed with no body.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// A method mismatch on a known path is a 405, not a 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
	})

	// Unmatched routes return a plain not-found body with no routing
	// diagnostics.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	})

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	bookmarksController := NewBookmarksController(cfg.BookmarkStore)
	router.GET("/api/bookmarks", bookmarksController.ListBookmarks)

	// Mutating routes, gated when an auth service is configured.
	mutating := router.Group("/api")
	if cfg.AuthService != nil {
		mutating.Use(auth.RequireSession(cfg.AuthService))

		authController := NewAuthController(cfg.AuthService)
		router.POST("/api/login", authController.Login)
		router.POST("/api/logout", authController.Logout)
		router.GET("/api/auth/check", authController.Check)
	}
	mutating.POST("/bookmarks", bookmarksController.CreateBookmark)
	mutating.PUT("/bookmarks/:id", bookmarksController.UpdateBookmark)
	mutating.DELETE("/bookmarks/:id", bookmarksController.DeleteBookmark)

	return router
}
