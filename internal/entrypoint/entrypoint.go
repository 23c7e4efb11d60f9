package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/toolvault/toolvault/internal/auth"
	"github.com/toolvault/toolvault/internal/config"
	"github.com/toolvault/toolvault/internal/database"
	"github.com/toolvault/toolvault/internal/database/bookmarks"
	http_controllers "github.com/toolvault/toolvault/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the application together and serves it. A connection failure
// at startup is fatal.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting ToolVault v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	store := bookmarks.NewRepository(db.DB)

	// Auth is optional: in the default mode the mutating endpoints are
	// open and no session endpoints exist.
	var authService *auth.Service
	if cfg.Auth.Mode == config.AuthModeAdmin {
		authService, err = auth.NewService(cfg.Auth, cfg.Sessions.Lifetime)
		if err != nil {
			log.Fatalf("Failed to initialize auth: %v", err)
		}
		log.Printf("Admin auth enabled for %s", cfg.Auth.AdminEmail)
	} else {
		log.Printf("Auth disabled - mutating endpoints are open")
	}

	// Periodically drop expired session tokens from the registry.
	var purger *cron.Cron
	if authService != nil {
		purger = cron.New()
		_, err := purger.AddFunc(cfg.Sessions.PurgeSchedule, func() {
			if purged := authService.PurgeExpired(); purged > 0 {
				log.Printf("Purged %d expired session tokens", purged)
			}
		})
		if err != nil {
			log.Fatalf("Invalid session purge schedule %q: %v", cfg.Sessions.PurgeSchedule, err)
		}
		purger.Start()
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:      db,
		BookmarkStore: store,
		AuthService:   authService,
		Version:       version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		if purger != nil {
			stopCtx := purger.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
		}
	})
}
