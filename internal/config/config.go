package config

import (
	"time"

	"github.com/spf13/viper"
)

type AuthMode string

const (
	AuthModeNone  AuthMode = "none"  // Mutating endpoints are open (default)
	AuthModeAdmin AuthMode = "admin" // Mutating endpoints require an admin session token
)

type (
	Config struct {
		HTTP
		Database
		Auth
		Sessions
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Auth struct {
		Mode          AuthMode
		AdminEmail    string
		AdminPassword string // Hashed at startup, never kept in plain text past init
		BcryptCost    int
	}
	Sessions struct {
		Lifetime      time.Duration
		PurgeSchedule string // robfig/cron format, e.g. "@every 10m"
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

const DefaultDatabasePath = "./toolvault.db"

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8199)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Auth defaults. Admin credentials intentionally have no fallback:
	// when AUTH_MODE=admin and they are unset, startup fails.
	v.SetDefault("auth_mode", "none")
	v.SetDefault("admin_email", "")
	v.SetDefault("admin_password", "")
	v.SetDefault("bcrypt_cost", 12)

	// Session defaults
	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("session_purge_schedule", "@every 10m")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			Mode:          AuthMode(v.GetString("AUTH_MODE")),
			AdminEmail:    v.GetString("ADMIN_EMAIL"),
			AdminPassword: v.GetString("ADMIN_PASSWORD"),
			BcryptCost:    v.GetInt("BCRYPT_COST"),
		},
		Sessions: Sessions{
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			PurgeSchedule: v.GetString("SESSION_PURGE_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
