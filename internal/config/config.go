package config

import (
	"time"

	"github.com/spf13/viper"
)

type AuthMode string

const (
	AuthModeNone  AuthMode = "none"  // No authentication required (default)
	AuthModeLocal AuthMode = "local" // Session-guarded API
)

type (
	Config struct {
		HTTP
		Global
		Database
		Catalog
		Badges
		Auth
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		DataDir                  string // settings.toml lives here
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Catalog struct {
		BaseURL string
	}
	Badges struct {
		DocumentsDir string // rendered badges are saved here
	}
	Auth struct {
		Mode            AuthMode
		SessionLifetime time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8173)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("catalog_base_url", "https://openlibrary.org")
	v.SetDefault("documents_dir", "")
	v.SetDefault("auth_mode", "local")
	v.SetDefault("auth_session_lifetime", "24h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			DataDir:                  v.GetString("DATA_DIR"),
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Catalog: Catalog{
			BaseURL: v.GetString("CATALOG_BASE_URL"),
		},
		Badges: Badges{
			DocumentsDir: v.GetString("DOCUMENTS_DIR"),
		},
		Auth: Auth{
			Mode:            AuthMode(v.GetString("AUTH_MODE")),
			SessionLifetime: v.GetDuration("AUTH_SESSION_LIFETIME"),
		},
	}
}
