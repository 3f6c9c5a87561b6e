package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AleXutzZu/LibraManager/internal/auth"
	"github.com/AleXutzZu/LibraManager/internal/catalog"
	"github.com/AleXutzZu/LibraManager/internal/config"
	"github.com/AleXutzZu/LibraManager/internal/covers"
	"github.com/AleXutzZu/LibraManager/internal/database"
	http_controllers "github.com/AleXutzZu/LibraManager/internal/http"
	"github.com/AleXutzZu/LibraManager/internal/lending"
	"github.com/AleXutzZu/LibraManager/internal/settings"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting LibraManager v%s", version)

	if err := os.MkdirAll(cfg.Global.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory %s: %v", cfg.Global.DataDir, err)
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	settingsLoader := settings.NewLoader(cfg.Global.DataDir)
	if _, err := settingsLoader.Load(); err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	lendingService := lending.NewService(db)
	authService := auth.NewService(db)
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL)

	coverCache, err := covers.NewCache(filepath.Join(cfg.Global.DataDir, "covers"))
	if err != nil {
		log.Fatalf("Failed to initialize cover cache: %v", err)
	}

	var sessionManager *auth.SessionManager
	if cfg.Auth.Mode == config.AuthModeLocal {
		log.Printf("Authentication mode: local")

		sqlDB, err := db.SQLDB()
		if err != nil {
			log.Fatalf("Failed to get SQL DB for sessions: %v", err)
		}

		sessionManager, err = auth.NewSessionManager(sqlDB, cfg.Auth)
		if err != nil {
			log.Fatalf("Failed to initialize session manager: %v", err)
		}
	} else {
		log.Printf("Authentication mode: none (no authentication required)")
	}

	documentsDir := cfg.Badges.DocumentsDir
	if documentsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory for badge output: %v", err)
		}
		documentsDir = filepath.Join(home, "Documents")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:       db,
		Lending:        lendingService,
		AuthService:    authService,
		SessionManager: sessionManager,
		SettingsLoader: settingsLoader,
		CatalogClient:  catalogClient,
		CoverCache:     coverCache,
		DocumentsDir:   documentsDir,
		AuthMode:       cfg.Auth.Mode,
		Version:        version,
	})

	Serve(router, cfg)
}
