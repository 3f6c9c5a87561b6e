// Package http is the command layer between the desktop UI and the backend.
// Every fallible operation answers either a typed JSON payload or a single
// human-readable error string.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/AleXutzZu/LibraManager/internal/auth"
	"github.com/AleXutzZu/LibraManager/internal/catalog"
	"github.com/AleXutzZu/LibraManager/internal/config"
	"github.com/AleXutzZu/LibraManager/internal/covers"
	"github.com/AleXutzZu/LibraManager/internal/database"
	"github.com/AleXutzZu/LibraManager/internal/lending"
	"github.com/AleXutzZu/LibraManager/internal/settings"
)

// RouterConfig receives all handler dependencies, keeping the router
// testable and the parameter count down.
type RouterConfig struct {
	Database       *database.Database
	Lending        *lending.Service
	AuthService    *auth.Service
	SessionManager *auth.SessionManager
	SettingsLoader *settings.Loader
	CatalogClient  *catalog.Client
	CoverCache     *covers.Cache
	DocumentsDir   string
	AuthMode       config.AuthMode
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	router.GET("/healthz", NewHealthController(cfg.Version).Health)

	authController := NewAuthController(cfg.AuthService, cfg.SessionManager)

	api := router.Group("/api")
	api.POST("/login", authController.Login)
	api.POST("/logout", authController.Logout)

	// Everything below requires a session in local auth mode.
	guarded := api.Group("")
	if cfg.AuthMode == config.AuthModeLocal && cfg.SessionManager != nil {
		guarded.Use(cfg.SessionManager.RequireSession())
	}

	settingsController := NewSettingsController(cfg.SettingsLoader)
	guarded.GET("/settings", settingsController.Get)
	guarded.PUT("/settings", settingsController.Save)

	booksController := NewBooksController(cfg.Database)
	guarded.GET("/books", booksController.List)
	guarded.POST("/books", booksController.Create)
	guarded.GET("/books/:isbn", booksController.Get)
	guarded.PUT("/books/:isbn", booksController.Update)
	guarded.DELETE("/books/:isbn", booksController.Delete)

	clientsController := NewClientsController(cfg.Database)
	guarded.GET("/clients", clientsController.List)
	guarded.POST("/clients", clientsController.Create)
	guarded.GET("/clients/:id", clientsController.Get)
	guarded.PUT("/clients/:id", clientsController.Update)
	guarded.DELETE("/clients/:id", clientsController.Delete)

	usersController := NewUsersController(cfg.AuthService, cfg.Database)
	guarded.GET("/users", usersController.List)
	guarded.POST("/users", usersController.Create)
	guarded.GET("/users/:username", usersController.Get)
	guarded.PUT("/users/:username", usersController.Update)
	guarded.DELETE("/users/:username", usersController.Delete)

	borrowsController := NewBorrowsController(cfg.Lending)
	guarded.GET("/books/:isbn/borrows", borrowsController.Borrowers)
	guarded.GET("/books/:isbn/availability", borrowsController.CheckAvailability)
	guarded.GET("/clients/:id/borrows", borrowsController.BorrowedBooks)
	guarded.POST("/borrows", borrowsController.StartLoan)
	guarded.PUT("/borrows/:id", borrowsController.EndLoan)
	guarded.DELETE("/borrows/:id", borrowsController.DeleteLoan)

	catalogController := NewCatalogController(cfg.CatalogClient, cfg.CoverCache)
	guarded.GET("/catalog/:isbn", catalogController.Lookup)
	guarded.GET("/catalog/:isbn/cover", catalogController.Cover)

	badgesController := NewBadgesController(cfg.SettingsLoader, cfg.DocumentsDir)
	guarded.POST("/badges", badgesController.Create)
	guarded.GET("/books/:isbn/barcode", badgesController.BookBarcode)

	return router
}
