package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bookshelf-backend/internal/auth"
	"bookshelf-backend/internal/database"
	"bookshelf-backend/internal/web"
)

func main() {
	// Get database path from environment or default
	dbPath := os.Getenv("BOOKSHELF_DB_PATH")
	if dbPath == "" {
		// Default to current directory for development
		dbPath = "./bookshelf.db"
	}

	// Ensure absolute path
	if !filepath.IsAbs(dbPath) {
		cwd, _ := os.Getwd()
		dbPath = filepath.Join(cwd, dbPath)
	}

	// Initialize database
	log.Printf("Initializing database at %s", dbPath)
	if err := database.Open(database.Config{Path: dbPath}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize auth service
	authSvc := auth.NewService()

	e := echo.New()
	e.HideBanner = true

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(web.RequestID())

	web.RegisterRoutes(e, authSvc)

	// Get port from environment or default
	port := os.Getenv("BOOKSHELF_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting Bookshelf on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
