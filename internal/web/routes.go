package web

import (
	"github.com/labstack/echo/v4"

	"bookshelf-backend/internal/auth"
	"bookshelf-backend/internal/database"
	"bookshelf-backend/internal/openlibrary"
)

var (
	authService  *auth.Service
	userRepo     *database.UserRepo
	bookRepo     *database.BookRepo
	lookupClient *openlibrary.Client
)

// RegisterRoutes sets up all routes
func RegisterRoutes(e *echo.Echo, authSvc *auth.Service) {
	authService = authSvc
	userRepo = database.NewUserRepo()
	bookRepo = database.NewBookRepo()
	if lookupClient == nil {
		lookupClient = openlibrary.NewClient()
	}

	// Attach identity when a valid session cookie is present
	e.Use(auth.OptionalAuth(authSvc))

	// Public routes
	e.GET("/", listBooksHandler)
	e.GET("/register", registerFormHandler)
	e.POST("/register", registerHandler)
	e.GET("/login", loginFormHandler)
	e.POST("/login", loginHandler)
	e.GET("/logout", logoutHandler)
	e.GET("/books/:id", getBookHandler)
	e.POST("/search-book", searchBookHandler)

	// Protected routes
	protected := e.Group("", auth.RequireAuth(authSvc))
	protected.GET("/add", addBookFormHandler)
	protected.POST("/add", addBookHandler)
	protected.POST("/books/:id/update", updateBookHandler)
	protected.POST("/books/:id/delete", deleteBookHandler)
}

// SetLookupClient overrides the book search client
func SetLookupClient(c *openlibrary.Client) {
	lookupClient = c
}
