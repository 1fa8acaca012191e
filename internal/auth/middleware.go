package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bookshelf-backend/internal/models"
)

// Context keys for storing user data
const (
	ContextKeyUser    = "user"
	ContextKeySession = "session"
)

// CookieName is the session cookie name
const CookieName = "session_token"

// RequireAuth middleware checks for a valid session and redirects to the
// login page when there is none
func RequireAuth(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := getTokenFromRequest(c)
			if token == "" {
				return c.Redirect(http.StatusFound, "/login")
			}

			user, session, err := authSvc.ValidateToken(token)
			if err != nil {
				return c.Redirect(http.StatusFound, "/login")
			}

			// Store user and session in context for handlers
			c.Set(ContextKeyUser, user)
			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

// OptionalAuth middleware attempts to authenticate but doesn't require it.
// Sets user in context if authenticated, otherwise continues without user.
func OptionalAuth(authSvc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := getTokenFromRequest(c)
			if token != "" {
				user, session, err := authSvc.ValidateToken(token)
				if err == nil {
					c.Set(ContextKeyUser, user)
					c.Set(ContextKeySession, session)
				}
			}
			return next(c)
		}
	}
}

// getTokenFromRequest extracts the session token from the request cookie
func getTokenFromRequest(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// GetUserFromContext retrieves the authenticated user from the context
func GetUserFromContext(c echo.Context) *models.User {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetSessionFromContext retrieves the current session from the context
func GetSessionFromContext(c echo.Context) *models.Session {
	session, ok := c.Get(ContextKeySession).(*models.Session)
	if !ok {
		return nil
	}
	return session
}
