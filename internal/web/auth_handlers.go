package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"bookshelf-backend/internal/auth"
	"bookshelf-backend/internal/database"
	"bookshelf-backend/internal/models"
)

// registerFormHandler handles GET /register
func registerFormHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", nil)
}

// registerHandler handles POST /register
func registerHandler(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.String(http.StatusBadRequest, "username, email and password are required")
	}

	// An already-registered email sends the user to the login page
	// instead of creating a second account
	exists, err := userRepo.ExistsByEmail(req.Email)
	if err != nil {
		c.Logger().Error("register error: ", err)
		return c.String(http.StatusInternalServerError, "registration failed")
	}
	if exists {
		return c.Redirect(http.StatusFound, "/login")
	}

	resp, err := authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, database.ErrEmailTaken) {
			return c.Redirect(http.StatusFound, "/login")
		}
		c.Logger().Error("register error: ", err)
		return c.String(http.StatusInternalServerError, "registration failed")
	}

	setSessionCookie(c, resp)
	return c.Redirect(http.StatusFound, "/")
}

// loginFormHandler handles GET /login
func loginFormHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

// loginHandler handles POST /login
func loginHandler(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return c.Redirect(http.StatusFound, "/login")
	}

	resp, err := authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.Redirect(http.StatusFound, "/login")
		}
		c.Logger().Error("login error: ", err)
		return c.String(http.StatusInternalServerError, "authentication failed")
	}

	setSessionCookie(c, resp)
	return c.Redirect(http.StatusFound, "/")
}

// logoutHandler handles GET /logout
func logoutHandler(c echo.Context) error {
	token := getSessionToken(c)
	if token != "" {
		if err := authService.Logout(token); err != nil {
			if !errors.Is(err, database.ErrSessionNotFound) {
				c.Logger().Error("logout error: ", err)
			}
			// Session already gone, that's fine
		}
	}

	clearSessionCookie(c)
	return c.Redirect(http.StatusFound, "/login")
}

// setSessionCookie sets the session token cookie (HttpOnly for security)
func setSessionCookie(c echo.Context, resp *auth.LoginResponse) {
	cookie := &http.Cookie{
		Name:     auth.CookieName,
		Value:    resp.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request().TLS != nil, // Secure if HTTPS
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.SessionDuration.Seconds()),
	}
	c.SetCookie(cookie)
}

// clearSessionCookie removes the session token cookie
func clearSessionCookie(c echo.Context) {
	cookie := &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
	c.SetCookie(cookie)
}

// getSessionToken extracts the session token from the request cookie
func getSessionToken(c echo.Context) string {
	cookie, err := c.Cookie(auth.CookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}
