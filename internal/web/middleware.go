package web

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyRequestID is the context key for the per-request ID
const ContextKeyRequestID = "request_id"

// RequestID middleware tags every request with an ID, reusing the
// X-Request-ID header when a caller supplies one
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}

			c.Set(ContextKeyRequestID, rid)
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			return next(c)
		}
	}
}

// RequestIDFromContext returns the request ID or an empty string
func RequestIDFromContext(c echo.Context) string {
	rid, ok := c.Get(ContextKeyRequestID).(string)
	if !ok {
		return ""
	}
	return rid
}
