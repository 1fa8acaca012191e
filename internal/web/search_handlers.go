package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bookshelf-backend/internal/auth"
)

// searchBookHandler handles POST /search-book
func searchBookHandler(c echo.Context) error {
	title := c.FormValue("title")
	if title == "" {
		return c.String(http.StatusBadRequest, "title is required")
	}

	docs, err := lookupClient.SearchByTitle(c.Request().Context(), title)
	if err != nil {
		c.Logger().Error("book search error: ", err)
		return c.String(http.StatusBadGateway, "book search is unavailable")
	}

	return c.Render(http.StatusOK, "search_results.html", map[string]interface{}{
		"Query":   title,
		"Results": docs,
		"User":    auth.GetUserFromContext(c),
	})
}
