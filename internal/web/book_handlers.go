package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bookshelf-backend/internal/auth"
	"bookshelf-backend/internal/database"
	"bookshelf-backend/internal/models"
)

// listBooksHandler handles GET /
func listBooksHandler(c echo.Context) error {
	books, err := bookRepo.ListWithOwners()
	if err != nil {
		c.Logger().Error("list books error: ", err)
		return c.String(http.StatusInternalServerError, "failed to load books")
	}

	return c.Render(http.StatusOK, "index.html", map[string]interface{}{
		"Books": books,
		"User":  auth.GetUserFromContext(c),
	})
}

// getBookHandler handles GET /books/:id
func getBookHandler(c echo.Context) error {
	// A malformed ID never reaches the database
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid book ID")
	}

	book, err := bookRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrBookNotFound) {
			return c.String(http.StatusNotFound, "book not found")
		}
		c.Logger().Error("get book error: ", err)
		return c.String(http.StatusInternalServerError, "failed to load book")
	}

	user := auth.GetUserFromContext(c)
	return c.Render(http.StatusOK, "book.html", map[string]interface{}{
		"Book":    book,
		"User":    user,
		"IsOwner": user != nil && user.ID == book.UserID,
	})
}

// addBookFormHandler handles GET /add
func addBookFormHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "addbook.html", map[string]interface{}{
		"User": auth.GetUserFromContext(c),
	})
}

// addBookHandler handles POST /add
func addBookHandler(c echo.Context) error {
	var req models.AddBookRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}

	if req.Title == "" || req.Author == "" {
		return c.String(http.StatusBadRequest, "title and author are required")
	}

	// Owner is always the authenticated identity, never form input
	user := auth.GetUserFromContext(c)

	book := &models.Book{
		Title:    req.Title,
		Author:   req.Author,
		CoverURL: req.CoverURL,
		UserID:   user.ID,
	}
	if err := bookRepo.Create(book); err != nil {
		c.Logger().Error("add book error: ", err)
		return c.String(http.StatusInternalServerError, "failed to add book")
	}

	return c.Redirect(http.StatusFound, "/")
}

// updateBookHandler handles POST /books/:id/update
func updateBookHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid book ID")
	}

	var req models.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}

	rating, err := parseRating(req.Rating)
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid rating")
	}

	user := auth.GetUserFromContext(c)

	err = bookRepo.UpdateNotesAndRating(id, req.Notes, rating, user.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotOwner) {
			return c.String(http.StatusForbidden, "you are not allowed to update this book")
		}
		c.Logger().Error("update book error: ", err)
		return c.String(http.StatusInternalServerError, "failed to update book")
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/books/%d", id))
}

// deleteBookHandler handles POST /books/:id/delete
func deleteBookHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.String(http.StatusBadRequest, "invalid book ID")
	}

	user := auth.GetUserFromContext(c)

	err = bookRepo.Delete(id, user.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotOwner) {
			return c.String(http.StatusForbidden, "you are not allowed to delete this book")
		}
		c.Logger().Error("delete book error: ", err)
		return c.String(http.StatusInternalServerError, "failed to delete book")
	}

	return c.Redirect(http.StatusFound, "/")
}

// parseID parses a numeric path parameter
func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// parseRating parses the optional rating form field; blank means unrated
func parseRating(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	rating, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}
