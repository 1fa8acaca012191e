package database

import (
	"database/sql"
	"errors"

	"bookshelf-backend/internal/models"
)

var (
	ErrBookNotFound = errors.New("book not found")
	// ErrNotOwner is returned when a conditional mutation matches no row,
	// either because the book does not exist or because it belongs to
	// another user. Callers must not distinguish the two cases.
	ErrNotOwner = errors.New("book not owned by user")
)

// BookRepo handles book database operations
type BookRepo struct{}

// NewBookRepo creates a new book repository
func NewBookRepo() *BookRepo {
	return &BookRepo{}
}

// Create creates a new book owned by the given user
func (r *BookRepo) Create(book *models.Book) error {
	result, err := DB.Exec(`
		INSERT INTO books (title, author, cover_url, user_id)
		VALUES (?, ?, ?, ?)
	`, book.Title, book.Author, book.CoverURL, book.UserID)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	book.ID = id

	return nil
}

// GetByID retrieves a book by ID
func (r *BookRepo) GetByID(id int64) (*models.Book, error) {
	book := &models.Book{}
	var rating sql.NullFloat64

	err := DB.QueryRow(`
		SELECT id, title, author, cover_url, rating, notes, user_id, created_at
		FROM books WHERE id = ?
	`, id).Scan(
		&book.ID, &book.Title, &book.Author, &book.CoverURL,
		&rating, &book.Notes, &book.UserID, &book.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		book.Rating = &rating.Float64
	}

	return book, nil
}

// ListWithOwners retrieves all books joined with their owners' usernames
func (r *BookRepo) ListWithOwners() ([]*models.BookWithOwner, error) {
	rows, err := DB.Query(`
		SELECT books.id, books.title, books.author, books.cover_url, books.rating, users.username
		FROM books
		INNER JOIN users ON books.user_id = users.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*models.BookWithOwner
	for rows.Next() {
		book := &models.BookWithOwner{}
		var rating sql.NullFloat64

		err := rows.Scan(
			&book.ID, &book.Title, &book.Author, &book.CoverURL,
			&rating, &book.OwnerUsername,
		)
		if err != nil {
			return nil, err
		}

		if rating.Valid {
			book.Rating = &rating.Float64
		}

		books = append(books, book)
	}

	return books, rows.Err()
}

// UpdateNotesAndRating updates a book's notes and rating if the given user
// owns it. The ownership check and the write are a single conditional
// statement, so concurrent attempts are serialized by the storage engine.
func (r *BookRepo) UpdateNotesAndRating(id int64, notes string, rating *float64, ownerID int64) error {
	var ratingArg sql.NullFloat64
	if rating != nil {
		ratingArg = sql.NullFloat64{Float64: *rating, Valid: true}
	}

	result, err := DB.Exec(`
		UPDATE books SET notes = ?, rating = ?
		WHERE id = ? AND user_id = ?
	`, notes, ratingArg, id, ownerID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotOwner
	}

	return nil
}

// Delete removes a book if the given user owns it
func (r *BookRepo) Delete(id int64, ownerID int64) error {
	result, err := DB.Exec("DELETE FROM books WHERE id = ? AND user_id = ?", id, ownerID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotOwner
	}

	return nil
}
