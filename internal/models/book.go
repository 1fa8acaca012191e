package models

import "time"

// Book represents a book owned by a user
type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CoverURL  string    `json:"cover_url"`
	Rating    *float64  `json:"rating,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BookWithOwner is a listing row joining a book with its owner's username
type BookWithOwner struct {
	Book
	OwnerUsername string `json:"owner_username"`
}

// AddBookRequest represents the add-book form fields
type AddBookRequest struct {
	Title    string `form:"title"`
	Author   string `form:"author"`
	CoverURL string `form:"cover_url"`
}

// UpdateBookRequest represents the notes/rating update form fields
type UpdateBookRequest struct {
	Notes  string `form:"notes"`
	Rating string `form:"rating"` // optional, parsed as float when non-empty
}
