package database

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"bookshelf-backend/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// SessionRepo handles session database operations
type SessionRepo struct{}

// NewSessionRepo creates a new session repository
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{}
}

// Create creates a new session and returns the plain token
func (r *SessionRepo) Create(userID int64, duration time.Duration) (string, *models.Session, error) {
	// Generate random token
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", nil, err
	}
	token := hex.EncodeToString(tokenBytes)

	// Hash the token for storage
	tokenHash := hashToken(token)

	session := &models.Session{
		UserID:    userID,
		TokenHash: tokenHash,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(duration),
	}

	result, err := DB.Exec(`
		INSERT INTO sessions (user_id, token_hash, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, session.UserID, session.TokenHash, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return "", nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return "", nil, err
	}
	session.ID = id

	return token, session, nil
}

// GetByToken retrieves a session by its plain token
func (r *SessionRepo) GetByToken(token string) (*models.Session, error) {
	tokenHash := hashToken(token)
	session := &models.Session{}

	err := DB.QueryRow(`
		SELECT id, user_id, token_hash, created_at, expires_at
		FROM sessions WHERE token_hash = ?
	`, tokenHash).Scan(
		&session.ID, &session.UserID, &session.TokenHash,
		&session.CreatedAt, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	// Expiry is detected lazily; clean up the stale row
	if time.Now().After(session.ExpiresAt) {
		r.Delete(session.ID)
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Delete deletes a session by ID
func (r *SessionRepo) Delete(id int64) error {
	_, err := DB.Exec("DELETE FROM sessions WHERE id = ?", id)
	return err
}

// DeleteByToken deletes a session by its plain token
func (r *SessionRepo) DeleteByToken(token string) error {
	tokenHash := hashToken(token)
	result, err := DB.Exec("DELETE FROM sessions WHERE token_hash = ?", tokenHash)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpired removes all expired sessions
func (r *SessionRepo) DeleteExpired() (int64, error) {
	result, err := DB.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// hashToken creates a SHA-256 hash of the token
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
