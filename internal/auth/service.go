package auth

import (
	"errors"
	"time"

	"bookshelf-backend/internal/database"
	"bookshelf-backend/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// SessionDuration is the fixed lifetime of a session cookie
const SessionDuration = 24 * time.Hour

// Service handles authentication logic
type Service struct {
	userRepo    *database.UserRepo
	sessionRepo *database.SessionRepo
}

// NewService creates a new auth service
func NewService() *Service {
	return &Service{
		userRepo:    database.NewUserRepo(),
		sessionRepo: database.NewSessionRepo(),
	}
}

// LoginResponse represents a successful login
type LoginResponse struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// Login authenticates a user by username and creates a session.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials;
// the caller cannot tell them apart.
func (s *Service) Login(username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	valid, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	return s.establish(user)
}

// Register creates a new user and logs it in. The caller is expected to
// have checked email availability; a race on the unique email column still
// surfaces as database.ErrEmailTaken.
func (s *Service) Register(username, email, password string) (*LoginResponse, error) {
	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.establish(user)
}

// establish creates a session for the user
func (s *Service) establish(user *models.User) (*LoginResponse, error) {
	token, session, err := s.sessionRepo.Create(user.ID, SessionDuration)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:      user,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout invalidates a session
func (s *Service) Logout(token string) error {
	return s.sessionRepo.DeleteByToken(token)
}

// ValidateToken validates a session token and returns the user
func (s *Service) ValidateToken(token string) (*models.User, *models.Session, error) {
	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}
