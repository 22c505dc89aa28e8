package services

import (
	"database/sql"
	"errors"
	"time"

	"stockroom/internal/auth"
	"stockroom/internal/domain"
	"stockroom/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("email already exists")
)

type AuthService struct {
	Users     *repos.UserRepo
	JWTSecret []byte
	TokenTTL  time.Duration
}

func NewAuthService(users *repos.UserRepo, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, JWTSecret: []byte(secret), TokenTTL: ttl}
}

// Register creates the user and issues a token bound to the new id.
// Plaintext passwords are never stored.
func (s *AuthService) Register(name, email, password string) (*domain.User, string, error) {
	if _, err := s.Users.ByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, "", err
	}
	u := &domain.User{ID: uuid.NewString(), Email: email, Name: name, Hash: string(hash)}
	if err := s.Users.Create(u); err != nil {
		// Lost the race against a concurrent registration for the same email.
		if repos.IsUniqueViolation(err) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := auth.GenerateToken(u.ID, s.JWTSecret, s.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*domain.User, string, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, "", ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, "", ErrBadCreds
	}
	token, err := auth.GenerateToken(u.ID, s.JWTSecret, s.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// VerifyToken returns the user id a bearer token is bound to.
func (s *AuthService) VerifyToken(token string) (string, error) {
	return auth.UserIDFromToken(token, s.JWTSecret)
}
