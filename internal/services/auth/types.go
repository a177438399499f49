package auth

import (
	"errors"
	"time"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrSessionNotFound = errors.New("session not found")
)

// SessionRecord is the persisted admin session. The backend token is
// the bearer credential the platform API issued at login.
type SessionRecord struct {
	SID          string
	Email        string
	BackendToken string
	ExpiresAt    time.Time
}

type AccessClaims struct {
	Email     string
	SID       string
	ExpiresAt time.Time
}

type LoginResult struct {
	AccessToken   string
	AccessExpires time.Time
	Email         string
}
