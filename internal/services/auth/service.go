package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinSessionTTL = time.Hour
	MaxSessionTTL = 30 * 24 * time.Hour
)

type SessionStore interface {
	Create(ctx context.Context, session SessionRecord) error
	Get(ctx context.Context, sid string) (SessionRecord, error)
	Delete(ctx context.Context, sid string) error
	DeleteAllForEmail(ctx context.Context, email string) error
}

// BackendLogin exchanges admin credentials for a platform bearer token.
type BackendLogin interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type Service struct {
	jwt        *JWTManager
	sessions   SessionStore
	backend    BackendLogin
	sessionTTL time.Duration
	now        func() time.Time
}

func NewService(jwtManager *JWTManager, sessions SessionStore, backend BackendLogin, sessionTTL time.Duration) *Service {
	if sessionTTL < MinSessionTTL {
		sessionTTL = MinSessionTTL
	}
	if sessionTTL > MaxSessionTTL {
		sessionTTL = MaxSessionTTL
	}

	return &Service{
		jwt:        jwtManager,
		sessions:   sessions,
		backend:    backend,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// Login delegates the credential check to the platform backend, then
// persists the returned token in a session and issues the panel's own
// access token.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidInput
	}

	backendToken, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}

	sessionID := uuid.NewString()
	session := SessionRecord{
		SID:          sessionID,
		Email:        email,
		BackendToken: backendToken,
		ExpiresAt:    s.now().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return LoginResult{}, fmt.Errorf("create session: %w", err)
	}

	accessToken, accessExpires, err := s.jwt.GenerateAccessToken(email, sessionID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate access token: %w", err)
	}

	return LoginResult{
		AccessToken:   accessToken,
		AccessExpires: accessExpires,
		Email:         email,
	}, nil
}

func (s *Service) Logout(ctx context.Context, sid string) error {
	if strings.TrimSpace(sid) == "" {
		return ErrInvalidInput
	}
	if err := s.sessions.Delete(ctx, sid); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Service) LogoutAll(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrInvalidInput
	}
	if err := s.sessions.DeleteAllForEmail(ctx, email); err != nil {
		return fmt.Errorf("delete all sessions: %w", err)
	}
	return nil
}

// ValidateAccessToken checks the panel JWT and loads the live session;
// a revoked or expired session invalidates the token regardless of its
// own expiry.
func (s *Service) ValidateAccessToken(ctx context.Context, accessToken string) (Identity, error) {
	claims, err := s.jwt.ParseAccessToken(accessToken)
	if err != nil {
		return Identity{}, ErrUnauthorized
	}

	session, err := s.sessions.Get(ctx, claims.SID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return Identity{}, ErrUnauthorized
		}
		return Identity{}, fmt.Errorf("get session: %w", err)
	}

	if session.Email != claims.Email {
		return Identity{}, ErrUnauthorized
	}
	if s.now().After(session.ExpiresAt) {
		return Identity{}, ErrUnauthorized
	}

	return Identity{
		Email:        session.Email,
		SID:          claims.SID,
		BackendToken: session.BackendToken,
	}, nil
}
