package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	redrepo "github.com/casarancha/adminpanel/internal/repo/redis"
	authsvc "github.com/casarancha/adminpanel/internal/services/auth"
)

type stubBackendLogin struct {
	token string
	err   error
	calls int
}

func (s *stubBackendLogin) Login(_ context.Context, email, password string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func TestLoginIssuesTokenAndPersistsSession(t *testing.T) {
	backend := &stubBackendLogin{token: "backend-token"}
	svc, cleanup := newAuthServiceForTest(t, backend)
	defer cleanup()

	ctx := context.Background()
	result, err := svc.Login(ctx, " Admin@Example.com ", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if result.Email != "admin@example.com" {
		t.Fatalf("email not normalized: %q", result.Email)
	}
	if result.AccessToken == "" {
		t.Fatal("missing access token")
	}

	identity, err := svc.ValidateAccessToken(ctx, result.AccessToken)
	if err != nil {
		t.Fatalf("validate access token: %v", err)
	}
	if identity.Email != "admin@example.com" {
		t.Fatalf("unexpected identity email: %q", identity.Email)
	}
	if identity.BackendToken != "backend-token" {
		t.Fatalf("session should carry the backend token, got %q", identity.BackendToken)
	}
}

func TestLoginRejectsEmptyCredentialsWithoutBackendCall(t *testing.T) {
	backend := &stubBackendLogin{token: "backend-token"}
	svc, cleanup := newAuthServiceForTest(t, backend)
	defer cleanup()

	if _, err := svc.Login(context.Background(), "", "secret"); !errors.Is(err, authsvc.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "admin@example.com", ""); !errors.Is(err, authsvc.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if backend.calls != 0 {
		t.Fatalf("backend should not be called on invalid input, calls=%d", backend.calls)
	}
}

func TestLoginPropagatesBackendRejection(t *testing.T) {
	backendErr := errors.New("invalid email or password")
	backend := &stubBackendLogin{err: backendErr}
	svc, cleanup := newAuthServiceForTest(t, backend)
	defer cleanup()

	if _, err := svc.Login(context.Background(), "admin@example.com", "wrong"); !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	backend := &stubBackendLogin{token: "backend-token"}
	svc, cleanup := newAuthServiceForTest(t, backend)
	defer cleanup()

	ctx := context.Background()
	result, err := svc.Login(ctx, "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	identity, err := svc.ValidateAccessToken(ctx, result.AccessToken)
	if err != nil {
		t.Fatalf("validate access token before logout: %v", err)
	}

	if err := svc.Logout(ctx, identity.SID); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := svc.ValidateAccessToken(ctx, result.AccessToken); !errors.Is(err, authsvc.ErrUnauthorized) {
		t.Fatalf("access token should be unauthorized after logout, got err=%v", err)
	}
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	backend := &stubBackendLogin{token: "backend-token"}
	svc, cleanup := newAuthServiceForTest(t, backend)
	defer cleanup()

	ctx := context.Background()
	first, err := svc.Login(ctx, "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.Login(ctx, "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	if err := svc.LogoutAll(ctx, "admin@example.com"); err != nil {
		t.Fatalf("logout all: %v", err)
	}

	if _, err := svc.ValidateAccessToken(ctx, first.AccessToken); !errors.Is(err, authsvc.ErrUnauthorized) {
		t.Fatalf("first session should be revoked, got err=%v", err)
	}
	if _, err := svc.ValidateAccessToken(ctx, second.AccessToken); !errors.Is(err, authsvc.ErrUnauthorized) {
		t.Fatalf("second session should be revoked, got err=%v", err)
	}
}

func newAuthServiceForTest(t *testing.T, backend authsvc.BackendLogin) (*authsvc.Service, func()) {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	repo := redrepo.NewSessionRepo(client)
	jwtManager := authsvc.NewJWTManager("test-secret", 15*time.Minute)
	svc := authsvc.NewService(jwtManager, repo, backend, 24*time.Hour)

	cleanup := func() {
		_ = client.Close()
		mini.Close()
	}

	return svc, cleanup
}
