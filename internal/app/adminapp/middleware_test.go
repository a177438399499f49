package adminapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"

	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
	redrepo "github.com/casarancha/adminpanel/internal/repo/redis"
	authsvc "github.com/casarancha/adminpanel/internal/services/auth"
)

type backendLoginStub struct {
	token string
}

func (s backendLoginStub) Login(_ context.Context, _, _ string) (string, error) {
	return s.token, nil
}

func newTestAuthService(t *testing.T) *authsvc.Service {
	t.Helper()

	mini := miniredis.RunT(t)
	sessions := redrepo.NewSessionRepo(redrepo.NewClient(mini.Addr(), "", 0))
	manager := authsvc.NewJWTManager("test-secret", 15*time.Minute)
	return authsvc.NewService(manager, sessions, backendLoginStub{token: "backend-token"}, 24*time.Hour)
}

func TestAuthMiddlewareRejectsMissingBearer(t *testing.T) {
	mw := AuthMiddleware(newTestAuthService(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("handler must not be called without a bearer token")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	mw := AuthMiddleware(newTestAuthService(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("handler must not be called with an invalid token")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareSetsIdentityAndBackendToken(t *testing.T) {
	service := newTestAuthService(t)
	result, err := service.Login(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	mw := AuthMiddleware(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+result.AccessToken)
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := authsvc.IdentityFromContext(r.Context())
		if !ok || identity.Email != "admin@example.com" {
			t.Fatalf("identity missing in context: %+v", identity)
		}
		if got := backendhttp.TokenFromContext(r.Context()); got != "backend-token" {
			t.Fatalf("backend token mismatch: %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusNoContent)
	}
}

func TestExtractBearerToken(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  string
		ok    bool
	}{
		{name: "valid", value: "Bearer abc", want: "abc", ok: true},
		{name: "lowercase scheme", value: "bearer abc", want: "abc", ok: true},
		{name: "missing token", value: "Bearer ", ok: false},
		{name: "wrong scheme", value: "Basic abc", ok: false},
		{name: "empty", value: "", ok: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractBearerToken(tc.value)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("extractBearerToken(%q) = %q, %v; want %q, %v", tc.value, got, ok, tc.want, tc.ok)
			}
		})
	}
}
