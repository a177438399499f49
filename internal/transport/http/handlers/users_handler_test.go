package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
	userssvc "github.com/casarancha/adminpanel/internal/services/users"
)

type usersStoreStub struct {
	users    []model.User
	total    int
	listErr  error
	setErr   error
	actions  []string
	lastUser string
}

func (s *usersStoreStub) List(_ context.Context, _ backendhttp.ListParams) ([]model.User, backendhttp.PageInfo, error) {
	if s.listErr != nil {
		return nil, backendhttp.PageInfo{}, s.listErr
	}
	return s.users, backendhttp.PageInfo{Total: s.total, Page: 1, Limit: 10}, nil
}

func (s *usersStoreStub) Get(_ context.Context, userID string) (model.UserProfile, error) {
	for _, user := range s.users {
		if user.ID == userID {
			return model.UserProfile{User: user}, nil
		}
	}
	return model.UserProfile{}, &backendhttp.RequestError{Op: "get user", StatusCode: http.StatusNotFound}
}

func (s *usersStoreStub) SetStatus(_ context.Context, userID, action string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.lastUser = userID
	s.actions = append(s.actions, action)
	return nil
}

func TestUsersListReturnsRowsAndPaging(t *testing.T) {
	t.Parallel()

	store := &usersStoreStub{
		users: []model.User{
			{ID: "u1", Username: "alice", Email: "alice@example.com", Status: enums.UserStatusActive},
			{ID: "u2", Username: "bob", Email: "bob@example.com", Status: enums.UserStatusSuspended},
		},
		total: 25,
	}
	handler := NewUsersHandler(userssvc.NewService(store))

	req := httptest.NewRequest(http.MethodGet, "/users?page=1", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusOK)
	}

	var body struct {
		Users []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"users"`
		Paging struct {
			TotalPages int   `json:"total_pages"`
			Buttons    []int `json:"buttons"`
		} `json:"paging"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(body.Users))
	}
	if body.Users[1].Status != "suspended" {
		t.Fatalf("unexpected status: %q", body.Users[1].Status)
	}
	if body.Paging.TotalPages != 3 {
		t.Fatalf("unexpected total pages: %d", body.Paging.TotalPages)
	}
}

func TestUsersListRejectsUnknownStatusFilter(t *testing.T) {
	t.Parallel()

	handler := NewUsersHandler(userssvc.NewService(&usersStoreStub{}))

	req := httptest.NewRequest(http.MethodGet, "/users?status=frozen", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestUsersActionPatchesRow(t *testing.T) {
	t.Parallel()

	store := &usersStoreStub{
		users: []model.User{{ID: "u1", Username: "alice", Status: enums.UserStatusActive}},
		total: 1,
	}
	service := userssvc.NewService(store)
	handler := NewUsersHandler(service)

	// Prime the service cache the way the UI does, by listing first.
	listReq := httptest.NewRequest(http.MethodGet, "/users", nil)
	handler.List(httptest.NewRecorder(), listReq)

	req := httptest.NewRequest(http.MethodPost, "/users/u1/action", strings.NewReader(`{"action":"ban"}`))
	req = req.WithContext(withURLParam(req.Context(), "id", "u1"))
	rr := httptest.NewRecorder()
	handler.Action(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusOK)
	}
	if store.lastUser != "u1" || len(store.actions) != 1 || store.actions[0] != "ban" {
		t.Fatalf("unexpected store calls: user=%q actions=%v", store.lastUser, store.actions)
	}

	var body struct {
		User struct {
			Status string `json:"status"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.User.Status != "suspended" {
		t.Fatalf("unexpected status after ban: %q", body.User.Status)
	}
}

func TestUsersActionUnknownUserReturns404(t *testing.T) {
	t.Parallel()

	store := &usersStoreStub{
		setErr: &backendhttp.RequestError{Op: "set user status", StatusCode: http.StatusNotFound},
	}
	handler := NewUsersHandler(userssvc.NewService(store))

	req := httptest.NewRequest(http.MethodPost, "/users/ghost/action", strings.NewReader(`{"action":"ban"}`))
	req = req.WithContext(withURLParam(req.Context(), "id", "ghost"))
	rr := httptest.NewRecorder()
	handler.Action(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusNotFound)
	}
}

func TestUsersListRelaysBackendFailure(t *testing.T) {
	t.Parallel()

	store := &usersStoreStub{
		listErr: &backendhttp.RequestError{Op: "list users", StatusCode: http.StatusServiceUnavailable, Message: "maintenance"},
	}
	handler := NewUsersHandler(userssvc.NewService(store))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rr.Body.String(), "maintenance") {
		t.Fatalf("expected relayed message, got %s", rr.Body.String())
	}
}

func TestUsersExportSetsCSVHeaders(t *testing.T) {
	t.Parallel()

	store := &usersStoreStub{
		users: []model.User{{ID: "u1", Username: "alice", Email: "alice@example.com", Status: enums.UserStatusActive, JoinDate: "2026-01-05"}},
		total: 1,
	}
	handler := NewUsersHandler(userssvc.NewService(store))

	req := httptest.NewRequest(http.MethodGet, "/users/export", nil)
	rr := httptest.NewRecorder()
	handler.Export(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("unexpected content type: %q", got)
	}
	disposition := rr.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="users-export-`) {
		t.Fatalf("unexpected disposition: %q", disposition)
	}
	if !strings.HasPrefix(rr.Body.String(), "Username,Email,Status") {
		t.Fatalf("unexpected csv header: %q", rr.Body.String())
	}
}

func withURLParam(ctx context.Context, key, value string) context.Context {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
}
