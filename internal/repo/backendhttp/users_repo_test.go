package backendhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casarancha/adminpanel/internal/domain/enums"
)

func TestUsersRepoListMapsBackendRows(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/admin/users" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("unexpected limit: %q", got)
		}
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"_id": "u1",
					"username": " alice ",
					"email": "alice@example.com",
					"status": "Active",
					"verified": true,
					"postsCount": 12,
					"commentsCount": 4,
					"createdAt": "2025-03-14T09:30:00Z"
				},
				{
					"id": "u2",
					"username": "bob",
					"email": "bob@example.com",
					"status": "weird-value",
					"createdAt": "2025-01-02"
				}
			],
			"pagination": {"total": 25, "page": 2, "limit": 10}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil, server.Client())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	repo := NewUsersRepo(client)

	users, page, err := repo.List(context.Background(), ListParams{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("list users: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("unexpected user count: %d", len(users))
	}
	if users[0].ID != "u1" || users[0].Username != "alice" {
		t.Fatalf("unexpected first user: %+v", users[0])
	}
	if users[0].Status != enums.UserStatusActive || !users[0].Verified {
		t.Fatalf("unexpected first user status: %+v", users[0])
	}
	if users[0].JoinDate != "2025-03-14" {
		t.Fatalf("join date not normalized: %q", users[0].JoinDate)
	}
	if users[1].ID != "u2" {
		t.Fatalf("alt id not picked up: %+v", users[1])
	}
	if users[1].Status != enums.UserStatusActive {
		t.Fatalf("unknown status should default to active: %q", users[1].Status)
	}
	if page.Total != 25 || page.Page != 2 || page.Limit != 10 {
		t.Fatalf("unexpected pagination: %+v", page)
	}
}

func TestUsersRepoSetStatusPostsAction(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil, server.Client())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	repo := NewUsersRepo(client)

	if err := repo.SetStatus(context.Background(), "u1", "ban"); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if gotPath != "/user/admin/users/u1/status" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotBody["action"] != "ban" {
		t.Fatalf("unexpected action payload: %+v", gotBody)
	}
}
