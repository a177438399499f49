package backendhttp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casarancha/adminpanel/internal/domain/enums"
)

func TestModerationRepoListTranslatesStatusVocabulary(t *testing.T) {
	t.Parallel()

	var gotStatus string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStatus = r.URL.Query().Get("status")
		_, _ = w.Write([]byte(`{
			"data": [
				{"_id": "f1", "postId": "p1", "content": "spam", "reason": "spam", "author": "ghost-42", "status": "approved", "createdAt": "2025-06-01T12:00:00Z"},
				{"_id": "f2", "postId": "p2", "content": "bad", "reason": "abuse", "author": "ghost-7", "status": "removed", "createdAt": "2025-06-02T12:00:00Z"},
				{"_id": "f3", "postId": "p3", "content": "new", "reason": "nudity", "author": "ghost-9", "status": "pending", "createdAt": "2025-06-03T12:00:00Z"}
			],
			"pagination": {"total": 3, "page": 1, "limit": 10}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil, server.Client())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	repo := NewModerationRepo(client)

	flags, _, err := repo.ListFlags(context.Background(), ListParams{Status: "reviewed"})
	if err != nil {
		t.Fatalf("list flags: %v", err)
	}

	if gotStatus != "approved" {
		t.Fatalf("panel filter not translated to backend vocab: %q", gotStatus)
	}
	if flags[0].Status != enums.FlagStatusReviewed {
		t.Fatalf("approved should map to reviewed, got %q", flags[0].Status)
	}
	if flags[1].Status != enums.FlagStatusHidden {
		t.Fatalf("removed should map to hidden, got %q", flags[1].Status)
	}
	if flags[2].Status != enums.FlagStatusPending {
		t.Fatalf("pending should stay pending, got %q", flags[2].Status)
	}
}

func TestModerationRepoSetFlagStatusUsesBackendVocabulary(t *testing.T) {
	t.Parallel()

	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/moderation/status" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
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
	repo := NewModerationRepo(client)

	if err := repo.SetFlagStatus(context.Background(), "f1", enums.FlagStatusHidden); err != nil {
		t.Fatalf("set flag status: %v", err)
	}
	if gotBody["flagId"] != "f1" || gotBody["status"] != "removed" {
		t.Fatalf("unexpected payload: %+v", gotBody)
	}
}
