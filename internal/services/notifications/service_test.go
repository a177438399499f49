package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
)

type stubStore struct {
	sent []model.Notification
}

func (s *stubStore) List(_ context.Context, params backendhttp.ListParams) ([]model.Notification, backendhttp.PageInfo, error) {
	return nil, backendhttp.PageInfo{}, nil
}

func (s *stubStore) Send(_ context.Context, notification model.Notification) (model.Notification, error) {
	s.sent = append(s.sent, notification)
	notification.ID = "n1"
	return notification, nil
}

func TestSendValidatesInputBeforeBackendCall(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		title       string
		content     string
		targetType  string
		targetValue string
	}{
		{"empty title", "", "body", "all", ""},
		{"empty content", "Update", "  ", "all", ""},
		{"unknown audience", "Update", "body", "everyone", ""},
		{"group audience without target", "Update", "body", "group", ""},
		{"user audience without target", "Update", "body", "user", "  "},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := &stubStore{}
			svc := NewService(store)

			_, err := svc.Send(context.Background(), tc.title, tc.content, tc.targetType, tc.targetValue, "")
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if len(store.sent) != 0 {
				t.Fatalf("backend should not be called: %v", store.sent)
			}
		})
	}
}

func TestSendTrimsAndPassesThrough(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	svc := NewService(store)

	sent, err := svc.Send(context.Background(), "  Maintenance  ", "Planned downtime tonight", "group", " g42 ", "")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if sent.ID != "n1" {
		t.Fatalf("unexpected id: %q", sent.ID)
	}
	if len(store.sent) != 1 {
		t.Fatalf("expected one backend call, got %d", len(store.sent))
	}
	got := store.sent[0]
	if got.Title != "Maintenance" || got.TargetType != enums.AudienceGroup || got.TargetValue != "g42" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}
