package aicampaigns

import (
	"context"
	"errors"
	"testing"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
)

type stubStore struct {
	created     []string
	setStatuses []string
	deleted     []string
}

func (s *stubStore) List(_ context.Context, params backendhttp.ListParams) ([]model.AICampaign, backendhttp.PageInfo, error) {
	return nil, backendhttp.PageInfo{}, nil
}

func (s *stubStore) Create(_ context.Context, name string, campaignType enums.CampaignType) (model.AICampaign, error) {
	s.created = append(s.created, name+":"+string(campaignType))
	return model.AICampaign{ID: "c1", Name: name, Type: campaignType, Status: enums.CampaignStatusActive}, nil
}

func (s *stubStore) SetStatus(_ context.Context, campaignID string, status enums.CampaignStatus) error {
	s.setStatuses = append(s.setStatuses, campaignID+":"+string(status))
	return nil
}

func (s *stubStore) Delete(_ context.Context, campaignID string) error {
	s.deleted = append(s.deleted, campaignID)
	return nil
}

func TestCreateCampaignRejectsEmptyNameWithoutBackendCall(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	svc := NewService(store)

	if _, err := svc.CreateCampaign(context.Background(), "   ", "engagement"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatalf("backend should not be called with empty name: %v", store.created)
	}
}

func TestCreateCampaignRejectsUnknownType(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	svc := NewService(store)

	if _, err := svc.CreateCampaign(context.Background(), "Booster", "viral"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatalf("backend should not be called with unknown type: %v", store.created)
	}
}

func TestToggleFlipsActiveAndPaused(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	svc := NewService(store)

	next, err := svc.Toggle(context.Background(), "c1", "active")
	if err != nil {
		t.Fatalf("toggle active: %v", err)
	}
	if next != enums.CampaignStatusPaused {
		t.Fatalf("active should toggle to paused, got %q", next)
	}

	next, err = svc.Toggle(context.Background(), "c1", "paused")
	if err != nil {
		t.Fatalf("toggle paused: %v", err)
	}
	if next != enums.CampaignStatusActive {
		t.Fatalf("paused should toggle to active, got %q", next)
	}
}

func TestToggleRejectsCompletedCampaign(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	svc := NewService(store)

	if _, err := svc.Toggle(context.Background(), "c1", "completed"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(store.setStatuses) != 0 {
		t.Fatalf("backend should not be called for completed campaign: %v", store.setStatuses)
	}
}
