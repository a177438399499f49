package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
)

type storeStub struct {
	requests   []model.VerificationRequest
	statsErr   error
	reviewErr  error
	lastID     string
	lastStatus enums.VerificationStatus
	lastReason string
}

func (s *storeStub) ListRequests(_ context.Context, _ backendhttp.ListParams) ([]model.VerificationRequest, backendhttp.PageInfo, error) {
	return s.requests, backendhttp.PageInfo{Total: len(s.requests), Page: 1, Limit: 10}, nil
}

func (s *storeStub) Stats(_ context.Context) (model.VerificationStats, error) {
	if s.statsErr != nil {
		return model.VerificationStats{}, s.statsErr
	}
	return model.VerificationStats{Pending: 4, Approved30d: 12, Rejected30d: 3}, nil
}

func (s *storeStub) Review(_ context.Context, requestID string, status enums.VerificationStatus, reason string) error {
	if s.reviewErr != nil {
		return s.reviewErr
	}
	s.lastID = requestID
	s.lastStatus = status
	s.lastReason = reason
	return nil
}

func TestReviewApproveDropsReason(t *testing.T) {
	t.Parallel()

	store := &storeStub{}
	service := NewService(store)

	if err := service.Review(context.Background(), "v1", "approve", "should be ignored"); err != nil {
		t.Fatalf("review: %v", err)
	}
	if store.lastStatus != enums.VerificationApproved || store.lastReason != "" {
		t.Fatalf("unexpected store call: status=%q reason=%q", store.lastStatus, store.lastReason)
	}
}

func TestReviewRejectRequiresReason(t *testing.T) {
	t.Parallel()

	store := &storeStub{}
	service := NewService(store)

	err := service.Review(context.Background(), "v1", "reject", "   ")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if store.lastID != "" {
		t.Fatalf("store must not be called without a reason")
	}

	if err := service.Review(context.Background(), "v1", "reject", "forged document"); err != nil {
		t.Fatalf("review: %v", err)
	}
	if store.lastStatus != enums.VerificationRejected || store.lastReason != "forged document" {
		t.Fatalf("unexpected store call: status=%q reason=%q", store.lastStatus, store.lastReason)
	}
}

func TestReviewRejectsUnknownAction(t *testing.T) {
	t.Parallel()

	service := NewService(&storeStub{})

	if err := service.Review(context.Background(), "v1", "escalate", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestListRequestsSurvivesStatsFailure(t *testing.T) {
	t.Parallel()

	store := &storeStub{
		requests: []model.VerificationRequest{{ID: "v1", DisplayName: "Alice", Status: enums.VerificationPending}},
		statsErr: errors.New("stats endpoint down"),
	}
	service := NewService(store)

	page, err := service.ListRequests(context.Background(), 1)
	if err != nil {
		t.Fatalf("list requests: %v", err)
	}
	if len(page.Requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(page.Requests))
	}
	if page.Stats != (model.VerificationStats{}) {
		t.Fatalf("expected zeroed stats, got %+v", page.Stats)
	}
}
