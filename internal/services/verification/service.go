package verification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
	"github.com/casarancha/adminpanel/internal/pkg/paging"
	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("verification request not found")
)

type Store interface {
	ListRequests(ctx context.Context, params backendhttp.ListParams) ([]model.VerificationRequest, backendhttp.PageInfo, error)
	Stats(ctx context.Context) (model.VerificationStats, error)
	Review(ctx context.Context, requestID string, status enums.VerificationStatus, reason string) error
}

type Page struct {
	Requests []model.VerificationRequest
	Stats    model.VerificationStats
	Paging   paging.Meta
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListRequests(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		page = 1
	}

	requests, info, err := s.store.ListRequests(ctx, backendhttp.ListParams{
		Page:  page,
		Limit: paging.DefaultPageSize,
	})
	if err != nil {
		return Page{}, fmt.Errorf("list verification requests: %w", err)
	}

	stats, err := s.store.Stats(ctx)
	if err != nil {
		stats = model.VerificationStats{}
	}

	return Page{
		Requests: requests,
		Stats:    stats,
		Paging:   paging.MetaFor(page, paging.DefaultPageSize, info.Total),
	}, nil
}

// Review approves or rejects a pending request. Rejections must carry
// a reason; approvals ignore it.
func (s *Service) Review(ctx context.Context, requestID, action, reason string) error {
	requestID = strings.TrimSpace(requestID)
	action = strings.ToLower(strings.TrimSpace(action))
	reason = strings.TrimSpace(reason)
	if requestID == "" {
		return ErrValidation
	}

	var status enums.VerificationStatus
	switch action {
	case "approve":
		status = enums.VerificationApproved
		reason = ""
	case "reject":
		if reason == "" {
			return ErrValidation
		}
		status = enums.VerificationRejected
	default:
		return ErrValidation
	}

	if err := s.store.Review(ctx, requestID, status, reason); err != nil {
		if backendhttp.StatusOf(err) == 404 {
			return ErrNotFound
		}
		return fmt.Errorf("review verification request: %w", err)
	}
	return nil
}
