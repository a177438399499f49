package moderation

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
	ErrNotFound   = errors.New("flag not found")
)

type Store interface {
	ListFlags(ctx context.Context, params backendhttp.ListParams) ([]model.ContentFlag, backendhttp.PageInfo, error)
	SetFlagStatus(ctx context.Context, flagID string, status enums.FlagStatus) error
}

type Page struct {
	Flags  []model.ContentFlag
	Paging paging.Meta
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListFlags(ctx context.Context, page int, search, status string) (Page, error) {
	if status != "" {
		if _, ok := enums.ParseFlagStatus(status); !ok {
			return Page{}, ErrValidation
		}
	}
	if page < 1 {
		page = 1
	}

	flags, info, err := s.store.ListFlags(ctx, backendhttp.ListParams{
		Page:   page,
		Limit:  paging.DefaultPageSize,
		Search: search,
		Status: status,
	})
	if err != nil {
		return Page{}, fmt.Errorf("list flags: %w", err)
	}

	return Page{
		Flags:  flags,
		Paging: paging.MetaFor(page, paging.DefaultPageSize, info.Total),
	}, nil
}

// Review marks a flag reviewed or hidden. Pending is not a reviewable
// target.
func (s *Service) Review(ctx context.Context, flagID, status string) error {
	flagID = strings.TrimSpace(flagID)
	if flagID == "" {
		return ErrValidation
	}
	parsed, ok := enums.ParseFlagStatus(strings.ToLower(strings.TrimSpace(status)))
	if !ok || !parsed.Terminal() {
		return ErrValidation
	}

	if err := s.store.SetFlagStatus(ctx, flagID, parsed); err != nil {
		if backendhttp.StatusOf(err) == 404 {
			return ErrNotFound
		}
		return fmt.Errorf("set flag status: %w", err)
	}
	return nil
}
