package groups

import (
	"context"
	"fmt"

	"github.com/casarancha/adminpanel/internal/domain/model"
	"github.com/casarancha/adminpanel/internal/pkg/paging"
	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
)

type Store interface {
	List(ctx context.Context, params backendhttp.ListParams) ([]model.Group, backendhttp.PageInfo, error)
}

type Page struct {
	Groups []model.Group
	Paging paging.Meta
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListGroups(ctx context.Context, page int, search string) (Page, error) {
	if page < 1 {
		page = 1
	}

	groups, info, err := s.store.List(ctx, backendhttp.ListParams{
		Page:   page,
		Limit:  paging.DefaultPageSize,
		Search: search,
	})
	if err != nil {
		return Page{}, fmt.Errorf("list groups: %w", err)
	}

	return Page{
		Groups: groups,
		Paging: paging.MetaFor(page, paging.DefaultPageSize, info.Total),
	}, nil
}
