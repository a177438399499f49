// Package ghosts backs the ghost system pages: anonymized post
// oversight and the alias name pool.
package ghosts

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
	ErrNotFound   = errors.New("ghost name not found")
)

type Store interface {
	ListPosts(ctx context.Context, params backendhttp.ListParams) ([]model.GhostPost, backendhttp.PageInfo, error)
	Summary(ctx context.Context) (model.GhostSummary, error)
	ListNames(ctx context.Context, params backendhttp.ListParams) ([]model.GhostName, backendhttp.PageInfo, error)
	SetNameStatus(ctx context.Context, name string, status enums.GhostNameStatus) error
}

type PostsPage struct {
	Posts   []model.GhostPost
	Summary model.GhostSummary
	Paging  paging.Meta
}

type NamesPage struct {
	Names  []model.GhostName
	Paging paging.Meta
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListPosts also loads the summary tiles shown above the table. A
// summary failure does not block the list; the tiles render zeroed.
func (s *Service) ListPosts(ctx context.Context, page int, search string) (PostsPage, error) {
	if page < 1 {
		page = 1
	}

	posts, info, err := s.store.ListPosts(ctx, backendhttp.ListParams{
		Page:   page,
		Limit:  paging.DefaultPageSize,
		Search: search,
	})
	if err != nil {
		return PostsPage{}, fmt.Errorf("list ghost posts: %w", err)
	}

	summary, err := s.store.Summary(ctx)
	if err != nil {
		summary = model.GhostSummary{}
	}

	return PostsPage{
		Posts:   posts,
		Summary: summary,
		Paging:  paging.MetaFor(page, paging.DefaultPageSize, info.Total),
	}, nil
}

func (s *Service) ListNames(ctx context.Context, page int, search, status string) (NamesPage, error) {
	if status != "" {
		if _, ok := enums.ParseGhostNameStatus(status); !ok {
			return NamesPage{}, ErrValidation
		}
	}
	if page < 1 {
		page = 1
	}

	names, info, err := s.store.ListNames(ctx, backendhttp.ListParams{
		Page:   page,
		Limit:  paging.DefaultPageSize,
		Search: search,
		Status: status,
	})
	if err != nil {
		return NamesPage{}, fmt.Errorf("list ghost names: %w", err)
	}

	return NamesPage{
		Names:  names,
		Paging: paging.MetaFor(page, paging.DefaultPageSize, info.Total),
	}, nil
}

func (s *Service) SetNameStatus(ctx context.Context, name, status string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrValidation
	}
	parsed, ok := enums.ParseGhostNameStatus(strings.ToLower(strings.TrimSpace(status)))
	if !ok {
		return ErrValidation
	}

	if err := s.store.SetNameStatus(ctx, name, parsed); err != nil {
		if backendhttp.StatusOf(err) == 404 {
			return ErrNotFound
		}
		return fmt.Errorf("set ghost name status: %w", err)
	}
	return nil
}
