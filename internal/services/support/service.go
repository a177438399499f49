package support

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/model"
	"github.com/casarancha/adminpanel/internal/pkg/paging"
	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("ticket not found")
)

type Store interface {
	ListTickets(ctx context.Context, params backendhttp.ListParams) ([]model.SupportTicket, backendhttp.PageInfo, error)
	Resolve(ctx context.Context, ticketID string) error
}

type Page struct {
	Tickets []model.SupportTicket
	Paging  paging.Meta
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListTickets(ctx context.Context, page int, status string) (Page, error) {
	if page < 1 {
		page = 1
	}

	tickets, info, err := s.store.ListTickets(ctx, backendhttp.ListParams{
		Page:   page,
		Limit:  paging.DefaultPageSize,
		Status: status,
	})
	if err != nil {
		return Page{}, fmt.Errorf("list support tickets: %w", err)
	}

	return Page{
		Tickets: tickets,
		Paging:  paging.MetaFor(page, paging.DefaultPageSize, info.Total),
	}, nil
}

func (s *Service) Resolve(ctx context.Context, ticketID string) error {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return ErrValidation
	}

	if err := s.store.Resolve(ctx, ticketID); err != nil {
		if backendhttp.StatusOf(err) == 404 {
			return ErrNotFound
		}
		return fmt.Errorf("resolve support ticket: %w", err)
	}
	return nil
}
