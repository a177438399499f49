// Package fomo backs the posting-window management page. Window status
// is derived by the backend from its dates; the panel only schedules
// and lists.
package fomo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/casarancha/adminpanel/internal/domain/model"
	"github.com/casarancha/adminpanel/internal/pkg/paging"
	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
)

var ErrValidation = errors.New("validation error")

type Store interface {
	ListWindows(ctx context.Context, params backendhttp.ListParams) ([]model.FOMOWindow, backendhttp.PageInfo, error)
	CreateWindow(ctx context.Context, name, startDate, endDate string) (model.FOMOWindow, error)
}

type Page struct {
	Windows []model.FOMOWindow
	Paging  paging.Meta
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListWindows(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		page = 1
	}

	windows, info, err := s.store.ListWindows(ctx, backendhttp.ListParams{
		Page:  page,
		Limit: paging.DefaultPageSize,
	})
	if err != nil {
		return Page{}, fmt.Errorf("list fomo windows: %w", err)
	}

	return Page{
		Windows: windows,
		Paging:  paging.MetaFor(page, paging.DefaultPageSize, info.Total),
	}, nil
}

func (s *Service) CreateWindow(ctx context.Context, name, startDate, endDate string) (model.FOMOWindow, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.FOMOWindow{}, ErrValidation
	}

	start, err := time.Parse("2006-01-02", strings.TrimSpace(startDate))
	if err != nil {
		return model.FOMOWindow{}, ErrValidation
	}
	end, err := time.Parse("2006-01-02", strings.TrimSpace(endDate))
	if err != nil {
		return model.FOMOWindow{}, ErrValidation
	}
	if !end.After(start) {
		return model.FOMOWindow{}, ErrValidation
	}

	window, err := s.store.CreateWindow(ctx, name, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return model.FOMOWindow{}, fmt.Errorf("create fomo window: %w", err)
	}
	return window, nil
}
