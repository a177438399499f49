package ads

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/model"
	"github.com/casarancha/adminpanel/internal/pkg/paging"
	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
)

var ErrValidation = errors.New("validation error")

type Store interface {
	Summary(ctx context.Context) (model.AdsSummary, error)
	ListCampaigns(ctx context.Context, params backendhttp.ListParams) ([]model.AdCampaign, backendhttp.PageInfo, error)
	CreateCampaign(ctx context.Context, name string, budget float64) (model.AdCampaign, error)
}

type Page struct {
	Summary   model.AdsSummary
	Campaigns []model.AdCampaign
	Paging    paging.Meta
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Overview(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		page = 1
	}

	campaigns, info, err := s.store.ListCampaigns(ctx, backendhttp.ListParams{
		Page:  page,
		Limit: paging.DefaultPageSize,
	})
	if err != nil {
		return Page{}, fmt.Errorf("list ad campaigns: %w", err)
	}

	summary, err := s.store.Summary(ctx)
	if err != nil {
		summary = model.AdsSummary{}
	}

	return Page{
		Summary:   summary,
		Campaigns: campaigns,
		Paging:    paging.MetaFor(page, paging.DefaultPageSize, info.Total),
	}, nil
}

func (s *Service) CreateCampaign(ctx context.Context, name string, budget float64) (model.AdCampaign, error) {
	name = strings.TrimSpace(name)
	if name == "" || budget <= 0 {
		return model.AdCampaign{}, ErrValidation
	}

	campaign, err := s.store.CreateCampaign(ctx, name, budget)
	if err != nil {
		return model.AdCampaign{}, fmt.Errorf("create ad campaign: %w", err)
	}
	return campaign, nil
}
