package aicampaigns

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
	ErrNotFound   = errors.New("campaign not found")
)

type Store interface {
	List(ctx context.Context, params backendhttp.ListParams) ([]model.AICampaign, backendhttp.PageInfo, error)
	Create(ctx context.Context, name string, campaignType enums.CampaignType) (model.AICampaign, error)
	SetStatus(ctx context.Context, campaignID string, status enums.CampaignStatus) error
	Delete(ctx context.Context, campaignID string) error
}

type Page struct {
	Campaigns []model.AICampaign
	Paging    paging.Meta
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListCampaigns(ctx context.Context, page int, status string) (Page, error) {
	if status != "" {
		if _, ok := enums.ParseCampaignStatus(status); !ok {
			return Page{}, ErrValidation
		}
	}
	if page < 1 {
		page = 1
	}

	campaigns, info, err := s.store.List(ctx, backendhttp.ListParams{
		Page:   page,
		Limit:  paging.DefaultPageSize,
		Status: status,
	})
	if err != nil {
		return Page{}, fmt.Errorf("list campaigns: %w", err)
	}

	return Page{
		Campaigns: campaigns,
		Paging:    paging.MetaFor(page, paging.DefaultPageSize, info.Total),
	}, nil
}

// CreateCampaign validates locally before touching the backend; an
// empty name never reaches the network.
func (s *Service) CreateCampaign(ctx context.Context, name, campaignType string) (model.AICampaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.AICampaign{}, ErrValidation
	}
	parsedType, ok := enums.ParseCampaignType(strings.ToLower(strings.TrimSpace(campaignType)))
	if !ok {
		return model.AICampaign{}, ErrValidation
	}

	campaign, err := s.store.Create(ctx, name, parsedType)
	if err != nil {
		return model.AICampaign{}, fmt.Errorf("create campaign: %w", err)
	}
	return campaign, nil
}

// Toggle flips a campaign between active and paused. Completed
// campaigns cannot be toggled.
func (s *Service) Toggle(ctx context.Context, campaignID, currentStatus string) (enums.CampaignStatus, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return "", ErrValidation
	}

	var next enums.CampaignStatus
	switch enums.CampaignStatus(strings.ToLower(strings.TrimSpace(currentStatus))) {
	case enums.CampaignStatusActive:
		next = enums.CampaignStatusPaused
	case enums.CampaignStatusPaused:
		next = enums.CampaignStatusActive
	default:
		return "", ErrValidation
	}

	if err := s.store.SetStatus(ctx, campaignID, next); err != nil {
		if backendhttp.StatusOf(err) == 404 {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("set campaign status: %w", err)
	}
	return next, nil
}

func (s *Service) DeleteCampaign(ctx context.Context, campaignID string) error {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return ErrValidation
	}

	if err := s.store.Delete(ctx, campaignID); err != nil {
		if backendhttp.StatusOf(err) == 404 {
			return ErrNotFound
		}
		return fmt.Errorf("delete campaign: %w", err)
	}
	return nil
}
