package backendhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/model"
)

type AdsRepo struct {
	client *Client
}

func NewAdsRepo(client *Client) *AdsRepo {
	return &AdsRepo{client: client}
}

func (r *AdsRepo) Summary(ctx context.Context) (model.AdsSummary, error) {
	response := adsSummaryResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/ads/summary", nil, nil, &response); err != nil {
		return model.AdsSummary{}, err
	}
	return model.AdsSummary{
		TotalImpressions: response.Data.TotalImpressions,
		TotalClicks:      response.Data.TotalClicks,
		AvgCTR:           response.Data.AvgCTR,
		TotalSpend:       response.Data.TotalSpend,
	}, nil
}

func (r *AdsRepo) ListCampaigns(ctx context.Context, params ListParams) ([]model.AdCampaign, PageInfo, error) {
	response := adCampaignsResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/ads/campaigns", params.query(), nil, &response); err != nil {
		return nil, PageInfo{}, err
	}

	campaigns := make([]model.AdCampaign, 0, len(response.Data))
	for _, dto := range response.Data {
		campaigns = append(campaigns, dto.toModel())
	}
	return campaigns, response.Pagination.toPageInfo(), nil
}

func (r *AdsRepo) CreateCampaign(ctx context.Context, name string, budget float64) (model.AdCampaign, error) {
	request := map[string]interface{}{
		"name":   strings.TrimSpace(name),
		"budget": budget,
	}

	response := adCampaignResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodPost, "/ads/campaigns", nil, request, &response); err != nil {
		return model.AdCampaign{}, err
	}
	return response.Data.toModel(), nil
}

type adsSummaryResponseDTO struct {
	Data struct {
		TotalImpressions int     `json:"totalImpressions"`
		TotalClicks      int     `json:"totalClicks"`
		AvgCTR           float64 `json:"avgCtr"`
		TotalSpend       float64 `json:"totalSpend"`
	} `json:"data"`
}

type adCampaignsResponseDTO struct {
	Data       []adCampaignDTO `json:"data"`
	Pagination paginationDTO   `json:"pagination"`
}

type adCampaignResponseDTO struct {
	Data adCampaignDTO `json:"data"`
}

type adCampaignDTO struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Spend       float64 `json:"spend"`
}

func (dto adCampaignDTO) toModel() model.AdCampaign {
	return model.AdCampaign{
		ID:          strings.TrimSpace(dto.ID),
		Name:        strings.TrimSpace(dto.Name),
		Impressions: dto.Impressions,
		Clicks:      dto.Clicks,
		CTR:         dto.CTR,
		Spend:       dto.Spend,
	}
}
