package backendhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
)

type AICampaignsRepo struct {
	client *Client
}

func NewAICampaignsRepo(client *Client) *AICampaignsRepo {
	return &AICampaignsRepo{client: client}
}

func (r *AICampaignsRepo) List(ctx context.Context, params ListParams) ([]model.AICampaign, PageInfo, error) {
	response := aiCampaignsResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/ai-campaigns", params.query(), nil, &response); err != nil {
		return nil, PageInfo{}, err
	}

	campaigns := make([]model.AICampaign, 0, len(response.Data))
	for _, dto := range response.Data {
		campaigns = append(campaigns, dto.toModel())
	}
	return campaigns, response.Pagination.toPageInfo(), nil
}

func (r *AICampaignsRepo) Create(ctx context.Context, name string, campaignType enums.CampaignType) (model.AICampaign, error) {
	request := map[string]string{
		"name": strings.TrimSpace(name),
		"type": string(campaignType),
	}

	response := aiCampaignResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodPost, "/ai-campaigns", nil, request, &response); err != nil {
		return model.AICampaign{}, err
	}
	return response.Data.toModel(), nil
}

// SetStatus flips a campaign between active and paused.
func (r *AICampaignsRepo) SetStatus(ctx context.Context, campaignID string, status enums.CampaignStatus) error {
	request := map[string]string{"status": string(status)}
	return r.client.DoJSON(ctx, http.MethodPost, "/ai-campaigns/"+strings.TrimSpace(campaignID)+"/status", nil, request, nil)
}

func (r *AICampaignsRepo) Delete(ctx context.Context, campaignID string) error {
	return r.client.DoJSON(ctx, http.MethodDelete, "/ai-campaigns/"+strings.TrimSpace(campaignID), nil, nil, nil)
}

type aiCampaignsResponseDTO struct {
	Data       []aiCampaignDTO `json:"data"`
	Pagination paginationDTO   `json:"pagination"`
}

type aiCampaignResponseDTO struct {
	Data aiCampaignDTO `json:"data"`
}

type aiCampaignDTO struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Interactions int    `json:"interactions"`
	Reach        int    `json:"reach"`
	StartedAt    string `json:"startedAt"`
}

func (dto aiCampaignDTO) toModel() model.AICampaign {
	campaignType, ok := enums.ParseCampaignType(strings.ToLower(strings.TrimSpace(dto.Type)))
	if !ok {
		campaignType = enums.CampaignTypeEngagement
	}
	status, ok := enums.ParseCampaignStatus(strings.ToLower(strings.TrimSpace(dto.Status)))
	if !ok {
		status = enums.CampaignStatusPaused
	}

	return model.AICampaign{
		ID:           strings.TrimSpace(dto.ID),
		Name:         strings.TrimSpace(dto.Name),
		Type:         campaignType,
		Status:       status,
		Interactions: dto.Interactions,
		Reach:        dto.Reach,
		StartedAt:    normalizeDate(dto.StartedAt),
	}
}
