package dto

import "github.com/casarancha/adminpanel/internal/domain/model"

type AICampaignItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	TypeLabel    string `json:"type_label"`
	Status       string `json:"status"`
	Interactions int    `json:"interactions"`
	Reach        int    `json:"reach"`
	StartedAt    string `json:"started_at"`
}

func NewAICampaignItem(campaign model.AICampaign) AICampaignItem {
	return AICampaignItem{
		ID:           campaign.ID,
		Name:         campaign.Name,
		Type:         string(campaign.Type),
		TypeLabel:    campaign.Type.Label(),
		Status:       string(campaign.Status),
		Interactions: campaign.Interactions,
		Reach:        campaign.Reach,
		StartedAt:    campaign.StartedAt,
	}
}

type AICampaignsResponse struct {
	Campaigns []AICampaignItem `json:"campaigns"`
	Paging    Paging           `json:"paging"`
}

type CreateAICampaignRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type ToggleAICampaignRequest struct {
	CurrentStatus string `json:"current_status"`
}

type ToggleAICampaignResponse struct {
	Status string `json:"status"`
}

type AdCampaignItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Spend       float64 `json:"spend"`
}

type AdsOverviewResponse struct {
	Summary   AdsSummary       `json:"summary"`
	Campaigns []AdCampaignItem `json:"campaigns"`
	Paging    Paging           `json:"paging"`
}

type AdsSummary struct {
	TotalImpressions int     `json:"total_impressions"`
	TotalClicks      int     `json:"total_clicks"`
	AvgCTR           float64 `json:"avg_ctr"`
	TotalSpend       float64 `json:"total_spend"`
}

func NewAdsOverviewResponse(summary model.AdsSummary, campaigns []model.AdCampaign, paging Paging) AdsOverviewResponse {
	items := make([]AdCampaignItem, 0, len(campaigns))
	for _, campaign := range campaigns {
		items = append(items, AdCampaignItem{
			ID:          campaign.ID,
			Name:        campaign.Name,
			Impressions: campaign.Impressions,
			Clicks:      campaign.Clicks,
			CTR:         campaign.CTR,
			Spend:       campaign.Spend,
		})
	}
	return AdsOverviewResponse{
		Summary: AdsSummary{
			TotalImpressions: summary.TotalImpressions,
			TotalClicks:      summary.TotalClicks,
			AvgCTR:           summary.AvgCTR,
			TotalSpend:       summary.TotalSpend,
		},
		Campaigns: items,
		Paging:    paging,
	}
}

type CreateAdCampaignRequest struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
}
