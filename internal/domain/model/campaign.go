package model

import "github.com/casarancha/adminpanel/internal/domain/enums"

// AICampaign is an automation campaign the backend runs; the panel lists,
// creates, pauses and deletes them but never computes their metrics.
type AICampaign struct {
	ID           string
	Name         string
	Type         enums.CampaignType
	Status       enums.CampaignStatus
	Interactions int
	Reach        int
	StartedAt    string
}

type AdCampaign struct {
	ID          string
	Name        string
	Impressions int
	Clicks      int
	CTR         float64
	Spend       float64
}

type AdsSummary struct {
	TotalImpressions int
	TotalClicks      int
	AvgCTR           float64
	TotalSpend       float64
}
