package dto

import "github.com/casarancha/adminpanel/internal/domain/model"

type VerificationRequestItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Type        string `json:"type"`
	SubmittedAt string `json:"submitted_at"`
	Status      string `json:"status"`
}

type VerificationStats struct {
	Pending     int `json:"pending"`
	Approved30d int `json:"approved_30d"`
	Rejected30d int `json:"rejected_30d"`
}

type VerificationResponse struct {
	Requests []VerificationRequestItem `json:"requests"`
	Stats    VerificationStats         `json:"stats"`
	Paging   Paging                    `json:"paging"`
}

func NewVerificationResponse(requests []model.VerificationRequest, stats model.VerificationStats, paging Paging) VerificationResponse {
	items := make([]VerificationRequestItem, 0, len(requests))
	for _, request := range requests {
		items = append(items, VerificationRequestItem{
			ID:          request.ID,
			DisplayName: request.DisplayName,
			Email:       request.Email,
			Type:        request.Type,
			SubmittedAt: request.SubmittedAt,
			Status:      string(request.Status),
		})
	}
	return VerificationResponse{
		Requests: items,
		Stats: VerificationStats{
			Pending:     stats.Pending,
			Approved30d: stats.Approved30d,
			Rejected30d: stats.Rejected30d,
		},
		Paging: paging,
	}
}

type VerificationReviewRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}
