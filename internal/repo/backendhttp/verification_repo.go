package backendhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
)

type VerificationRepo struct {
	client *Client
}

func NewVerificationRepo(client *Client) *VerificationRepo {
	return &VerificationRepo{client: client}
}

func (r *VerificationRepo) ListRequests(ctx context.Context, params ListParams) ([]model.VerificationRequest, PageInfo, error) {
	response := verificationRequestsResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/verification/admin/requests", params.query(), nil, &response); err != nil {
		return nil, PageInfo{}, err
	}

	requests := make([]model.VerificationRequest, 0, len(response.Data))
	for _, dto := range response.Data {
		requests = append(requests, dto.toModel())
	}
	return requests, response.Pagination.toPageInfo(), nil
}

func (r *VerificationRepo) Stats(ctx context.Context) (model.VerificationStats, error) {
	response := verificationStatsResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/verification/admin/stats", nil, nil, &response); err != nil {
		return model.VerificationStats{}, err
	}
	return model.VerificationStats{
		Pending:     response.Data.Pending,
		Approved30d: response.Data.Approved30d,
		Rejected30d: response.Data.Rejected30d,
	}, nil
}

// Review moves a pending request to a terminal status. The backend
// takes the resulting status, not the action verb, and a reason only
// accompanies rejections.
func (r *VerificationRepo) Review(ctx context.Context, requestID string, status enums.VerificationStatus, reason string) error {
	request := map[string]string{"status": string(status)}
	if reason = strings.TrimSpace(reason); reason != "" {
		request["reason"] = reason
	}
	return r.client.DoJSON(ctx, http.MethodPost, "/verification/admin/requests/"+strings.TrimSpace(requestID), nil, request, nil)
}

type verificationRequestsResponseDTO struct {
	Data       []verificationRequestDTO `json:"data"`
	Pagination paginationDTO            `json:"pagination"`
}

type verificationRequestDTO struct {
	ID          string `json:"_id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Type        string `json:"type"`
	CreatedAt   string `json:"createdAt"`
	Status      string `json:"status"`
}

func (dto verificationRequestDTO) toModel() model.VerificationRequest {
	status, ok := enums.ParseVerificationStatus(strings.ToLower(strings.TrimSpace(dto.Status)))
	if !ok {
		status = enums.VerificationPending
	}
	return model.VerificationRequest{
		ID:          strings.TrimSpace(dto.ID),
		DisplayName: strings.TrimSpace(dto.DisplayName),
		Email:       strings.TrimSpace(dto.Email),
		Type:        strings.TrimSpace(dto.Type),
		SubmittedAt: normalizeDate(dto.CreatedAt),
		Status:      status,
	}
}

type verificationStatsResponseDTO struct {
	Data struct {
		Pending     int `json:"pending"`
		Approved30d int `json:"approved30d"`
		Rejected30d int `json:"rejected30d"`
	} `json:"data"`
}
