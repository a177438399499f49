package backendhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/model"
)

type SecurityRepo struct {
	client *Client
}

func NewSecurityRepo(client *Client) *SecurityRepo {
	return &SecurityRepo{client: client}
}

func (r *SecurityRepo) Summary(ctx context.Context) (model.SecuritySummary, error) {
	response := securitySummaryResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/security/summary", nil, nil, &response); err != nil {
		return model.SecuritySummary{}, err
	}

	events := make([]model.SecurityEvent, 0, len(response.Data.RecentEvents))
	for _, dto := range response.Data.RecentEvents {
		events = append(events, model.SecurityEvent{
			ID:         strings.TrimSpace(dto.ID),
			Type:       strings.TrimSpace(dto.Type),
			Detail:     dto.Detail,
			IPAddress:  strings.TrimSpace(dto.IPAddress),
			OccurredAt: strings.TrimSpace(dto.OccurredAt),
		})
	}

	return model.SecuritySummary{
		BlockedIPs:     response.Data.BlockedIPs,
		FailedLogins24: response.Data.FailedLogins24,
		ActiveSessions: response.Data.ActiveSessions,
		RecentEvents:   events,
	}, nil
}

type securitySummaryResponseDTO struct {
	Data struct {
		BlockedIPs     int                `json:"blockedIps"`
		FailedLogins24 int                `json:"failedLogins24h"`
		ActiveSessions int                `json:"activeSessions"`
		RecentEvents   []securityEventDTO `json:"recentEvents"`
	} `json:"data"`
}

type securityEventDTO struct {
	ID         string `json:"_id"`
	Type       string `json:"type"`
	Detail     string `json:"detail"`
	IPAddress  string `json:"ipAddress"`
	OccurredAt string `json:"occurredAt"`
}
