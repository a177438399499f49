package dto

import "github.com/casarancha/adminpanel/internal/domain/model"

type SecurityEventItem struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Detail     string `json:"detail"`
	IPAddress  string `json:"ip_address"`
	OccurredAt string `json:"occurred_at"`
}

type SecuritySummaryResponse struct {
	BlockedIPs     int                 `json:"blocked_ips"`
	FailedLogins24 int                 `json:"failed_logins_24h"`
	ActiveSessions int                 `json:"active_sessions"`
	RecentEvents   []SecurityEventItem `json:"recent_events"`
}

func NewSecuritySummaryResponse(summary model.SecuritySummary) SecuritySummaryResponse {
	events := make([]SecurityEventItem, 0, len(summary.RecentEvents))
	for _, event := range summary.RecentEvents {
		events = append(events, SecurityEventItem{
			ID:         event.ID,
			Type:       event.Type,
			Detail:     event.Detail,
			IPAddress:  event.IPAddress,
			OccurredAt: event.OccurredAt,
		})
	}
	return SecuritySummaryResponse{
		BlockedIPs:     summary.BlockedIPs,
		FailedLogins24: summary.FailedLogins24,
		ActiveSessions: summary.ActiveSessions,
		RecentEvents:   events,
	}
}
