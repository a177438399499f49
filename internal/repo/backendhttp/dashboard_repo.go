package backendhttp

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/casarancha/adminpanel/internal/domain/model"
)

type DashboardRepo struct {
	client *Client
}

func NewDashboardRepo(client *Client) *DashboardRepo {
	return &DashboardRepo{client: client}
}

func (r *DashboardRepo) Summary(ctx context.Context) (model.DashboardSummary, error) {
	response := dashboardSummaryResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/dashboard/summary", nil, nil, &response); err != nil {
		return model.DashboardSummary{}, err
	}
	return response.Data.toModel(), nil
}

type dashboardSummaryResponseDTO struct {
	Data dashboardSummaryDTO `json:"data"`
}

type dashboardSummaryDTO struct {
	Totals struct {
		Users            int `json:"users"`
		OnlineNow        int `json:"onlineNow"`
		VerifiedAccounts int `json:"verifiedAccounts"`
		GhostPosts24h    int `json:"ghostPosts24h"`
		FlaggedContent   int `json:"flaggedContent"`
	} `json:"totals"`
	TopActiveUsers []topActiveUserDTO `json:"topActiveUsers"`
	AIEngagement   struct {
		Comments int `json:"comments"`
		Likes    int `json:"likes"`
		Replies  int `json:"replies"`
	} `json:"aiEngagementToday"`
	FomoStatus struct {
		IsActive bool   `json:"isActive"`
		EndTime  string `json:"endTime"`
		Stats    struct {
			PostCount        int `json:"postCount"`
			ParticipantCount int `json:"participantCount"`
		} `json:"stats"`
	} `json:"fomoStatus"`
	FlaggedExplicit struct {
		Total         int `json:"total"`
		HiddenUnder18 int `json:"hiddenUnder18"`
		Escalated     int `json:"escalated"`
	} `json:"flaggedExplicitContent"`
}

type topActiveUserDTO struct {
	ID           string `json:"_id"`
	Username     string `json:"username"`
	DisplayName  string `json:"displayName"`
	Posts        int    `json:"posts"`
	Comments     int    `json:"comments"`
	Interactions int    `json:"interactions"`
}

func (dto dashboardSummaryDTO) toModel() model.DashboardSummary {
	topUsers := make([]model.TopActiveUser, 0, len(dto.TopActiveUsers))
	for _, userDTO := range dto.TopActiveUsers {
		topUsers = append(topUsers, model.TopActiveUser{
			ID:           strings.TrimSpace(userDTO.ID),
			Username:     strings.TrimSpace(userDTO.Username),
			DisplayName:  strings.TrimSpace(userDTO.DisplayName),
			Posts:        userDTO.Posts,
			Comments:     userDTO.Comments,
			Interactions: userDTO.Interactions,
		})
	}

	endTime := time.Time{}
	if trimmed := strings.TrimSpace(dto.FomoStatus.EndTime); trimmed != "" {
		if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
			endTime = parsed
		}
	}

	return model.DashboardSummary{
		Totals: model.DashboardTotals{
			Users:            dto.Totals.Users,
			OnlineNow:        dto.Totals.OnlineNow,
			VerifiedAccounts: dto.Totals.VerifiedAccounts,
			GhostPosts24h:    dto.Totals.GhostPosts24h,
			FlaggedContent:   dto.Totals.FlaggedContent,
		},
		TopActiveUsers: topUsers,
		AIEngagementToday: model.AIEngagement{
			Comments: dto.AIEngagement.Comments,
			Likes:    dto.AIEngagement.Likes,
			Replies:  dto.AIEngagement.Replies,
		},
		FomoStatus: model.FOMOStatusSummary{
			IsActive: dto.FomoStatus.IsActive,
			EndTime:  endTime,
			Stats: model.FOMOStatsSummary{
				PostCount:        dto.FomoStatus.Stats.PostCount,
				ParticipantCount: dto.FomoStatus.Stats.ParticipantCount,
			},
		},
		FlaggedExplicitContent: model.ExplicitContentSummary{
			Total:         dto.FlaggedExplicit.Total,
			HiddenUnder18: dto.FlaggedExplicit.HiddenUnder18,
			Escalated:     dto.FlaggedExplicit.Escalated,
		},
	}
}
