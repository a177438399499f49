package dto

import (
	"time"

	"github.com/casarancha/adminpanel/internal/domain/model"
	"github.com/casarancha/adminpanel/internal/services/dashboard"
)

type DashboardTotals struct {
	Users            int `json:"users"`
	OnlineNow        int `json:"online_now"`
	VerifiedAccounts int `json:"verified_accounts"`
	GhostPosts24h    int `json:"ghost_posts_24h"`
	FlaggedContent   int `json:"flagged_content"`
}

type TopActiveUserItem struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	Posts        int    `json:"posts"`
	Comments     int    `json:"comments"`
	Interactions int    `json:"interactions"`
}

type AIEngagementToday struct {
	Comments int `json:"comments"`
	Likes    int `json:"likes"`
	Replies  int `json:"replies"`
}

type FOMOStatus struct {
	IsActive  bool   `json:"is_active"`
	EndTime   string `json:"end_time,omitempty"`
	Countdown string `json:"countdown,omitempty"`
	Stats     struct {
		PostCount        int `json:"post_count"`
		ParticipantCount int `json:"participant_count"`
	} `json:"stats"`
}

type FlaggedExplicitContent struct {
	Total         int `json:"total"`
	HiddenUnder18 int `json:"hidden_under_18"`
	Escalated     int `json:"escalated"`
}

type DashboardSummaryResponse struct {
	Totals                 DashboardTotals        `json:"totals"`
	TopActiveUsers         []TopActiveUserItem    `json:"top_active_users"`
	AIEngagementToday      AIEngagementToday      `json:"ai_engagement_today"`
	FomoStatus             FOMOStatus             `json:"fomo_status"`
	FlaggedExplicitContent FlaggedExplicitContent `json:"flagged_explicit_content"`
}

func NewDashboardSummaryResponse(summary model.DashboardSummary, now time.Time) DashboardSummaryResponse {
	topUsers := make([]TopActiveUserItem, 0, len(summary.TopActiveUsers))
	for _, user := range summary.TopActiveUsers {
		topUsers = append(topUsers, TopActiveUserItem{
			ID:           user.ID,
			Username:     user.Username,
			DisplayName:  user.DisplayName,
			Posts:        user.Posts,
			Comments:     user.Comments,
			Interactions: user.Interactions,
		})
	}

	fomo := FOMOStatus{IsActive: summary.FomoStatus.IsActive}
	fomo.Stats.PostCount = summary.FomoStatus.Stats.PostCount
	fomo.Stats.ParticipantCount = summary.FomoStatus.Stats.ParticipantCount
	if summary.FomoStatus.IsActive && !summary.FomoStatus.EndTime.IsZero() {
		fomo.EndTime = summary.FomoStatus.EndTime.UTC().Format(time.RFC3339)
		fomo.Countdown = dashboard.FormatCountdown(now, summary.FomoStatus.EndTime)
	}

	return DashboardSummaryResponse{
		Totals: DashboardTotals{
			Users:            summary.Totals.Users,
			OnlineNow:        summary.Totals.OnlineNow,
			VerifiedAccounts: summary.Totals.VerifiedAccounts,
			GhostPosts24h:    summary.Totals.GhostPosts24h,
			FlaggedContent:   summary.Totals.FlaggedContent,
		},
		TopActiveUsers:    topUsers,
		AIEngagementToday: AIEngagementToday(summary.AIEngagementToday),
		FomoStatus:        fomo,
		FlaggedExplicitContent: FlaggedExplicitContent{
			Total:         summary.FlaggedExplicitContent.Total,
			HiddenUnder18: summary.FlaggedExplicitContent.HiddenUnder18,
			Escalated:     summary.FlaggedExplicitContent.Escalated,
		},
	}
}
