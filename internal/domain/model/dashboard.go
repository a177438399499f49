package model

import "time"

// DashboardSummary aggregates the headline figures shown on the landing page.
type DashboardSummary struct {
	Totals                 DashboardTotals
	TopActiveUsers         []TopActiveUser
	AIEngagementToday      AIEngagement
	FomoStatus             FOMOStatusSummary
	FlaggedExplicitContent ExplicitContentSummary
}

type DashboardTotals struct {
	Users            int
	OnlineNow        int
	VerifiedAccounts int
	GhostPosts24h    int
	FlaggedContent   int
}

type TopActiveUser struct {
	ID           string
	Username     string
	DisplayName  string
	Posts        int
	Comments     int
	Interactions int
}

type AIEngagement struct {
	Comments int
	Likes    int
	Replies  int
}

type FOMOStatusSummary struct {
	IsActive bool
	EndTime  time.Time
	Stats    FOMOStatsSummary
}

type FOMOStatsSummary struct {
	PostCount        int
	ParticipantCount int
}

type ExplicitContentSummary struct {
	Total         int
	HiddenUnder18 int
	Escalated     int
}

// SecuritySummary covers the security page tiles and recent events.
type SecuritySummary struct {
	BlockedIPs     int
	FailedLogins24 int
	ActiveSessions int
	RecentEvents   []SecurityEvent
}

type SecurityEvent struct {
	ID         string
	Type       string
	Detail     string
	IPAddress  string
	OccurredAt string
}
