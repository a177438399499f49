package model

import "github.com/casarancha/adminpanel/internal/domain/enums"

// GhostPost is an anonymized post shown under a generated alias. No
// reverse link to the real account is ever exposed to the panel.
type GhostPost struct {
	ID        string
	Content   string
	Author    string
	Likes     int
	Comments  int
	CreatedAt string
}

type GhostSummary struct {
	TotalGhostPosts int
	ActiveThisHour  int
	AvgEngagement   int
}

type GhostName struct {
	Name     string
	Status   enums.GhostNameStatus
	Username string
	School   string
	Work     string
}
