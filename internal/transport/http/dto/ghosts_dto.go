package dto

import "github.com/casarancha/adminpanel/internal/domain/model"

type GhostPostItem struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
	CreatedAt string `json:"created_at"`
}

type GhostSummary struct {
	TotalGhostPosts int `json:"total_ghost_posts"`
	ActiveThisHour  int `json:"active_this_hour"`
	AvgEngagement   int `json:"avg_engagement"`
}

type GhostPostsResponse struct {
	Posts   []GhostPostItem `json:"posts"`
	Summary GhostSummary    `json:"summary"`
	Paging  Paging          `json:"paging"`
}

func NewGhostPostsResponse(posts []model.GhostPost, summary model.GhostSummary, paging Paging) GhostPostsResponse {
	items := make([]GhostPostItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, GhostPostItem{
			ID:        post.ID,
			Content:   post.Content,
			Author:    post.Author,
			Likes:     post.Likes,
			Comments:  post.Comments,
			CreatedAt: post.CreatedAt,
		})
	}
	return GhostPostsResponse{
		Posts: items,
		Summary: GhostSummary{
			TotalGhostPosts: summary.TotalGhostPosts,
			ActiveThisHour:  summary.ActiveThisHour,
			AvgEngagement:   summary.AvgEngagement,
		},
		Paging: paging,
	}
}

type GhostNameItem struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Username string `json:"username,omitempty"`
	School   string `json:"school,omitempty"`
	Work     string `json:"work,omitempty"`
}

type GhostNamesResponse struct {
	Names  []GhostNameItem `json:"names"`
	Paging Paging          `json:"paging"`
}

func NewGhostNamesResponse(names []model.GhostName, paging Paging) GhostNamesResponse {
	items := make([]GhostNameItem, 0, len(names))
	for _, name := range names {
		items = append(items, GhostNameItem{
			Name:     name.Name,
			Status:   string(name.Status),
			Username: name.Username,
			School:   name.School,
			Work:     name.Work,
		})
	}
	return GhostNamesResponse{Names: items, Paging: paging}
}

type GhostNameStatusRequest struct {
	Status string `json:"status"`
}
