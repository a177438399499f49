package dto

import "github.com/casarancha/adminpanel/internal/domain/model"

type GroupItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Members     int    `json:"members"`
	Posts       int    `json:"posts"`
	Verified    bool   `json:"verified"`
	CreatedAt   string `json:"created_at"`
}

type GroupsResponse struct {
	Groups []GroupItem `json:"groups"`
	Paging Paging      `json:"paging"`
}

func NewGroupsResponse(groups []model.Group, paging Paging) GroupsResponse {
	items := make([]GroupItem, 0, len(groups))
	for _, group := range groups {
		items = append(items, GroupItem{
			ID:          group.ID,
			Name:        group.Name,
			Description: group.Description,
			Members:     group.Members,
			Posts:       group.Posts,
			Verified:    group.Verified,
			CreatedAt:   group.CreatedAt,
		})
	}
	return GroupsResponse{Groups: items, Paging: paging}
}
