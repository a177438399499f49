package backendhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/model"
)

type GroupsRepo struct {
	client *Client
}

func NewGroupsRepo(client *Client) *GroupsRepo {
	return &GroupsRepo{client: client}
}

func (r *GroupsRepo) List(ctx context.Context, params ListParams) ([]model.Group, PageInfo, error) {
	response := groupsListResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/group/admin/groups", params.query(), nil, &response); err != nil {
		return nil, PageInfo{}, err
	}

	groups := make([]model.Group, 0, len(response.Data))
	for _, dto := range response.Data {
		groups = append(groups, dto.toModel())
	}
	return groups, response.Pagination.toPageInfo(), nil
}

type groupsListResponseDTO struct {
	Data       []groupDTO    `json:"data"`
	Pagination paginationDTO `json:"pagination"`
}

type groupDTO struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Members     int    `json:"membersCount"`
	Posts       int    `json:"postsCount"`
	Verified    bool   `json:"verified"`
	CreatedAt   string `json:"createdAt"`
}

func (dto groupDTO) toModel() model.Group {
	return model.Group{
		ID:          strings.TrimSpace(dto.ID),
		Name:        strings.TrimSpace(dto.Name),
		Description: strings.TrimSpace(dto.Description),
		Members:     dto.Members,
		Posts:       dto.Posts,
		Verified:    dto.Verified,
		CreatedAt:   normalizeDate(dto.CreatedAt),
	}
}
