package backendhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
)

type GhostRepo struct {
	client *Client
}

func NewGhostRepo(client *Client) *GhostRepo {
	return &GhostRepo{client: client}
}

func (r *GhostRepo) ListPosts(ctx context.Context, params ListParams) ([]model.GhostPost, PageInfo, error) {
	response := ghostPostsResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/ghost/admin/posts", params.query(), nil, &response); err != nil {
		return nil, PageInfo{}, err
	}

	posts := make([]model.GhostPost, 0, len(response.Data))
	for _, dto := range response.Data {
		posts = append(posts, dto.toModel())
	}
	return posts, response.Pagination.toPageInfo(), nil
}

func (r *GhostRepo) Summary(ctx context.Context) (model.GhostSummary, error) {
	response := ghostSummaryResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/ghost/admin/summary", nil, nil, &response); err != nil {
		return model.GhostSummary{}, err
	}
	return model.GhostSummary{
		TotalGhostPosts: response.Data.TotalGhostPosts,
		ActiveThisHour:  response.Data.ActiveThisHour,
		AvgEngagement:   response.Data.AvgEngagement,
	}, nil
}

func (r *GhostRepo) ListNames(ctx context.Context, params ListParams) ([]model.GhostName, PageInfo, error) {
	response := ghostNamesResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/ghost/admin/names", params.query(), nil, &response); err != nil {
		return nil, PageInfo{}, err
	}

	names := make([]model.GhostName, 0, len(response.Data))
	for _, dto := range response.Data {
		names = append(names, dto.toModel())
	}
	return names, response.Pagination.toPageInfo(), nil
}

// SetNameStatus moves a pool alias between available, reserved and
// restricted.
func (r *GhostRepo) SetNameStatus(ctx context.Context, name string, status enums.GhostNameStatus) error {
	request := map[string]string{"status": string(status)}
	return r.client.DoJSON(ctx, http.MethodPost, "/ghost/admin/names/"+strings.TrimSpace(name)+"/status", nil, request, nil)
}

type ghostPostsResponseDTO struct {
	Data       []ghostPostDTO `json:"data"`
	Pagination paginationDTO  `json:"pagination"`
}

type ghostPostDTO struct {
	ID        string `json:"_id"`
	Content   string `json:"content"`
	GhostName string `json:"ghostName"`
	Likes     int    `json:"likesCount"`
	Comments  int    `json:"commentsCount"`
	CreatedAt string `json:"createdAt"`
}

func (dto ghostPostDTO) toModel() model.GhostPost {
	return model.GhostPost{
		ID:        strings.TrimSpace(dto.ID),
		Content:   dto.Content,
		Author:    strings.TrimSpace(dto.GhostName),
		Likes:     dto.Likes,
		Comments:  dto.Comments,
		CreatedAt: normalizeDate(dto.CreatedAt),
	}
}

type ghostSummaryResponseDTO struct {
	Data struct {
		TotalGhostPosts int `json:"totalGhostPosts"`
		ActiveThisHour  int `json:"activeThisHour"`
		AvgEngagement   int `json:"avgEngagement"`
	} `json:"data"`
}

type ghostNamesResponseDTO struct {
	Data       []ghostNameDTO `json:"data"`
	Pagination paginationDTO  `json:"pagination"`
}

type ghostNameDTO struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Username string `json:"username"`
	School   string `json:"school"`
	Work     string `json:"work"`
}

func (dto ghostNameDTO) toModel() model.GhostName {
	status, ok := enums.ParseGhostNameStatus(strings.ToLower(strings.TrimSpace(dto.Status)))
	if !ok {
		status = enums.GhostNameAvailable
	}
	return model.GhostName{
		Name:     strings.TrimSpace(dto.Name),
		Status:   status,
		Username: strings.TrimSpace(dto.Username),
		School:   strings.TrimSpace(dto.School),
		Work:     strings.TrimSpace(dto.Work),
	}
}
