package backendhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
)

type FOMORepo struct {
	client *Client
}

func NewFOMORepo(client *Client) *FOMORepo {
	return &FOMORepo{client: client}
}

func (r *FOMORepo) ListWindows(ctx context.Context, params ListParams) ([]model.FOMOWindow, PageInfo, error) {
	response := fomoWindowsResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/fomo/admin/windows", params.query(), nil, &response); err != nil {
		return nil, PageInfo{}, err
	}

	windows := make([]model.FOMOWindow, 0, len(response.Data))
	for _, dto := range response.Data {
		windows = append(windows, dto.toModel())
	}
	return windows, response.Pagination.toPageInfo(), nil
}

// CreateWindow schedules a new posting window. The backend derives the
// window status from its dates.
func (r *FOMORepo) CreateWindow(ctx context.Context, name, startDate, endDate string) (model.FOMOWindow, error) {
	request := map[string]string{
		"name":      strings.TrimSpace(name),
		"startDate": strings.TrimSpace(startDate),
		"endDate":   strings.TrimSpace(endDate),
	}

	response := fomoWindowResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodPost, "/fomo/admin/windows", nil, request, &response); err != nil {
		return model.FOMOWindow{}, err
	}
	return response.Data.toModel(), nil
}

type fomoWindowsResponseDTO struct {
	Data       []fomoWindowDTO `json:"data"`
	Pagination paginationDTO   `json:"pagination"`
}

type fomoWindowResponseDTO struct {
	Data fomoWindowDTO `json:"data"`
}

type fomoWindowDTO struct {
	ID                string `json:"_id"`
	Name              string `json:"name"`
	Status            string `json:"status"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	PostsCreated      int    `json:"postsCreated"`
	UsersParticipated int    `json:"usersParticipated"`
}

func (dto fomoWindowDTO) toModel() model.FOMOWindow {
	return model.FOMOWindow{
		ID:                strings.TrimSpace(dto.ID),
		Name:              strings.TrimSpace(dto.Name),
		Status:            enums.FOMOStatus(strings.ToLower(strings.TrimSpace(dto.Status))),
		StartDate:         normalizeDate(dto.StartDate),
		EndDate:           normalizeDate(dto.EndDate),
		PostsCreated:      dto.PostsCreated,
		UsersParticipated: dto.UsersParticipated,
	}
}
