package backendhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
)

type ModerationRepo struct {
	client *Client
}

func NewModerationRepo(client *Client) *ModerationRepo {
	return &ModerationRepo{client: client}
}

func (r *ModerationRepo) ListFlags(ctx context.Context, params ListParams) ([]model.ContentFlag, PageInfo, error) {
	// The backend queue filter speaks approved/removed, the panel
	// speaks reviewed/hidden.
	if params.Status != "" {
		if status, ok := enums.ParseFlagStatus(params.Status); ok {
			params.Status = status.BackendValue()
		}
	}

	response := flagsListResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/moderation/queue", params.query(), nil, &response); err != nil {
		return nil, PageInfo{}, err
	}

	flags := make([]model.ContentFlag, 0, len(response.Data))
	for _, dto := range response.Data {
		flags = append(flags, dto.toModel())
	}
	return flags, response.Pagination.toPageInfo(), nil
}

func (r *ModerationRepo) SetFlagStatus(ctx context.Context, flagID string, status enums.FlagStatus) error {
	request := map[string]string{
		"flagId": strings.TrimSpace(flagID),
		"status": status.BackendValue(),
	}
	return r.client.DoJSON(ctx, http.MethodPost, "/moderation/status", nil, request, nil)
}

type flagsListResponseDTO struct {
	Data       []contentFlagDTO `json:"data"`
	Pagination paginationDTO    `json:"pagination"`
}

type contentFlagDTO struct {
	ID        string `json:"_id"`
	PostID    string `json:"postId"`
	Content   string `json:"content"`
	Reason    string `json:"reason"`
	Author    string `json:"author"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func (dto contentFlagDTO) toModel() model.ContentFlag {
	return model.ContentFlag{
		ID:        strings.TrimSpace(dto.ID),
		PostID:    strings.TrimSpace(dto.PostID),
		Content:   dto.Content,
		Reason:    strings.TrimSpace(dto.Reason),
		Author:    strings.TrimSpace(dto.Author),
		Status:    enums.FlagStatusFromBackend(dto.Status),
		FlaggedAt: normalizeDate(dto.CreatedAt),
	}
}
