package backendhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
)

type UsersRepo struct {
	client *Client
}

func NewUsersRepo(client *Client) *UsersRepo {
	return &UsersRepo{client: client}
}

func (r *UsersRepo) List(ctx context.Context, params ListParams) ([]model.User, PageInfo, error) {
	response := usersListResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/user/admin/users", params.query(), nil, &response); err != nil {
		return nil, PageInfo{}, err
	}

	users := make([]model.User, 0, len(response.Data))
	for _, dto := range response.Data {
		users = append(users, dto.toModel())
	}
	return users, response.Pagination.toPageInfo(), nil
}

func (r *UsersRepo) Get(ctx context.Context, userID string) (model.UserProfile, error) {
	response := userProfileResponseDTO{}
	err := r.client.DoJSON(ctx, http.MethodGet, "/user/admin/users/"+strings.TrimSpace(userID), nil, nil, &response)
	if err != nil {
		return model.UserProfile{}, err
	}
	return response.Data.toProfile(), nil
}

// SetStatus applies a moderation action (ban, suspend, restrict,
// verify and their inverses) to the user.
func (r *UsersRepo) SetStatus(ctx context.Context, userID string, action string) error {
	request := map[string]string{"action": strings.TrimSpace(action)}
	return r.client.DoJSON(ctx, http.MethodPost, "/user/admin/users/"+strings.TrimSpace(userID)+"/status", nil, request, nil)
}

type usersListResponseDTO struct {
	Data       []userDTO     `json:"data"`
	Pagination paginationDTO `json:"pagination"`
}

type userProfileResponseDTO struct {
	Data userProfileDTO `json:"data"`
}

type userDTO struct {
	ID            string `json:"_id"`
	AltID         string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	Status        string `json:"status"`
	Verified      bool   `json:"verified"`
	PostsCount    int    `json:"postsCount"`
	CommentsCount int    `json:"commentsCount"`
	CreatedAt     string `json:"createdAt"`
	GhostName     string `json:"ghostName"`
	School        string `json:"school"`
	Work          string `json:"work"`
}

func (dto userDTO) toModel() model.User {
	id := strings.TrimSpace(dto.ID)
	if id == "" {
		id = strings.TrimSpace(dto.AltID)
	}

	status, ok := enums.ParseUserStatus(strings.ToLower(strings.TrimSpace(dto.Status)))
	if !ok {
		status = enums.UserStatusActive
	}

	return model.User{
		ID:            id,
		Username:      strings.TrimSpace(dto.Username),
		Email:         strings.TrimSpace(dto.Email),
		PhoneNumber:   strings.TrimSpace(dto.PhoneNumber),
		Status:        status,
		Verified:      dto.Verified,
		PostsCount:    dto.PostsCount,
		CommentsCount: dto.CommentsCount,
		JoinDate:      normalizeDate(dto.CreatedAt),
		GhostName:     strings.TrimSpace(dto.GhostName),
		School:        strings.TrimSpace(dto.School),
		Work:          strings.TrimSpace(dto.Work),
	}
}

type userProfileDTO struct {
	userDTO
	Bio       string `json:"bio"`
	LastSeen  string `json:"lastSeen"`
	IPAddress string `json:"ipAddress"`
}

func (dto userProfileDTO) toProfile() model.UserProfile {
	return model.UserProfile{
		User:      dto.userDTO.toModel(),
		Bio:       strings.TrimSpace(dto.Bio),
		LastSeen:  strings.TrimSpace(dto.LastSeen),
		IPAddress: strings.TrimSpace(dto.IPAddress),
	}
}
