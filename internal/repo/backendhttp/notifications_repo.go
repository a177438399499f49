package backendhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
)

type NotificationsRepo struct {
	client *Client
}

func NewNotificationsRepo(client *Client) *NotificationsRepo {
	return &NotificationsRepo{client: client}
}

func (r *NotificationsRepo) List(ctx context.Context, params ListParams) ([]model.Notification, PageInfo, error) {
	response := notificationsResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/admin-notifications/admin", params.query(), nil, &response); err != nil {
		return nil, PageInfo{}, err
	}

	notifications := make([]model.Notification, 0, len(response.Data))
	for _, dto := range response.Data {
		notifications = append(notifications, dto.toModel())
	}
	return notifications, response.Pagination.toPageInfo(), nil
}

// Send pushes a broadcast to the chosen audience. targetValue is only
// meaningful when the audience needs a target (group or single user).
func (r *NotificationsRepo) Send(ctx context.Context, notification model.Notification) (model.Notification, error) {
	request := map[string]string{
		"title":      strings.TrimSpace(notification.Title),
		"content":    strings.TrimSpace(notification.Content),
		"targetType": string(notification.TargetType),
	}
	if value := strings.TrimSpace(notification.TargetValue); value != "" {
		request["targetValue"] = value
	}
	if mediaURL := strings.TrimSpace(notification.MediaURL); mediaURL != "" {
		request["mediaUrl"] = mediaURL
	}

	response := notificationResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodPost, "/admin-notifications/admin", nil, request, &response); err != nil {
		return model.Notification{}, err
	}
	return response.Data.toModel(), nil
}

type notificationsResponseDTO struct {
	Data       []notificationDTO `json:"data"`
	Pagination paginationDTO     `json:"pagination"`
}

type notificationResponseDTO struct {
	Data notificationDTO `json:"data"`
}

type notificationDTO struct {
	ID             string `json:"_id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	TargetType     string `json:"targetType"`
	TargetValue    string `json:"targetValue"`
	MediaURL       string `json:"mediaUrl"`
	CreatedAt      string `json:"createdAt"`
	DeliveredCount int    `json:"deliveredCount"`
}

func (dto notificationDTO) toModel() model.Notification {
	audience, ok := enums.ParseAudience(strings.ToLower(strings.TrimSpace(dto.TargetType)))
	if !ok {
		audience = enums.AudienceAll
	}
	return model.Notification{
		ID:             strings.TrimSpace(dto.ID),
		Title:          strings.TrimSpace(dto.Title),
		Content:        dto.Content,
		TargetType:     audience,
		TargetValue:    strings.TrimSpace(dto.TargetValue),
		MediaURL:       strings.TrimSpace(dto.MediaURL),
		SentAt:         normalizeDate(dto.CreatedAt),
		DeliveredCount: dto.DeliveredCount,
	}
}
