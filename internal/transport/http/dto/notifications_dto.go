package dto

import "github.com/casarancha/adminpanel/internal/domain/model"

type NotificationItem struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	TargetType     string `json:"target_type"`
	TargetValue    string `json:"target_value,omitempty"`
	MediaURL       string `json:"media_url,omitempty"`
	SentAt         string `json:"sent_at"`
	DeliveredCount int    `json:"delivered_count"`
}

func NewNotificationItem(notification model.Notification) NotificationItem {
	return NotificationItem{
		ID:             notification.ID,
		Title:          notification.Title,
		Content:        notification.Content,
		TargetType:     string(notification.TargetType),
		TargetValue:    notification.TargetValue,
		MediaURL:       notification.MediaURL,
		SentAt:         notification.SentAt,
		DeliveredCount: notification.DeliveredCount,
	}
}

type NotificationsResponse struct {
	Notifications []NotificationItem `json:"notifications"`
	Paging        Paging             `json:"paging"`
}

type SendNotificationRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	TargetType  string `json:"target_type"`
	TargetValue string `json:"target_value"`
	MediaURL    string `json:"media_url"`
}
