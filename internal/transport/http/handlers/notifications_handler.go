package handlers

import (
	"errors"
	"net/http"

	notifsvc "github.com/casarancha/adminpanel/internal/services/notifications"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type NotificationsHandler struct {
	service *notifsvc.Service
}

func NewNotificationsHandler(service *notifsvc.Service) *NotificationsHandler {
	return &NotificationsHandler{service: service}
}

func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListHistory(r.Context(), pageFromQuery(r))
	if err != nil {
		writeRelayedError(w, err, "failed to load notifications")
		return
	}

	items := make([]dto.NotificationItem, 0, len(page.Notifications))
	for _, notification := range page.Notifications {
		items = append(items, dto.NewNotificationItem(notification))
	}

	httperrors.Write(w, http.StatusOK, dto.NotificationsResponse{
		Notifications: items,
		Paging:        dto.NewPaging(page.Paging),
	})
}

func (h *NotificationsHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SendNotificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	notification, err := h.service.Send(r.Context(), req.Title, req.Content, req.TargetType, req.TargetValue, req.MediaURL)
	if err != nil {
		if errors.Is(err, notifsvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
			return
		}
		writeRelayedError(w, err, "failed to send notification")
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.NewNotificationItem(notification))
}
