package handlers

import (
	"net/http"
	"time"

	dashsvc "github.com/casarancha/adminpanel/internal/services/dashboard"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type DashboardHandler struct {
	service *dashsvc.Service
	now     func() time.Time
}

func NewDashboardHandler(service *dashsvc.Service) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		now:     time.Now,
	}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeRelayedError(w, err, "failed to load dashboard summary")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewDashboardSummaryResponse(summary, h.now()))
}
