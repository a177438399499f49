package handlers

import (
	"net/http"

	secsvc "github.com/casarancha/adminpanel/internal/services/security"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type SecurityHandler struct {
	service *secsvc.Service
}

func NewSecurityHandler(service *secsvc.Service) *SecurityHandler {
	return &SecurityHandler{service: service}
}

func (h *SecurityHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeRelayedError(w, err, "failed to load security summary")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewSecuritySummaryResponse(summary))
}
