package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	supportsvc "github.com/casarancha/adminpanel/internal/services/support"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type SupportHandler struct {
	service *supportsvc.Service
}

func NewSupportHandler(service *supportsvc.Service) *SupportHandler {
	return &SupportHandler{service: service}
}

func (h *SupportHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListTickets(r.Context(), pageFromQuery(r), r.URL.Query().Get("status"))
	if err != nil {
		h.writeSupportError(w, err, "failed to load support tickets")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewSupportTicketsResponse(page.Tickets, dto.NewPaging(page.Paging)))
}

func (h *SupportHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Resolve(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeSupportError(w, err, "failed to resolve support ticket")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func (h *SupportHandler) writeSupportError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, supportsvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, supportsvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "ticket not found")
	default:
		writeRelayedError(w, err, fallback)
	}
}
