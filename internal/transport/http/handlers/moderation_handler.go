package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	modsvc "github.com/casarancha/adminpanel/internal/services/moderation"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type ModerationHandler struct {
	service *modsvc.Service
}

func NewModerationHandler(service *modsvc.Service) *ModerationHandler {
	return &ModerationHandler{service: service}
}

func (h *ModerationHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := h.service.ListFlags(r.Context(), pageFromQuery(r), query.Get("search"), query.Get("status"))
	if err != nil {
		h.writeModerationError(w, err, "failed to load flagged content")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewContentFlagsResponse(page.Flags, dto.NewPaging(page.Paging)))
}

func (h *ModerationHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req dto.FlagReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.Review(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		h.writeModerationError(w, err, "failed to review flagged content")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func (h *ModerationHandler) writeModerationError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, modsvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, modsvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "flag not found")
	default:
		writeRelayedError(w, err, fallback)
	}
}
