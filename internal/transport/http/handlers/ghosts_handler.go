package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	ghostssvc "github.com/casarancha/adminpanel/internal/services/ghosts"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type GhostsHandler struct {
	service *ghostssvc.Service
}

func NewGhostsHandler(service *ghostssvc.Service) *GhostsHandler {
	return &GhostsHandler{service: service}
}

func (h *GhostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListPosts(r.Context(), pageFromQuery(r), r.URL.Query().Get("search"))
	if err != nil {
		writeRelayedError(w, err, "failed to load ghost posts")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewGhostPostsResponse(page.Posts, page.Summary, dto.NewPaging(page.Paging)))
}

func (h *GhostsHandler) ListNames(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := h.service.ListNames(r.Context(), pageFromQuery(r), query.Get("search"), query.Get("status"))
	if err != nil {
		h.writeGhostsError(w, err, "failed to load ghost names")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewGhostNamesResponse(page.Names, dto.NewPaging(page.Paging)))
}

func (h *GhostsHandler) SetNameStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.GhostNameStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.SetNameStatus(r.Context(), chi.URLParam(r, "name"), req.Status); err != nil {
		h.writeGhostsError(w, err, "failed to update ghost name")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func (h *GhostsHandler) writeGhostsError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ghostssvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, ghostssvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "ghost name not found")
	default:
		writeRelayedError(w, err, fallback)
	}
}
