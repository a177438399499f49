package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	aisvc "github.com/casarancha/adminpanel/internal/services/aicampaigns"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type AICampaignsHandler struct {
	service *aisvc.Service
}

func NewAICampaignsHandler(service *aisvc.Service) *AICampaignsHandler {
	return &AICampaignsHandler{service: service}
}

func (h *AICampaignsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListCampaigns(r.Context(), pageFromQuery(r), r.URL.Query().Get("status"))
	if err != nil {
		h.writeCampaignsError(w, err, "failed to load campaigns")
		return
	}

	items := make([]dto.AICampaignItem, 0, len(page.Campaigns))
	for _, campaign := range page.Campaigns {
		items = append(items, dto.NewAICampaignItem(campaign))
	}

	httperrors.Write(w, http.StatusOK, dto.AICampaignsResponse{
		Campaigns: items,
		Paging:    dto.NewPaging(page.Paging),
	})
}

func (h *AICampaignsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAICampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	campaign, err := h.service.CreateCampaign(r.Context(), req.Name, req.Type)
	if err != nil {
		h.writeCampaignsError(w, err, "failed to create campaign")
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.NewAICampaignItem(campaign))
}

// Toggle flips an active campaign to paused and back. The client sends
// the status it is looking at so a stale row cannot resume a campaign
// someone else already completed.
func (h *AICampaignsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req dto.ToggleAICampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	status, err := h.service.Toggle(r.Context(), chi.URLParam(r, "id"), req.CurrentStatus)
	if err != nil {
		h.writeCampaignsError(w, err, "failed to toggle campaign")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ToggleAICampaignResponse{Status: string(status)})
}

func (h *AICampaignsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCampaign(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeCampaignsError(w, err, "failed to delete campaign")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}

func (h *AICampaignsHandler) writeCampaignsError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, aisvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, aisvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "campaign not found")
	default:
		writeRelayedError(w, err, fallback)
	}
}
