package handlers

import (
	"errors"
	"net/http"

	adssvc "github.com/casarancha/adminpanel/internal/services/ads"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type AdsHandler struct {
	service *adssvc.Service
}

func NewAdsHandler(service *adssvc.Service) *AdsHandler {
	return &AdsHandler{service: service}
}

func (h *AdsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Overview(r.Context(), pageFromQuery(r))
	if err != nil {
		writeRelayedError(w, err, "failed to load ads overview")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewAdsOverviewResponse(page.Summary, page.Campaigns, dto.NewPaging(page.Paging)))
}

func (h *AdsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	campaign, err := h.service.CreateCampaign(r.Context(), req.Name, req.Budget)
	if err != nil {
		if errors.Is(err, adssvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
			return
		}
		writeRelayedError(w, err, "failed to create ad campaign")
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.AdCampaignItem{
		ID:          campaign.ID,
		Name:        campaign.Name,
		Impressions: campaign.Impressions,
		Clicks:      campaign.Clicks,
		CTR:         campaign.CTR,
		Spend:       campaign.Spend,
	})
}
