package handlers

import (
	"errors"
	"net/http"

	fomosvc "github.com/casarancha/adminpanel/internal/services/fomo"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type FOMOHandler struct {
	service *fomosvc.Service
}

func NewFOMOHandler(service *fomosvc.Service) *FOMOHandler {
	return &FOMOHandler{service: service}
}

func (h *FOMOHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListWindows(r.Context(), pageFromQuery(r))
	if err != nil {
		writeRelayedError(w, err, "failed to load fomo windows")
		return
	}

	items := make([]dto.FOMOWindowItem, 0, len(page.Windows))
	for _, window := range page.Windows {
		items = append(items, dto.NewFOMOWindowItem(window))
	}

	httperrors.Write(w, http.StatusOK, dto.FOMOWindowsResponse{
		Windows: items,
		Paging:  dto.NewPaging(page.Paging),
	})
}

func (h *FOMOHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFOMOWindowRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	window, err := h.service.CreateWindow(r.Context(), req.Name, req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, fomosvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
			return
		}
		writeRelayedError(w, err, "failed to create fomo window")
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.NewFOMOWindowItem(window))
}
