package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	verifsvc "github.com/casarancha/adminpanel/internal/services/verification"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type VerificationHandler struct {
	service *verifsvc.Service
}

func NewVerificationHandler(service *verifsvc.Service) *VerificationHandler {
	return &VerificationHandler{service: service}
}

func (h *VerificationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListRequests(r.Context(), pageFromQuery(r))
	if err != nil {
		writeRelayedError(w, err, "failed to load verification requests")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewVerificationResponse(page.Requests, page.Stats, dto.NewPaging(page.Paging)))
}

func (h *VerificationHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req dto.VerificationReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	if err := h.service.Review(r.Context(), chi.URLParam(r, "id"), req.Action, req.Reason); err != nil {
		switch {
		case errors.Is(err, verifsvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
		case errors.Is(err, verifsvc.ErrNotFound):
			writeNotFound(w, "NOT_FOUND", "verification request not found")
		default:
			writeRelayedError(w, err, "failed to review verification request")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.OKResponse{OK: true})
}
