package handlers

import (
	"net/http"

	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	httperrors.Write(w, http.StatusOK, map[string]string{"status": "ok"})
}
