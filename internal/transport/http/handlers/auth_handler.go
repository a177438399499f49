package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
	authsvc "github.com/casarancha/adminpanel/internal/services/auth"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type AuthHandler struct {
	service *authsvc.Service
}

func NewAuthHandler(service *authsvc.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrInvalidInput):
			writeBadRequest(w, "VALIDATION_ERROR", "email and password are required")
		case backendhttp.StatusOf(err) == http.StatusUnauthorized:
			writeUnauthorized(w, "BAD_CREDENTIALS", "invalid email or password")
		case backendhttp.StatusOf(err) != 0:
			writeBackendError(w, backendhttp.StatusOf(err), backendhttp.MessageOf(err))
		case backendhttp.IsUnreachable(err):
			writeBackendError(w, 0, "")
		default:
			writeInternal(w, "INTERNAL_ERROR", "login failed")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.LoginResponse{
		Token:     result.AccessToken,
		ExpiresAt: result.AccessExpires.UTC().Format(time.RFC3339),
		Email:     result.Email,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), identity.SID); err != nil {
		writeInternal(w, "INTERNAL_ERROR", "logout failed")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.LogoutResponse{OK: true})
}

// LogoutAll revokes every session of the calling admin, not just the
// one behind the presented token.
func (h *AuthHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}

	if err := h.service.LogoutAll(r.Context(), identity.Email); err != nil {
		writeInternal(w, "INTERNAL_ERROR", "logout failed")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.LogoutResponse{OK: true})
}
