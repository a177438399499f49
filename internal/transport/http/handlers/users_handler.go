package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	userssvc "github.com/casarancha/adminpanel/internal/services/users"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type UsersHandler struct {
	service *userssvc.Service
	now     func() time.Time
}

func NewUsersHandler(service *userssvc.Service) *UsersHandler {
	return &UsersHandler{
		service: service,
		now:     time.Now,
	}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := h.service.ListUsers(r.Context(), pageFromQuery(r), query.Get("search"), query.Get("status"))
	if err != nil {
		h.writeUsersError(w, err, "failed to load users")
		return
	}

	items := make([]dto.UserItem, 0, len(page.Users))
	for _, user := range page.Users {
		items = append(items, dto.NewUserItem(user))
	}

	httperrors.Write(w, http.StatusOK, dto.UsersListResponse{
		Users:  items,
		Paging: dto.NewPaging(page.Paging),
	})
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeUsersError(w, err, "failed to load user")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewUserProfileResponse(profile))
}

func (h *UsersHandler) Action(w http.ResponseWriter, r *http.Request) {
	var req dto.UserActionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "INVALID_REQUEST", "invalid request body")
		return
	}

	user, err := h.service.ApplyAction(r.Context(), chi.URLParam(r, "id"), req.Action)
	if err != nil {
		h.writeUsersError(w, err, "failed to apply user action")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.UserActionResponse{User: dto.NewUserItem(user)})
}

// Export streams the current page as a CSV attachment.
func (h *UsersHandler) Export(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	export, err := h.service.ExportPage(r.Context(), pageFromQuery(r), query.Get("search"), query.Get("status"), h.now())
	if err != nil {
		h.writeUsersError(w, err, "failed to export users")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Content)
}

func (h *UsersHandler) writeUsersError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, userssvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, userssvc.ErrNotFound):
		writeNotFound(w, "NOT_FOUND", "user not found")
	default:
		writeRelayedError(w, err, fallback)
	}
}
