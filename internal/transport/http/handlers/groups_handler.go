package handlers

import (
	"net/http"

	groupssvc "github.com/casarancha/adminpanel/internal/services/groups"
	"github.com/casarancha/adminpanel/internal/transport/http/dto"
	httperrors "github.com/casarancha/adminpanel/internal/transport/http/errors"
)

type GroupsHandler struct {
	service *groupssvc.Service
}

func NewGroupsHandler(service *groupssvc.Service) *GroupsHandler {
	return &GroupsHandler{service: service}
}

func (h *GroupsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListGroups(r.Context(), pageFromQuery(r), r.URL.Query().Get("search"))
	if err != nil {
		writeRelayedError(w, err, "failed to load groups")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NewGroupsResponse(page.Groups, dto.NewPaging(page.Paging)))
}
