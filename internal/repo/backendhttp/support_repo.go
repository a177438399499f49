package backendhttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/model"
)

type SupportRepo struct {
	client *Client
}

func NewSupportRepo(client *Client) *SupportRepo {
	return &SupportRepo{client: client}
}

func (r *SupportRepo) ListTickets(ctx context.Context, params ListParams) ([]model.SupportTicket, PageInfo, error) {
	response := supportTicketsResponseDTO{}
	if err := r.client.DoJSON(ctx, http.MethodGet, "/support/admin/tickets", params.query(), nil, &response); err != nil {
		return nil, PageInfo{}, err
	}

	tickets := make([]model.SupportTicket, 0, len(response.Data))
	for _, dto := range response.Data {
		tickets = append(tickets, dto.toModel())
	}
	return tickets, response.Pagination.toPageInfo(), nil
}

func (r *SupportRepo) Resolve(ctx context.Context, ticketID string) error {
	return r.client.DoJSON(ctx, http.MethodPost, "/support/admin/tickets/"+strings.TrimSpace(ticketID)+"/resolve", nil, nil, nil)
}

type supportTicketsResponseDTO struct {
	Data       []supportTicketDTO `json:"data"`
	Pagination paginationDTO      `json:"pagination"`
}

type supportTicketDTO struct {
	ID        string `json:"_id"`
	Subject   string `json:"subject"`
	User      string `json:"user"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"createdAt"`
}

func (dto supportTicketDTO) toModel() model.SupportTicket {
	return model.SupportTicket{
		ID:        strings.TrimSpace(dto.ID),
		Subject:   strings.TrimSpace(dto.Subject),
		User:      strings.TrimSpace(dto.User),
		Status:    strings.ToLower(strings.TrimSpace(dto.Status)),
		Priority:  strings.ToLower(strings.TrimSpace(dto.Priority)),
		CreatedAt: normalizeDate(dto.CreatedAt),
	}
}
