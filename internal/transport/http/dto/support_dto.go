package dto

import "github.com/casarancha/adminpanel/internal/domain/model"

type SupportTicketItem struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	User      string `json:"user"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"created_at"`
}

type SupportTicketsResponse struct {
	Tickets []SupportTicketItem `json:"tickets"`
	Paging  Paging              `json:"paging"`
}

func NewSupportTicketsResponse(tickets []model.SupportTicket, paging Paging) SupportTicketsResponse {
	items := make([]SupportTicketItem, 0, len(tickets))
	for _, ticket := range tickets {
		items = append(items, SupportTicketItem{
			ID:        ticket.ID,
			Subject:   ticket.Subject,
			User:      ticket.User,
			Status:    ticket.Status,
			Priority:  ticket.Priority,
			CreatedAt: ticket.CreatedAt,
		})
	}
	return SupportTicketsResponse{Tickets: items, Paging: paging}
}
