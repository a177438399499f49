package model

type SupportTicket struct {
	ID        string
	Subject   string
	User      string
	Status    string
	Priority  string
	CreatedAt string
}
