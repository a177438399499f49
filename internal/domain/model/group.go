package model

type Group struct {
	ID          string
	Name        string
	Description string
	Members     int
	Posts       int
	Verified    bool
	CreatedAt   string
}
