package model

import "github.com/casarancha/adminpanel/internal/domain/enums"

type ContentFlag struct {
	ID        string
	PostID    string
	Content   string
	Reason    string
	Author    string
	Status    enums.FlagStatus
	FlaggedAt string
}
