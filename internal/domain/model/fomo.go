package model

import "github.com/casarancha/adminpanel/internal/domain/enums"

type FOMOWindow struct {
	ID                string
	Name              string
	Status            enums.FOMOStatus
	StartDate         string
	EndDate           string
	PostsCreated      int
	UsersParticipated int
}
