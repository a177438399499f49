package model

import "github.com/casarancha/adminpanel/internal/domain/enums"

type VerificationRequest struct {
	ID          string
	DisplayName string
	Email       string
	Type        string
	SubmittedAt string
	Status      enums.VerificationStatus
}

type VerificationStats struct {
	Pending     int
	Approved30d int
	Rejected30d int
}
