package model

import "github.com/casarancha/adminpanel/internal/domain/enums"

type Notification struct {
	ID             string
	Title          string
	Content        string
	TargetType     enums.Audience
	TargetValue    string
	MediaURL       string
	SentAt         string
	DeliveredCount int
}
