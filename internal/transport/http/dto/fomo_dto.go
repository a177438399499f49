package dto

import "github.com/casarancha/adminpanel/internal/domain/model"

type FOMOWindowItem struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Status            string `json:"status"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	PostsCreated      int    `json:"posts_created"`
	UsersParticipated int    `json:"users_participated"`
}

func NewFOMOWindowItem(window model.FOMOWindow) FOMOWindowItem {
	return FOMOWindowItem{
		ID:                window.ID,
		Name:              window.Name,
		Status:            string(window.Status),
		StartDate:         window.StartDate,
		EndDate:           window.EndDate,
		PostsCreated:      window.PostsCreated,
		UsersParticipated: window.UsersParticipated,
	}
}

type FOMOWindowsResponse struct {
	Windows []FOMOWindowItem `json:"windows"`
	Paging  Paging           `json:"paging"`
}

type CreateFOMOWindowRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
