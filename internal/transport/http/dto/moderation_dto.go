package dto

import "github.com/casarancha/adminpanel/internal/domain/model"

type ContentFlagItem struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	Content   string `json:"content"`
	Reason    string `json:"reason"`
	Author    string `json:"author"`
	Status    string `json:"status"`
	FlaggedAt string `json:"flagged_at"`
}

type ContentFlagsResponse struct {
	Flags  []ContentFlagItem `json:"flags"`
	Paging Paging            `json:"paging"`
}

func NewContentFlagsResponse(flags []model.ContentFlag, paging Paging) ContentFlagsResponse {
	items := make([]ContentFlagItem, 0, len(flags))
	for _, flag := range flags {
		items = append(items, ContentFlagItem{
			ID:        flag.ID,
			PostID:    flag.PostID,
			Content:   flag.Content,
			Reason:    flag.Reason,
			Author:    flag.Author,
			Status:    string(flag.Status),
			FlaggedAt: flag.FlaggedAt,
		})
	}
	return ContentFlagsResponse{Flags: items, Paging: paging}
}

type FlagReviewRequest struct {
	Status string `json:"status"`
}
