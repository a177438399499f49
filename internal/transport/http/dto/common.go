package dto

import "github.com/casarancha/adminpanel/internal/pkg/paging"

// Paging mirrors the pagination controls under every admin table.
type Paging struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	Total      int   `json:"total"`
	From       int   `json:"from"`
	To         int   `json:"to"`
	Buttons    []int `json:"buttons"`
}

func NewPaging(meta paging.Meta) Paging {
	return Paging{
		Page:       meta.Page,
		TotalPages: meta.TotalPages,
		Total:      meta.Total,
		From:       meta.From,
		To:         meta.To,
		Buttons:    meta.Buttons,
	}
}

type OKResponse struct {
	OK bool `json:"ok"`
}
