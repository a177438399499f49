package backendhttp

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// PageInfo is the pagination block every backend list response carries.
type PageInfo struct {
	Total int
	Page  int
	Limit int
}

type paginationDTO struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (dto paginationDTO) toPageInfo() PageInfo {
	return PageInfo{Total: dto.Total, Page: dto.Page, Limit: dto.Limit}
}

// ListParams are the query parameters shared by the backend's admin
// list endpoints. Empty fields are omitted from the query string.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Status string
}

func (p ListParams) query() url.Values {
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if search := strings.TrimSpace(p.Search); search != "" {
		values.Set("search", search)
	}
	if status := strings.TrimSpace(p.Status); status != "" {
		values.Set("status", status)
	}
	return values
}

type successResponseDTO struct {
	Success bool `json:"success"`
}

// normalizeDate reduces a backend timestamp to a YYYY-MM-DD date.
// Values that are already dates, or that parse as neither, pass through.
func normalizeDate(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC().Format("2006-01-02")
		}
	}
	return trimmed
}

func intToString(value int) string {
	return strconv.Itoa(value)
}
