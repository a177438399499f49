package users

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

var exportHeader = []string{"Username", "Email", "Status", "Posts", "Comments", "Verified", "Join Date"}

// Export holds a rendered CSV of the current table page.
type Export struct {
	Filename string
	Content  []byte
}

// ExportPage renders the visible page, with the active search and
// status filter applied, as CSV. Only the current page is exported.
func (s *Service) ExportPage(ctx context.Context, page int, search, status string, now time.Time) (Export, error) {
	listed, err := s.ListUsers(ctx, page, search, status)
	if err != nil {
		return Export{}, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(exportHeader); err != nil {
		return Export{}, fmt.Errorf("write export header: %w", err)
	}
	for _, user := range listed.Users {
		row := []string{
			user.Username,
			user.Email,
			string(user.Status),
			strconv.Itoa(user.PostsCount),
			strconv.Itoa(user.CommentsCount),
			strconv.FormatBool(user.Verified),
			user.JoinDate,
		}
		if err := writer.Write(row); err != nil {
			return Export{}, fmt.Errorf("write export row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return Export{}, fmt.Errorf("flush export: %w", err)
	}

	return Export{
		Filename: "users-export-" + now.UTC().Format("2006-01-02") + ".csv",
		Content:  buf.Bytes(),
	}, nil
}
