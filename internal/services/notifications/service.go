package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/casarancha/adminpanel/internal/domain/enums"
	"github.com/casarancha/adminpanel/internal/domain/model"
	"github.com/casarancha/adminpanel/internal/pkg/paging"
	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
)

var ErrValidation = errors.New("validation error")

type Store interface {
	List(ctx context.Context, params backendhttp.ListParams) ([]model.Notification, backendhttp.PageInfo, error)
	Send(ctx context.Context, notification model.Notification) (model.Notification, error)
}

type Page struct {
	Notifications []model.Notification
	Paging        paging.Meta
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListHistory(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		page = 1
	}

	notifications, info, err := s.store.List(ctx, backendhttp.ListParams{
		Page:  page,
		Limit: paging.DefaultPageSize,
	})
	if err != nil {
		return Page{}, fmt.Errorf("list notifications: %w", err)
	}

	return Page{
		Notifications: notifications,
		Paging:        paging.MetaFor(page, paging.DefaultPageSize, info.Total),
	}, nil
}

// Send broadcasts to the chosen audience. Group and user audiences
// additionally require a target id.
func (s *Service) Send(ctx context.Context, title, content, targetType, targetValue, mediaURL string) (model.Notification, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return model.Notification{}, ErrValidation
	}

	audience, ok := enums.ParseAudience(strings.ToLower(strings.TrimSpace(targetType)))
	if !ok {
		return model.Notification{}, ErrValidation
	}
	targetValue = strings.TrimSpace(targetValue)
	if audience.NeedsTarget() && targetValue == "" {
		return model.Notification{}, ErrValidation
	}

	sent, err := s.store.Send(ctx, model.Notification{
		Title:       title,
		Content:     content,
		TargetType:  audience,
		TargetValue: targetValue,
		MediaURL:    strings.TrimSpace(mediaURL),
	})
	if err != nil {
		return model.Notification{}, fmt.Errorf("send notification: %w", err)
	}
	return sent, nil
}
