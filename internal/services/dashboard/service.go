// Package dashboard assembles the landing page summary and the live
// countdown shown while a posting window is active.
package dashboard

import (
	"context"
	"fmt"

	"github.com/casarancha/adminpanel/internal/domain/model"
)

type Store interface {
	Summary(ctx context.Context) (model.DashboardSummary, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Summary(ctx context.Context) (model.DashboardSummary, error) {
	summary, err := s.store.Summary(ctx)
	if err != nil {
		return model.DashboardSummary{}, fmt.Errorf("dashboard summary: %w", err)
	}
	return summary, nil
}
