package security

import (
	"context"
	"fmt"

	"github.com/casarancha/adminpanel/internal/domain/model"
)

type Store interface {
	Summary(ctx context.Context) (model.SecuritySummary, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Summary(ctx context.Context) (model.SecuritySummary, error) {
	summary, err := s.store.Summary(ctx)
	if err != nil {
		return model.SecuritySummary{}, fmt.Errorf("security summary: %w", err)
	}
	return summary, nil
}
