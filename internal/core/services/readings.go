package services

import (
	"context"

	"ccms-monitor/internal/core/domain"
	"ccms-monitor/internal/core/ports/output"
)

// ReadingService serves the archived readings.
type ReadingService struct {
	repo ports.ReadingRepository
}

func NewReadingService(repo ports.ReadingRepository) *ReadingService {
	return &ReadingService{repo: repo}
}

func (s *ReadingService) Record(ctx context.Context, reading *domain.Reading) error {
	if s.repo == nil {
		return domain.ErrArchiveDisabled
	}
	return s.repo.Create(ctx, reading)
}

func (s *ReadingService) Get(ctx context.Context, id string) (*domain.Reading, error) {
	if s.repo == nil {
		return nil, domain.ErrArchiveDisabled
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ReadingService) List(ctx context.Context, filter ports.ReadingFilter) ([]*domain.Reading, int, error) {
	if s.repo == nil {
		return nil, 0, domain.ErrArchiveDisabled
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}
