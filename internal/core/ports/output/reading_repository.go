package ports

import (
	"context"

	"ccms-monitor/internal/core/domain"
)

// ReadingFilter narrows and pages a reading listing.
type ReadingFilter struct {
	MTEName string
	SID     string
	Limit   int
	Offset  int
}

// ReadingRepository persists fetched MTE values.
type ReadingRepository interface {
	Create(ctx context.Context, reading *domain.Reading) error
	GetByID(ctx context.Context, id string) (*domain.Reading, error)
	List(ctx context.Context, filter ReadingFilter) ([]*domain.Reading, int, error)
}
