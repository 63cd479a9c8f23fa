package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ccms-monitor/internal/core/domain"
	"ccms-monitor/internal/core/ports/output"
)

type readingRepo struct {
	pool *pgxpool.Pool
}

// NewReadingRepository creates a new ReadingRepository
func NewReadingRepository(pool *pgxpool.Pool) ports.ReadingRepository {
	return &readingRepo{pool: pool}
}

func (r *readingRepo) Create(ctx context.Context, reading *domain.Reading) error {
	query := `
		INSERT INTO reading
			(id, sid, context_name, object_name, mte_name, class, value, collected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		reading.ID, reading.SID,
		reading.MTE.ContextName, reading.MTE.ObjectName, reading.MTE.MTEName,
		string(reading.Class), reading.Value, reading.CollectedAt,
	)
	if err != nil {
		return fmt.Errorf("create reading: %w", err)
	}
	return nil
}

func (r *readingRepo) GetByID(ctx context.Context, id string) (*domain.Reading, error) {
	query := `
		SELECT id, sid, context_name, object_name, mte_name, class, value, collected_at
		FROM reading
		WHERE id = $1
	`

	reading, err := r.scanReading(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReadingNotFound
		}
		return nil, fmt.Errorf("get reading by id: %w", err)
	}
	return reading, nil
}

func (r *readingRepo) List(ctx context.Context, filter ports.ReadingFilter) ([]*domain.Reading, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.SID != "" {
		conditions = append(conditions, fmt.Sprintf("sid = $%d", argPos))
		args = append(args, filter.SID)
		argPos++
	}
	if filter.MTEName != "" {
		conditions = append(conditions, fmt.Sprintf("mte_name = $%d", argPos))
		args = append(args, filter.MTEName)
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM reading WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count readings: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, sid, context_name, object_name, mte_name, class, value, collected_at
		FROM reading
		WHERE %s
		ORDER BY collected_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list readings: %w", err)
	}
	defer rows.Close()

	var readings []*domain.Reading
	for rows.Next() {
		reading, err := r.scanReadingFromRows(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan reading row: %w", err)
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate reading rows: %w", err)
	}

	return readings, total, nil
}

func (r *readingRepo) scanReading(row pgx.Row) (*domain.Reading, error) {
	reading := &domain.Reading{}
	var class string
	err := row.Scan(
		&reading.ID, &reading.SID,
		&reading.MTE.ContextName, &reading.MTE.ObjectName, &reading.MTE.MTEName,
		&class, &reading.Value, &reading.CollectedAt,
	)
	if err != nil {
		return nil, err
	}
	reading.Class = domain.MTEClass(class)
	return reading, nil
}

func (r *readingRepo) scanReadingFromRows(rows pgx.Rows) (*domain.Reading, error) {
	reading := &domain.Reading{}
	var class string
	err := rows.Scan(
		&reading.ID, &reading.SID,
		&reading.MTE.ContextName, &reading.MTE.ObjectName, &reading.MTE.MTEName,
		&class, &reading.Value, &reading.CollectedAt,
	)
	if err != nil {
		return nil, err
	}
	reading.Class = domain.MTEClass(class)
	return reading, nil
}
