package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/weathermate/backend/internal/domain"
)

// PostgresRepository implements domain.LookupRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS advice_lookups (
	id UUID PRIMARY KEY,
	city TEXT NOT NULL,
	temperature_c DOUBLE PRECISION NOT NULL,
	condition TEXT NOT NULL DEFAULT '',
	suggestions TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_advice_lookups_created_at ON advice_lookups (created_at DESC);
`

// EnsureSchema creates the lookup table if it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to ensure schema: %w", err)
	}
	return nil
}

// SaveLookup persists one advice lookup to PostgreSQL
func (r *PostgresRepository) SaveLookup(ctx context.Context, rec domain.LookupRecord) error {
	sql, args, err := r.sb.Insert("advice_lookups").
		Columns("id", "city", "temperature_c", "condition", "suggestions", "created_at").
		Values(rec.ID, rec.City, rec.TemperatureC, rec.Condition, rec.Suggestions, rec.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("postgres: failed to build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("postgres: failed to save lookup: %w", err)
	}

	return nil
}

// ListRecentLookups retrieves the most recent lookups, newest first
func (r *PostgresRepository) ListRecentLookups(ctx context.Context, limit int) ([]domain.LookupRecord, error) {
	sql, args, err := r.sb.Select("id", "city", "temperature_c", "condition", "suggestions", "created_at").
		From("advice_lookups").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to build select: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query lookups: %w", err)
	}
	defer rows.Close()

	var results []domain.LookupRecord
	for rows.Next() {
		var rec domain.LookupRecord
		err := rows.Scan(
			&rec.ID, &rec.City, &rec.TemperatureC, &rec.Condition, &rec.Suggestions, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan lookup row: %w", err)
		}
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read lookup rows: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
