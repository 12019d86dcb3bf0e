package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
)

var _ domain.DayEntryRepository = (*PostgresEntryRepository)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS day_entries (
	id             UUID PRIMARY KEY,
	entry_date     DATE NOT NULL UNIQUE,
	goal           TEXT NOT NULL DEFAULT '',
	notes          TEXT NOT NULL DEFAULT '',
	checked_habits TEXT[] NOT NULL DEFAULT '{}',
	version        INTEGER NOT NULL DEFAULT 1,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
)`

const selectColumns = `
	id, to_char(entry_date, 'YYYY-MM-DD') AS entry_date,
	goal, notes, checked_habits,
	version, created_at, updated_at`

// EnsureSchema creates the entries table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("repository: ensure schema failed: %w", err)
	}
	return nil
}

type entryRow struct {
	ID            string         `db:"id"`
	Date          string         `db:"entry_date"`
	Goal          string         `db:"goal"`
	Notes         string         `db:"notes"`
	CheckedHabits pq.StringArray `db:"checked_habits"`
	Version       int            `db:"version"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func toRow(e *domain.DayEntry) entryRow {
	habits := e.CheckedHabits
	if habits == nil {
		habits = []string{}
	}
	return entryRow{
		ID:            e.ID,
		Date:          e.Date,
		Goal:          e.Goal,
		Notes:         e.Notes,
		CheckedHabits: pq.StringArray(habits),
		Version:       e.Version,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (r entryRow) toDomain() *domain.DayEntry {
	habits := []string(r.CheckedHabits)
	if habits == nil {
		habits = []string{}
	}
	return &domain.DayEntry{
		ID:            r.ID,
		Date:          r.Date,
		Goal:          r.Goal,
		Notes:         r.Notes,
		CheckedHabits: habits,
		Version:       r.Version,
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     r.UpdatedAt.UTC(),
	}
}

type PostgresEntryRepository struct {
	db *sqlx.DB
}

func NewPostgresEntryRepository(db *sqlx.DB) *PostgresEntryRepository {
	return &PostgresEntryRepository{db: db}
}

func (r *PostgresEntryRepository) Save(ctx context.Context, entry *domain.DayEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO day_entries (
			id, entry_date, goal, notes, checked_habits,
			version, created_at, updated_at
		) VALUES (
			:id, :entry_date, :goal, :notes, :checked_habits,
			:version, :created_at, :updated_at
		)
		ON CONFLICT (entry_date) DO UPDATE
		SET goal = EXCLUDED.goal,
		    notes = EXCLUDED.notes,
		    checked_habits = EXCLUDED.checked_habits,
		    version = EXCLUDED.version,
		    updated_at = EXCLUDED.updated_at
		WHERE day_entries.version = EXCLUDED.version - 1`

	result, err := r.db.NamedExecContext(ctx, query, toRow(entry))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrEntryConflict
		}
		return fmt.Errorf("repository: save entry failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	// The upsert is skipped when the stored version is not the one the
	// caller started from.
	if rows == 0 {
		return domain.ErrEntryConflict
	}

	return nil
}

func (r *PostgresEntryRepository) GetByDate(ctx context.Context, date string) (*domain.DayEntry, error) {
	var row entryRow
	query := `SELECT ` + selectColumns + ` FROM day_entries WHERE entry_date = $1`

	err := r.db.GetContext(ctx, &row, query, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("repository: get entry failed: %w", err)
	}
	return row.toDomain(), nil
}

func (r *PostgresEntryRepository) ListRange(ctx context.Context, from, to string) ([]*domain.DayEntry, error) {
	rows := []entryRow{}

	query := `
		SELECT ` + selectColumns + `
		FROM day_entries
		WHERE entry_date >= $1
		  AND entry_date <= $2
		ORDER BY entry_date ASC`

	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, fmt.Errorf("repository: list entries failed: %w", err)
	}
	return toDomainList(rows), nil
}

func (r *PostgresEntryRepository) ListAll(ctx context.Context) ([]*domain.DayEntry, error) {
	rows := []entryRow{}

	query := `SELECT ` + selectColumns + ` FROM day_entries ORDER BY entry_date ASC`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("repository: list all entries failed: %w", err)
	}
	return toDomainList(rows), nil
}

func (r *PostgresEntryRepository) Delete(ctx context.Context, date string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM day_entries WHERE entry_date = $1`, date)
	if err != nil {
		return fmt.Errorf("repository: delete entry failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

func (r *PostgresEntryRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func toDomainList(rows []entryRow) []*domain.DayEntry {
	entries := make([]*domain.DayEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return entries
}
