package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"investment-calculator/domain"

	_ "modernc.org/sqlite"
)

const createCalculationsTable = `
CREATE TABLE IF NOT EXISTS calculations (
	id                 TEXT PRIMARY KEY,
	initial_investment REAL NOT NULL,
	annual_investment  REAL NOT NULL,
	expected_return    REAL NOT NULL,
	duration           INTEGER NOT NULL,
	years              INTEGER NOT NULL,
	final_value        REAL NOT NULL,
	total_interest     REAL NOT NULL,
	created_at         INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_calculations_created_at ON calculations (created_at);
`

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// SQLiteCalculationRepository persists calculation history in SQLite.
type SQLiteCalculationRepository struct {
	db *sql.DB
}

// OpenSQLiteCalculationRepository opens (and migrates) the database at path.
func OpenSQLiteCalculationRepository(path string) (*SQLiteCalculationRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(createCalculationsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create calculations table: %w", err)
	}

	return &SQLiteCalculationRepository{db: db}, nil
}

// Close closes the underlying database.
func (r *SQLiteCalculationRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteCalculationRepository) Save(
	ctx context.Context,
	record domain.CalculationRecord,
) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO calculations (
	id, initial_investment, annual_investment, expected_return, duration,
	years, final_value, total_interest, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Input.InitialInvestment,
		record.Input.AnnualInvestment,
		record.Input.ExpectedReturn,
		record.Input.Duration,
		record.Years,
		record.FinalValue,
		record.TotalInterest,
		toMillis(record.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert calculation %s: %w", record.ID, err)
	}
	return nil
}

func (r *SQLiteCalculationRepository) List(
	ctx context.Context,
	limit int,
) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, initial_investment, annual_investment, expected_return, duration,
	years, final_value, total_interest, created_at
FROM calculations
ORDER BY created_at DESC, rowid DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	records := []domain.CalculationRecord{}
	for rows.Next() {
		var (
			rec       domain.CalculationRecord
			createdAt int64
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Input.InitialInvestment,
			&rec.Input.AnnualInvestment,
			&rec.Input.ExpectedReturn,
			&rec.Input.Duration,
			&rec.Years,
			&rec.FinalValue,
			&rec.TotalInterest,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		rec.CreatedAt = fromMillis(createdAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calculations: %w", err)
	}
	return records, nil
}
