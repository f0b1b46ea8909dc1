package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"kundali-engine/internal/chart"
	"kundali-engine/internal/errors"
)

// SQLiteStore implements ChartStore using SQLite. The full chart record
// is stored as a JSON payload keyed by name, with the birth parameters
// denormalized for listing and filtering.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based chart store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool for concurrent access
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Charts table for derived chart records
	CREATE TABLE IF NOT EXISTS charts (
		name TEXT PRIMARY KEY,
		birth_time DATETIME NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		ascendant_sign TEXT NOT NULL,
		complete INTEGER NOT NULL DEFAULT 1,
		payload TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_charts_birth_time ON charts(birth_time);
	CREATE INDEX IF NOT EXISTS idx_charts_updated ON charts(updated_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveChart persists a chart record under its subject's name.
func (s *SQLiteStore) SaveChart(ctx context.Context, c *chart.Chart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return errors.NewDataError("chart", c.Birth.ID(), "failed to encode chart", err)
	}

	complete := 0
	if c.Complete() {
		complete = 1
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO charts (name, birth_time, latitude, longitude, ascendant_sign, complete, payload, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			birth_time = excluded.birth_time,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			ascendant_sign = excluded.ascendant_sign,
			complete = excluded.complete,
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP
	`, c.Birth.ID(), c.Birth.Time.UTC(), c.Birth.Latitude, c.Birth.Longitude,
		c.Ascendant.Sign.String(), complete, string(payload))
	if err != nil {
		return errors.NewDataError("chart", c.Birth.ID(), "failed to save chart",
			errors.Wrap(errors.ErrDatabaseError, err.Error()))
	}

	return nil
}

// GetChart loads a chart record by name.
func (s *SQLiteStore) GetChart(ctx context.Context, name string) (*chart.Chart, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM charts WHERE name = ?
	`, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, errors.NewDataError("chart", name, "chart not saved", errors.ErrChartNotFound)
	}
	if err != nil {
		return nil, errors.NewDataError("chart", name, "failed to load chart",
			errors.Wrap(errors.ErrDatabaseError, err.Error()))
	}

	var c chart.Chart
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return nil, errors.NewDataError("chart", name, "failed to decode chart", err)
	}

	return &c, nil
}

// ListCharts returns summaries of saved charts matching the filter.
func (s *SQLiteStore) ListCharts(ctx context.Context, filter ChartFilter) ([]ChartSummary, error) {
	query := `
		SELECT name, birth_time, latitude, longitude, ascendant_sign, complete, updated_at
		FROM charts
		WHERE 1=1
	`
	var args []interface{}

	if filter.NamePrefix != "" {
		query += " AND name LIKE ?"
		args = append(args, filter.NamePrefix+"%")
	}
	if !filter.After.IsZero() {
		query += " AND birth_time >= ?"
		args = append(args, filter.After.UTC())
	}
	if !filter.Before.IsZero() {
		query += " AND birth_time <= ?"
		args = append(args, filter.Before.UTC())
	}

	query += " ORDER BY updated_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewDataError("chart", "", "failed to list charts",
			errors.Wrap(errors.ErrDatabaseError, err.Error()))
	}
	defer rows.Close()

	var summaries []ChartSummary
	for rows.Next() {
		var sum ChartSummary
		var complete int
		if err := rows.Scan(&sum.Name, &sum.BirthTime, &sum.Latitude, &sum.Longitude,
			&sum.AscendantSign, &complete, &sum.SavedAt); err != nil {
			return nil, errors.NewDataError("chart", "", "failed to scan chart row", err)
		}
		sum.Complete = complete == 1
		summaries = append(summaries, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewDataError("chart", "", "error iterating charts", err)
	}

	return summaries, nil
}

// DeleteChart removes a saved chart by name.
func (s *SQLiteStore) DeleteChart(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM charts WHERE name = ?`, name)
	if err != nil {
		return errors.NewDataError("chart", name, "failed to delete chart",
			errors.Wrap(errors.ErrDatabaseError, err.Error()))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.NewDataError("chart", name, "failed to check delete result", err)
	}
	if affected == 0 {
		return errors.NewDataError("chart", name, "chart not saved", errors.ErrChartNotFound)
	}

	return nil
}

var _ ChartStore = (*SQLiteStore)(nil)
