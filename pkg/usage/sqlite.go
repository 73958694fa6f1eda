package usage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS usage_entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at TIMESTAMP NOT NULL,
	endpoint TEXT NOT NULL,
	model TEXT NOT NULL,
	turns INTEGER NOT NULL,
	searched INTEGER NOT NULL,
	annotations INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	status TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_usage_entries_endpoint ON usage_entries (endpoint);
`

// SqliteRecorder keeps the ledger in a SQLite database so it survives
// restarts.
type SqliteRecorder struct {
	db *sql.DB
}

// NewSqliteRecorder opens the database at path, creating the file and the
// schema when missing.
func NewSqliteRecorder(path string) (*SqliteRecorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// a single connection avoids SQLITE_BUSY under concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SqliteRecorder{db: db}, nil
}

// Record implements Recorder.
func (s *SqliteRecorder) Record(ctx context.Context, entry Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO usage_entries
			(recorded_at, endpoint, model, turns, searched, annotations, duration_ms, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Timestamp, entry.Endpoint, entry.Model, entry.Turns,
		entry.Searched, entry.Annotations, entry.DurationMS, entry.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	return nil
}

// Summarize implements Recorder.
func (s *SqliteRecorder) Summarize(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		ByEndpoint: make(map[string]int),
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(searched), 0),
			COALESCE(SUM(annotations), 0),
			COALESCE(SUM(status = 'error'), 0),
			COALESCE(AVG(duration_ms), 0)
		FROM usage_entries`)

	var avgDuration float64
	err := row.Scan(&summary.TotalRequests, &summary.Searches,
		&summary.Annotations, &summary.Errors, &avgDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate entries: %w", err)
	}
	summary.AvgDurationMS = int64(avgDuration)

	rows, err := s.db.QueryContext(ctx,
		`SELECT endpoint, COUNT(*) FROM usage_entries GROUP BY endpoint`)
	if err != nil {
		return nil, fmt.Errorf("failed to group entries by endpoint: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var endpoint string
		var count int
		if err := rows.Scan(&endpoint, &count); err != nil {
			return nil, fmt.Errorf("failed to scan endpoint row: %w", err)
		}
		summary.ByEndpoint[endpoint] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read endpoint rows: %w", err)
	}

	return summary, nil
}

// Entries returns every recorded entry, oldest first.
func (s *SqliteRecorder) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT recorded_at, endpoint, model, turns, searched, annotations, duration_ms, status
		FROM usage_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		err := rows.Scan(&entry.Timestamp, &entry.Endpoint, &entry.Model, &entry.Turns,
			&entry.Searched, &entry.Annotations, &entry.DurationMS, &entry.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	return entries, nil
}

// Close implements Recorder.
func (s *SqliteRecorder) Close() error {
	return s.db.Close()
}
