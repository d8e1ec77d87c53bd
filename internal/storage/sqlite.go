// Package storage provides SQLite-based persistence for run records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only run statistics are stored. Grid contents never leave the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the CLI keeps its run database.
const DefaultPath = "~/.life/runs.db"

// Store manages the SQLite database connection for run records.
type Store struct {
	db *sql.DB
}

// RunRecord is the summary of one finished simulation.
type RunRecord struct {
	ID              int64
	Seed            int64
	Width           int
	Height          int
	Pattern         string // registry id, or "random" for a coin-flip soup
	Generations     int
	PeakPopulation  int
	FinalPopulation int
	Outcome         string
	CreatedAt       time.Time
}

// RunStats contains aggregated statistics for one pattern.
type RunStats struct {
	Pattern        string
	Runs           int
	Longest        int
	AvgGenerations float64
	MaxPeak        int
	LastRun        time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			pattern TEXT NOT NULL,
			generations INTEGER NOT NULL,
			peak_population INTEGER NOT NULL,
			final_population INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pattern ON runs(pattern);
		CREATE INDEX IF NOT EXISTS idx_runs_longest ON runs(pattern, generations DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (seed, width, height, pattern, generations, peak_population, final_population, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Seed, r.Width, r.Height, r.Pattern, r.Generations, r.PeakPopulation, r.FinalPopulation, r.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, seed, width, height, pattern, generations, peak_population, final_population, outcome, created_at`

// TopRuns retrieves the longest-lived runs for the given pattern.
// An empty pattern matches every run.
func (s *Store) TopRuns(pattern string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR pattern = ?
		 ORDER BY generations DESC, peak_population DESC, id ASC
		 LIMIT ?`,
		pattern, pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recently recorded runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Seed,
			&r.Width,
			&r.Height,
			&r.Pattern,
			&r.Generations,
			&r.PeakPopulation,
			&r.FinalPopulation,
			&r.Outcome,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats retrieves aggregated statistics for every pattern that has runs.
func (s *Store) Stats() (map[string]*RunStats, error) {
	rows, err := s.db.Query(
		`SELECT pattern, COUNT(*), MAX(generations), AVG(generations), MAX(peak_population), MAX(created_at)
		 FROM runs
		 GROUP BY pattern`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*RunStats)
	for rows.Next() {
		var st RunStats
		var lastRun any
		if err := rows.Scan(&st.Pattern, &st.Runs, &st.Longest, &st.AvgGenerations, &st.MaxPeak, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats[st.Pattern] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// RunByID retrieves a single run. Returns (nil, nil) when no such run exists.
func (s *Store) RunByID(id int64) (*RunRecord, error) {
	var r RunRecord
	var createdAt any
	err := s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE id = ?`, id,
	).Scan(
		&r.ID, &r.Seed, &r.Width, &r.Height, &r.Pattern,
		&r.Generations, &r.PeakPopulation, &r.FinalPopulation, &r.Outcome, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// ClearRuns deletes the runs of the given pattern, or every run when
// pattern is empty. Returns the number of deleted rows.
func (s *Store) ClearRuns(pattern string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR pattern = ?", pattern, pattern)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted runs: %w", err)
	}
	return n, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
