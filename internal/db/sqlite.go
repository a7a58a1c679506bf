package db

import (
	"database/sql"
	"fmt"

	"fizzbench/internal/benchmark"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements benchmark.Store using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newSQLiteStore(db)
}

// newSQLiteStore takes ownership of db and closes it if the store cannot be used.
func newSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp_ns INTEGER NOT NULL,
		commit_hash TEXT NOT NULL DEFAULT '',
		lower_bound TEXT NOT NULL,
		upper_bound TEXT NOT NULL,
		rounds INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS samples (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		candidate TEXT NOT NULL,
		round INTEGER NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		PRIMARY KEY (run_id, position, round)
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save stores run and its samples in a single transaction.
// Candidates with no samples are kept through a placeholder row with round -1.
func (s *SQLiteStore) Save(run benchmark.Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (timestamp_ns, commit_hash, lower_bound, upper_bound, rounds) VALUES (?, ?, ?, ?, ?)`,
		run.Timestamp.UnixNano(), run.Commit, formatBound(run.Lower), formatBound(run.Upper), run.Rounds,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for pos, r := range run.Results {
		if len(r.Samples) == 0 {
			if _, err := tx.Exec(`INSERT INTO samples (run_id, position, candidate, round, elapsed_ns) VALUES (?, ?, ?, -1, 0)`,
				runID, pos, r.Name); err != nil {
				return fmt.Errorf("failed to insert sample: %w", err)
			}
			continue
		}
		for round, d := range r.Samples {
			if _, err := tx.Exec(`INSERT INTO samples (run_id, position, candidate, round, elapsed_ns) VALUES (?, ?, ?, ?, ?)`,
				runID, pos, r.Name, round, int64(d)); err != nil {
				return fmt.Errorf("failed to insert sample: %w", err)
			}
		}
	}

	return tx.Commit()
}

// LoadAll returns every stored run, oldest first.
func (s *SQLiteStore) LoadAll() ([]benchmark.Run, error) {
	return loadRuns(s.db,
		`SELECT id, timestamp_ns, commit_hash, lower_bound, upper_bound, rounds FROM runs ORDER BY timestamp_ns, id`,
		`SELECT run_id, position, candidate, round, elapsed_ns FROM samples ORDER BY run_id, position, round`,
	)
}

// LoadLatest returns the newest run, or nil when the store is empty.
func (s *SQLiteStore) LoadLatest() (*benchmark.Run, error) {
	return latest(s.LoadAll())
}
