package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	"fizzbench/internal/benchmark"

	_ "github.com/lib/pq"
)

// PostgresStore implements benchmark.Store using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newPostgresStore(db)
}

// newPostgresStore takes ownership of db and closes it if the store cannot be used.
func newPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id BIGSERIAL PRIMARY KEY,
			timestamp_ns BIGINT NOT NULL,
			commit_hash TEXT NOT NULL DEFAULT '',
			lower_bound TEXT NOT NULL,
			upper_bound TEXT NOT NULL,
			rounds INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS samples (
			run_id BIGINT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			candidate TEXT NOT NULL,
			round INTEGER NOT NULL,
			elapsed_ns BIGINT NOT NULL,
			PRIMARY KEY (run_id, position, round)
		);`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	slog.Debug("postgres history schema ready")
	return nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Save stores run and its samples in a single transaction.
func (s *PostgresStore) Save(run benchmark.Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var runID int64
	err = tx.QueryRow(
		`INSERT INTO runs (timestamp_ns, commit_hash, lower_bound, upper_bound, rounds) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		run.Timestamp.UnixNano(), run.Commit, formatBound(run.Lower), formatBound(run.Upper), run.Rounds,
	).Scan(&runID)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	const insertSample = `INSERT INTO samples (run_id, position, candidate, round, elapsed_ns) VALUES ($1, $2, $3, $4, $5)`
	for pos, r := range run.Results {
		if len(r.Samples) == 0 {
			if _, err := tx.Exec(insertSample, runID, pos, r.Name, -1, 0); err != nil {
				return fmt.Errorf("failed to insert sample: %w", err)
			}
			continue
		}
		for round, d := range r.Samples {
			if _, err := tx.Exec(insertSample, runID, pos, r.Name, round, int64(d)); err != nil {
				return fmt.Errorf("failed to insert sample: %w", err)
			}
		}
	}

	return tx.Commit()
}

// LoadAll returns every stored run, oldest first.
func (s *PostgresStore) LoadAll() ([]benchmark.Run, error) {
	return loadRuns(s.db,
		`SELECT id, timestamp_ns, commit_hash, lower_bound, upper_bound, rounds FROM runs ORDER BY timestamp_ns, id`,
		`SELECT run_id, position, candidate, round, elapsed_ns FROM samples ORDER BY run_id, position, round`,
	)
}

// LoadLatest returns the newest run, or nil when the store is empty.
func (s *PostgresStore) LoadLatest() (*benchmark.Run, error) {
	return latest(s.LoadAll())
}
