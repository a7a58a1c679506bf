package db

import (
	"errors"
	"fmt"
	"strings"

	"fizzbench/internal/benchmark"
)

// ErrUnsupportedStore is returned for an unknown store type.
var ErrUnsupportedStore = errors.New("unsupported store type")

// Default locations for file-backed stores.
const (
	DefaultJSONPath   = ".fizzbench/history.json"
	DefaultSQLitePath = ".fizzbench/history.db"
)

// StoreConfig holds configuration for the history backend
type StoreConfig struct {
	Type             string // "json", "sqlite" or "postgres"
	ConnectionString string // File path for json/SQLite, DSN for Postgres
}

// NewStore creates a new Store instance based on the provided configuration
func NewStore(config StoreConfig) (benchmark.Store, error) {
	switch strings.ToLower(config.Type) {
	case "postgres", "postgresql":
		if config.ConnectionString == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.ConnectionString)
	case "sqlite", "sqlite3":
		if config.ConnectionString == "" {
			config.ConnectionString = DefaultSQLitePath
		}
		if err := ensureDir(config.ConnectionString); err != nil {
			return nil, err
		}
		return NewSQLiteStore(config.ConnectionString)
	case "", "json":
		if config.ConnectionString == "" {
			config.ConnectionString = DefaultJSONPath
		}
		return benchmark.NewFileStore(config.ConnectionString)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStore, config.Type)
	}
}
