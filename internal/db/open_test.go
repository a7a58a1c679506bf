package db

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStores_CloseOnFailedPing(t *testing.T) {
	tests := []struct {
		name string
		open func(*sql.DB) error
	}{
		{"sqlite", func(db *sql.DB) error { _, err := newSQLiteStore(db); return err }},
		{"postgres", func(db *sql.DB) error { _, err := newPostgresStore(db); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)

			mock.ExpectPing().WillReturnError(errors.New("connection refused"))
			mock.ExpectClose()

			err = tt.open(db)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to ping database")
			assert.NoError(t, mock.ExpectationsWereMet(), "pool must be closed after a failed ping")
		})
	}
}

func TestNewPostgresStore_CloseOnFailedMigrate(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS runs").WillReturnError(errors.New("permission denied"))
	mock.ExpectClose()

	_, err = newPostgresStore(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to migrate database")
	assert.NoError(t, mock.ExpectationsWereMet())
}
