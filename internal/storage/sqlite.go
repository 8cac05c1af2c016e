// Package storage provides the SQLite persistence layer for the ledger.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store implements persistence for transactions, categories and
// settings on a single SQLite database. Exactly one Store is
// constructed per process by the application entry point and injected
// into every component that needs it.
type Store struct {
	db       *sql.DB
	notifier *notifier
	dbPath   string
}

// Open creates a Store backed by the database at dbPath, creating the
// file and its directory as needed. Call Migrate before first use.
func Open(dbPath string) (*Store, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		db:       db,
		dbPath:   dbPath,
		notifier: newNotifier(),
	}, nil
}

// Close closes the database connection and all open subscriptions.
func (s *Store) Close() error {
	s.notifier.close()
	return s.db.Close()
}

// Path returns the database file path the store was opened with.
func (s *Store) Path() string {
	return s.dbPath
}
