package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/rs/zerolog"
)

// DB wraps the SQLite connection used by the record stores.
type DB struct {
	*sql.DB
	logger *zerolog.Logger
}

// ErrNotFound is returned when an update or delete targets a missing row.
var ErrNotFound = errors.New("record not found")

// NewDB opens the database at path and creates tables if they don't exist.
func NewDB(path string, logger *zerolog.Logger) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL mode and a busy timeout so concurrent handlers don't trip over
	// SQLite's single-writer lock.
	dsn := path + "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	instance := &DB{
		DB:     db,
		logger: logger,
	}

	if err := instance.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	logger.Info().Str("path", path).Msg("Database initialized")
	return instance, nil
}

func (db *DB) createTables() error {
	queries := []string{
		// Dock reservations. Dates are stored as YYYY-MM-DD text so that
		// lexical ordering matches chronological ordering.
		`CREATE TABLE IF NOT EXISTS reservations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dock_id TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			guest_name TEXT NOT NULL,
			boat_type TEXT,
			boat_length TEXT,
			boat_width TEXT,
			email TEXT,
			phone_number TEXT,
			payment_status TEXT NOT NULL DEFAULT 'Not Paid Yet',
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task TEXT NOT NULL,
			is_completed BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS waitlist_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			waitlist_type TEXT NOT NULL,
			name TEXT NOT NULL,
			phone TEXT,
			email TEXT,
			address TEXT,
			boat_name TEXT,
			boat_license TEXT,
			trailer_license_plate TEXT,
			boat_or_jet_ski TEXT,
			boat_width TEXT,
			boat_length TEXT,
			notes TEXT,
			status TEXT NOT NULL DEFAULT 'Waiting',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_reservations_dock ON reservations(dock_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_dates ON reservations(start_date, end_date)`,
		`CREATE INDEX IF NOT EXISTS idx_todos_created ON todos(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_waitlist_type ON waitlist_entries(waitlist_type)`,
		`CREATE INDEX IF NOT EXISTS idx_waitlist_status ON waitlist_entries(status)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}

	return db.ensureNewColumns()
}

// ensureNewColumns adds columns introduced after the initial schema.
func (db *DB) ensureNewColumns() error {
	migrations := []string{
		`ALTER TABLE reservations ADD COLUMN notes TEXT`,
		`ALTER TABLE waitlist_entries ADD COLUMN trailer_license_plate TEXT`,
	}

	for _, m := range migrations {
		_, err := db.Exec(m)
		if err != nil && !strings.Contains(strings.ToLower(err.Error()), "duplicate column") {
			if db.logger != nil {
				db.logger.Debug().Err(err).Str("migration", m).Msg("Migration skipped")
			}
		}
	}
	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
