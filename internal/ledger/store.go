// Package ledger persists app-testing records: which widget identities a
// run registered, in registration order, under which labels. The durable
// store lives outside the registration hot path; runs feed it through the
// run context's recorder hook.
package ledger

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

const currentSchemaVersion = 1

// Entry is one recorded widget registration.
type Entry struct {
	RunToken string
	Seq      int64
	WidgetID string
	Label    string
}

// Store provides durable storage for app-testing records.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - Foreign key enforcement
//
// This function is idempotent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the underlying sql.DB for direct queries.
// Use with caution - prefer using Store methods when available.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Append stores one registration record. (run_token, seq) must be unique;
// replaying the same position twice is a caller bug and fails loudly.
func (s *Store) Append(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO widget_records (run_token, seq, widget_id, label)
		VALUES (?, ?, ?, ?)
	`, e.RunToken, e.Seq, e.WidgetID, e.Label)
	if err != nil {
		return fmt.Errorf("append record (run=%s seq=%d): %w", e.RunToken, e.Seq, err)
	}
	return nil
}

// List returns a run's records ordered by registration sequence.
func (s *Store) List(ctx context.Context, runToken string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_token, seq, widget_id, label
		FROM widget_records
		WHERE run_token = ?
		ORDER BY seq
	`, runToken)
	if err != nil {
		return nil, fmt.Errorf("list records for run %s: %w", runToken, err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListAll returns every record ordered by run token, then sequence.
func (s *Store) ListAll(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_token, seq, widget_id, label
		FROM widget_records
		ORDER BY run_token, seq
	`)
	if err != nil {
		return nil, fmt.Errorf("list all records: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.RunToken, &e.Seq, &e.WidgetID, &e.Label); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return entries, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates tables if they don't exist. Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}
