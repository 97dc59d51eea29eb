package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atomicstack/trackmoney/internal/ledger"
	"github.com/atomicstack/trackmoney/internal/logging/events"

	_ "modernc.org/sqlite"
)

const monthLayout = "2006-01-02"

// SQLite stores the ledger in a single table ordered by position.
type SQLite struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// OpenSQLite opens (and migrates) the database at path.
func OpenSQLite(path string, now func() time.Time) (*SQLite, error) {
	if now == nil {
		now = time.Now
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(path); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db, path: path, now: now}, nil
}

func (s *SQLite) Name() string { return s.path }

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load returns the records in position order. An empty table is seeded.
func (s *SQLite) Load(ctx context.Context) ([]ledger.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT month, title, amount FROM records ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []ledger.Record
	for rows.Next() {
		var (
			month  string
			record ledger.Record
		)
		if err := rows.Scan(&month, &record.Title, &record.Amount); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		record.Date, err = time.Parse(monthLayout, month)
		if err != nil {
			return nil, fmt.Errorf("parse month %q: %w", month, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	if len(records) == 0 {
		seed := Seed(s.now())
		if err := s.Save(ctx, seed); err != nil {
			return nil, err
		}
		events.Ledger.Load(s.path, len(seed), true)
		return seed, nil
	}
	events.Ledger.Load(s.path, len(records), false)
	return records, nil
}

// Save replaces every row inside one transaction.
func (s *SQLite) Save(ctx context.Context, records []ledger.Record) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (position, month, title, amount) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for i, r := range records {
		if _, err = stmt.ExecContext(ctx, i, r.Date.UTC().Format(monthLayout), r.Title, r.Amount); err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit records: %w", err)
	}
	return nil
}
