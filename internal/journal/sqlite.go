package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteJournal implements Journal using SQLite.
type SQLiteJournal struct {
	db *sql.DB
}

// NewSQLiteJournal opens or creates a SQLite database at dbPath and initializes the schema.
// Parent directories are created if they do not exist.
func NewSQLiteJournal(dbPath string) (*SQLiteJournal, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteJournal{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS cleanups (
		id TEXT PRIMARY KEY,
		fragment TEXT NOT NULL,
		root TEXT,
		target TEXT,
		outcome TEXT NOT NULL,
		freed_bytes INTEGER NOT NULL DEFAULT 0,
		detail TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_cleanups_created_at ON cleanups(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Record inserts e, assigning an ID and timestamp when they are unset.
func (j *SQLiteJournal) Record(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO cleanups (id, fragment, root, target, outcome, freed_bytes, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Fragment, e.Root, e.Target, e.Outcome, e.FreedBytes, e.Detail, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record cleanup: %w", err)
	}
	return nil
}

// List returns entries newest first.
func (j *SQLiteJournal) List(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, fragment, root, target, outcome, freed_bytes, detail, created_at
		 FROM cleanups ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var root, target, detail sql.NullString
		if err := rows.Scan(&e.ID, &e.Fragment, &root, &target, &e.Outcome, &e.FreedBytes, &detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Root, e.Target, e.Detail = root.String, target.String, detail.String
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Close closes the database.
func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
