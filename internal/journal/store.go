package journal

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump it when schema.sql changes.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database was written by another p2mark version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Outcome is what happened to one clip.
type Outcome string

const (
	OutcomeWritten   Outcome = "written"
	OutcomeListed    Outcome = "listed"
	OutcomeNoMarkers Outcome = "no_markers"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// Entry is one journal row.
type Entry struct {
	ID          int64
	RunID       string
	Mode        string
	ContentsDir string
	Clip        string
	Sidecar     string
	Markers     int
	Outcome     Outcome
	ErrorKind   string
	Error       string
	RecordedAt  time.Time
}

// Store persists journal entries.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the journal database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("journal path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends entry. A zero RecordedAt is set to the current time.
func (s *Store) Record(ctx context.Context, entry Entry) (Entry, error) {
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}
	entry.RecordedAt = entry.RecordedAt.UTC()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO clip_events (
            run_id, mode, contents_dir, clip, sidecar, markers,
            outcome, error_kind, error_message, recorded_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		entry.Mode,
		entry.ContentsDir,
		entry.Clip,
		nullableString(entry.Sidecar),
		entry.Markers,
		string(entry.Outcome),
		nullableString(entry.ErrorKind),
		nullableString(entry.Error),
		entry.RecordedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("insert journal entry: %w", err)
	}
	if entry.ID, err = res.LastInsertId(); err != nil {
		return Entry{}, fmt.Errorf("last insert id: %w", err)
	}
	return entry, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.query(ctx, selectColumns+` ORDER BY id DESC LIMIT ?`, limit)
}

// Run returns the entries of one run in processing order.
func (s *Store) Run(ctx context.Context, runID string) ([]Entry, error) {
	return s.query(ctx, selectColumns+` WHERE run_id = ? ORDER BY id`, runID)
}

const selectColumns = `SELECT id, run_id, mode, contents_dir, clip, sidecar, markers,
        outcome, error_kind, error_message, recorded_at FROM clip_events`

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}
	return entries, nil
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var (
		entry              Entry
		sidecar, kind, msg sql.NullString
		outcome, recorded  string
	)
	if err := rows.Scan(
		&entry.ID, &entry.RunID, &entry.Mode, &entry.ContentsDir, &entry.Clip,
		&sidecar, &entry.Markers, &outcome, &kind, &msg, &recorded,
	); err != nil {
		return Entry{}, fmt.Errorf("scan journal entry: %w", err)
	}
	entry.Sidecar = sidecar.String
	entry.Outcome = Outcome(outcome)
	entry.ErrorKind = kind.String
	entry.Error = msg.String
	ts, err := time.Parse(time.RFC3339Nano, recorded)
	if err != nil {
		return Entry{}, fmt.Errorf("parse recorded_at %q: %w", recorded, err)
	}
	entry.RecordedAt = ts
	return entry, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}
	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to start a new journal)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
