// Package storage persists collection snapshots into named slots backed by
// SQLite. Each slot holds one full serialized collection; a save replaces
// the previous value entirely. There is no schema versioning for slot
// contents: stale snapshots are assumed structurally compatible.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore stores slot snapshots in a single-table SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns the value stored under the slot, or nil when the slot is
// absent. Storage-level failures are logged and reported as absence so
// callers can fall back to their defaults.
func (s *SQLiteStore) Load(ctx context.Context, slot string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE slot = ?`, slot).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "Snapshot load failed, treating as absent",
			"slot", slot,
			"error", err)
		return nil, nil
	}
	return []byte(value), nil
}

// Save overwrites the slot with the given value.
func (s *SQLiteStore) Save(ctx context.Context, slot string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (slot, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		slot, string(value))
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", slot, err)
	}

	slog.DebugContext(ctx, "Snapshot saved",
		"slot", slot,
		"bytes", len(value))
	return nil
}

// Delete removes the slot. Deleting a missing slot is a no-op.
func (s *SQLiteStore) Delete(ctx context.Context, slot string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("delete snapshot %s: %w", slot, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
