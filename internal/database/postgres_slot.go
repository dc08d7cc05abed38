package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// slotTable holds one row per slot key, in both SQL and Mongo backends.
const slotTable = "kv_slots"

// SQLExecutor defines an interface that can be satisfied by *sql.DB or *sql.Tx
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// PostgresSlot keeps the slot value in a single row of the kv_slots table.
type PostgresSlot struct {
	db  SQLExecutor
	key string
}

// NewPostgresSlot creates a PostgresSlot. Call EnsureSchema once before use.
func NewPostgresSlot(db SQLExecutor, key string) *PostgresSlot {
	return &PostgresSlot{db: db, key: key}
}

// EnsureSchema creates the kv_slots table if it does not exist.
func (s *PostgresSlot) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS ` + slotTable + ` (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("could not create %s table: %w", slotTable, err)
	}
	return nil
}

func (s *PostgresSlot) Key() string { return s.key }

func (s *PostgresSlot) Read(ctx context.Context) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM "+slotTable+" WHERE key = $1", s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot %q: %w", s.key, err)
	}
	return []byte(value), nil
}

func (s *PostgresSlot) Write(ctx context.Context, value []byte) error {
	query := `
	    INSERT INTO ` + slotTable + ` (key, value, updated_at)
	    VALUES ($1, $2, $3)
	    ON CONFLICT (key)
	    DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.db.ExecContext(ctx, query, s.key, string(value), time.Now()); err != nil {
		return fmt.Errorf("writing slot %q: %w", s.key, err)
	}
	return nil
}

func (s *PostgresSlot) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM "+slotTable+" WHERE key = $1", s.key); err != nil {
		return fmt.Errorf("clearing slot %q: %w", s.key, err)
	}
	return nil
}
