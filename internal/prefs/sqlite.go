package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ziadkadry99/coleweb/internal/db"
)

// SQLiteKV persists values in the preferences table.
type SQLiteKV struct {
	db *db.DB
}

// NewSQLiteKV creates a SQLiteKV backed by database.
func NewSQLiteKV(database *db.DB) *SQLiteKV {
	return &SQLiteKV{db: database}
}

// splitKey turns "visitor:<id>:theme" into scope "visitor:<id>" and key "theme".
func splitKey(full string) (scope, key string) {
	i := strings.LastIndex(full, ":")
	if i < 0 {
		return "", full
	}
	return full[:i], full[i+1:]
}

func (s *SQLiteKV) Get(ctx context.Context, key string) (string, error) {
	scope, k := splitKey(key)
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE scope = ? AND key = ?`, scope, k,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("querying preference: %w", err)
	}
	return value, nil
}

func (s *SQLiteKV) Set(ctx context.Context, key, value string) error {
	scope, k := splitKey(key)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (scope, key, value, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		scope, k, value)
	if err != nil {
		return fmt.Errorf("upserting preference: %w", err)
	}
	return nil
}
