package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/nikolayk812/storefront/internal/domain"
)

const (
	createKVTable = `CREATE TABLE IF NOT EXISTS kv (
    key        TEXT PRIMARY KEY,
    value      BLOB      NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`

	selectKV = `SELECT value FROM kv WHERE key = ?`

	upsertKV = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

// LocalSlot keeps the cart snapshot as a JSON array under a fixed key in a local SQLite key-value table.
type LocalSlot struct {
	db  *sql.DB
	key string
}

func OpenSQLite(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	// one writer keeps the single slot consistent
	sqlDB.SetMaxOpenConns(1)

	return sqlDB, nil
}

func NewLocalSlot(ctx context.Context, sqlDB *sql.DB, key string) (*LocalSlot, error) {
	if sqlDB == nil {
		return nil, fmt.Errorf("db is nil")
	}
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	if _, err := sqlDB.ExecContext(ctx, createKVTable); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &LocalSlot{db: sqlDB, key: key}, nil
}

// Load returns an empty cart when the key was never written.
func (s *LocalSlot) Load(ctx context.Context) ([]domain.LineItem, error) {
	var value []byte

	err := s.db.QueryRowContext(ctx, selectKV, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select kv[%s]: %w", s.key, err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, fmt.Errorf("json.Unmarshal kv[%s]: %w", s.key, err)
	}

	if items == nil {
		items = []domain.LineItem{}
	}
	return items, nil
}

func (s *LocalSlot) Save(ctx context.Context, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}

	value, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, upsertKV, s.key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert kv[%s]: %w", s.key, err)
	}

	return nil
}
