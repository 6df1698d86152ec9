package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// KV is a flat string key-value store.
type KV interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

const kvTable = "kv_store"

// sqliteKV implements KV on the kv_store table.
type sqliteKV struct {
	drv *entsql.Driver
}

func (r *sqliteKV) Get(ctx context.Context, key string) (string, bool, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("value").
		From(b.Table(kvTable)).
		Where(entsql.EQ("key", key)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return "", false, rows.Err()
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return "", false, fmt.Errorf("scan %q: %w", key, err)
	}
	return value, true, nil
}

func (r *sqliteKV) Set(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (r *sqliteKV) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(kvTable).
		Where(entsql.EQ("key", key)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// MemoryKV is an in-process KV for tests and ephemeral runs.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
