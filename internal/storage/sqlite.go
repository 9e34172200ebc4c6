package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"clearday.dev/clearday/internal/logger"
)

// SQLiteBackend stores keys in a single kv table. Every write bumps a
// per-row revision so external changes can be detected by polling.
type SQLiteBackend struct {
	path string
	db   *sql.DB
}

func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			rev   INTEGER NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &SQLiteBackend{path: path, db: db}, nil
}

func (b *SQLiteBackend) Read(key string) ([]byte, error) {
	var data []byte
	err := b.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (b *SQLiteBackend) Write(key string, data []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO kv (key, value, rev)
		VALUES (?, ?, COALESCE((SELECT MAX(rev) FROM kv), 0) + 1)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			rev   = excluded.rev`, key, data)
	return err
}

func (b *SQLiteBackend) Erase(key string) error {
	_, err := b.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

func (b *SQLiteBackend) Keys() ([]string, error) {
	rows, err := b.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// Watch polls row revisions and emits keys whose revision changed or that
// disappeared. Polling is coarse but keeps the backend free of triggers and
// works across processes.
func (b *SQLiteBackend) Watch(ctx context.Context) (<-chan string, error) {
	events := make(chan string, 16)

	go func() {
		defer close(events)

		seen, err := b.revisions()
		if err != nil {
			logger.Warn("Store watcher initial scan failed", "error", err)
			seen = map[string]int64{}
		}

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				current, err := b.revisions()
				if err != nil {
					logger.Warn("Store watcher poll failed", "error", err)
					continue
				}
				for key, rev := range current {
					if prev, ok := seen[key]; !ok || prev != rev {
						select {
						case events <- key:
						case <-ctx.Done():
							return
						}
					}
				}
				for key := range seen {
					if _, ok := current[key]; !ok {
						select {
						case events <- key:
						case <-ctx.Done():
							return
						}
					}
				}
				seen = current
			}
		}
	}()

	return events, nil
}

func (b *SQLiteBackend) revisions() (map[string]int64, error) {
	rows, err := b.db.Query("SELECT key, rev FROM kv")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revs := make(map[string]int64)
	for rows.Next() {
		var key string
		var rev int64
		if err := rows.Scan(&key, &rev); err != nil {
			return nil, err
		}
		revs[key] = rev
	}
	return revs, rows.Err()
}
