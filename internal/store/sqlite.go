package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // driver: sqlite
)

const defaultSQLiteDSN = "file:shortlist.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS shortlist_collections (
	name       TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteBackend stores each collection as one row in a local SQLite file.
type SQLiteBackend struct {
	db *sql.DB
}

func NewSQLiteBackend(ctx context.Context, dsn string) (*SQLiteBackend, error) {
	if dsn == "" {
		dsn = defaultSQLiteDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var data string
	err := b.db.QueryRowContext(ctx,
		`SELECT data FROM shortlist_collections WHERE name = ?`, name,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(data), true, nil
}

func (b *SQLiteBackend) Put(ctx context.Context, name string, data []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO shortlist_collections (name, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		name, string(data),
	)
	return err
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
