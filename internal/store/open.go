package store

import (
	"context"
	"fmt"
)

type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// OpenBackend connects to the storage medium named by driver.
func OpenBackend(ctx context.Context, driver Driver, dsn string) (Backend, error) {
	switch driver {
	case DriverMemory:
		return NewMemoryBackend(), nil
	case DriverSQLite:
		return NewSQLiteBackend(ctx, dsn)
	case DriverPostgres:
		if dsn == "" {
			dsn = "postgres://localhost:5432/shortlist?sslmode=disable"
		}
		return NewPostgresBackend(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}
}
