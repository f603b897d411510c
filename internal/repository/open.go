package repository

import (
	"context"
	"fmt"

	"github.com/kenyaai/jobs-backend/internal/storage"
)

// Store drivers accepted by Open.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// OpenOptions selects and configures the contact store backend.
type OpenOptions struct {
	Driver      string
	DatabaseURL string // postgres
	SqlitePath  string // sqlite
	DataDir     string // file
}

// Open builds the ContactRepository for opts.Driver. The returned close function
// releases the backend and is never nil.
func Open(ctx context.Context, opts OpenOptions) (ContactRepository, func(), error) {
	switch opts.Driver {
	case "", DriverMemory:
		return NewMemoryContactRepository(), func() {}, nil
	case DriverFile:
		repo := NewFileContactRepository(storage.NewLocalStorage(opts.DataDir))
		if err := repo.Ping(ctx); err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	case DriverPostgres:
		pool, err := NewPool(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return NewPgContactRepository(pool), pool.Close, nil
	case DriverSqlite:
		repo, err := OpenSqliteContactRepository(ctx, opts.SqlitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
