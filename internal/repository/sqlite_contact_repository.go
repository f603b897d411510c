package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kenyaai/jobs-backend/internal/model"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS contact_submissions (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	profession TEXT NOT NULL,
	experience TEXT NOT NULL,
	created_at TEXT NOT NULL
)`

// SqliteContactRepository is the SQLite implementation of ContactRepository.
type SqliteContactRepository struct {
	db *sql.DB
}

// OpenSqliteContactRepository opens (or creates) the database at path and ensures the schema exists.
func OpenSqliteContactRepository(ctx context.Context, path string) (*SqliteContactRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// A single connection serialises writers and avoids SQLITE_BUSY under concurrent creates.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}
	return &SqliteContactRepository{db: db}, nil
}

var _ ContactRepository = (*SqliteContactRepository)(nil)

func (r *SqliteContactRepository) Create(ctx context.Context, draft model.ContactDraft) (*model.ContactSubmission, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	sub := draft.Submission(id, now())

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (id, name, email, profession, experience, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Email, sub.Profession, sub.Experience, sub.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return sub, nil
}

func (r *SqliteContactRepository) ListAll(ctx context.Context) ([]*model.ContactSubmission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, profession, experience, created_at
		 FROM contact_submissions
		 ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	subs := []*model.ContactSubmission{}
	for rows.Next() {
		var s model.ContactSubmission
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Profession, &s.Experience, &createdAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at for %s: %w", s.ID, err)
		}
		subs = append(subs, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return subs, nil
}

func (r *SqliteContactRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (r *SqliteContactRepository) Close() error {
	return r.db.Close()
}
