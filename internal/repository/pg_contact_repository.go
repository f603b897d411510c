package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kenyaai/jobs-backend/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a new contact_submissions row. The database assigns id, seq and
// created_at, which are read back from the RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, draft model.ContactDraft) (*model.ContactSubmission, error) {
	sub := draft.Submission("", time.Time{})
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, profession, experience)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id::text, created_at`,
		draft.Name, draft.Email, draft.Profession, draft.Experience,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	sub.CreatedAt = sub.CreatedAt.UTC()
	return sub, nil
}

// ListAll returns every submission in insertion order.
func (r *PgContactRepository) ListAll(ctx context.Context) ([]*model.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id::text, name, email, profession, experience, created_at
		 FROM contact_submissions
		 ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	subs := []*model.ContactSubmission{}
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Profession, &s.Experience, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		s.CreatedAt = s.CreatedAt.UTC()
		subs = append(subs, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return subs, nil
}

func (r *PgContactRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
