package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kenyaai/jobs-backend/internal/model"
	"github.com/kenyaai/jobs-backend/internal/storage"
)

const contactLogKey = "contact_submissions.jsonl"

// FileContactRepository stores submissions as JSON lines in an append-only log.
type FileContactRepository struct {
	log storage.AppendLog

	mu sync.Mutex
}

// NewFileContactRepository creates a FileContactRepository backed by the given log.
func NewFileContactRepository(log storage.AppendLog) *FileContactRepository {
	return &FileContactRepository{log: log}
}

var _ ContactRepository = (*FileContactRepository)(nil)

func (r *FileContactRepository) Create(ctx context.Context, draft model.ContactDraft) (*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := newID()
	if err != nil {
		return nil, err
	}
	sub := draft.Submission(id, now())

	data, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("encode contact: %w", err)
	}
	if err := r.log.Append(ctx, contactLogKey, data); err != nil {
		return nil, fmt.Errorf("append contact: %w", err)
	}
	return sub, nil
}

func (r *FileContactRepository) ListAll(ctx context.Context) ([]*model.ContactSubmission, error) {
	r.mu.Lock()
	records, err := r.log.Records(ctx, contactLogKey)
	r.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("read contacts: %w", err)
	}

	out := make([]*model.ContactSubmission, 0, len(records))
	for i, rec := range records {
		var s model.ContactSubmission
		if err := json.Unmarshal(rec, &s); err != nil {
			slog.Warn("skipping unreadable contact record", "line", i+1, "error", err)
			continue
		}
		out = append(out, &s)
	}
	return out, nil
}

func (r *FileContactRepository) Ping(ctx context.Context) error {
	if err := r.log.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
