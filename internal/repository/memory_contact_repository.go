package repository

import (
	"context"
	"sync"

	"github.com/kenyaai/jobs-backend/internal/model"
)

// MemoryContactRepository keeps submissions in process memory.
// Contents are lost on restart.
type MemoryContactRepository struct {
	mu          sync.Mutex
	submissions []*model.ContactSubmission
}

// NewMemoryContactRepository creates an empty MemoryContactRepository.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

var _ ContactRepository = (*MemoryContactRepository)(nil)

func (r *MemoryContactRepository) Create(_ context.Context, draft model.ContactDraft) (*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := newID()
	if err != nil {
		return nil, err
	}
	sub := draft.Submission(id, now())
	r.submissions = append(r.submissions, sub)

	out := *sub
	return &out, nil
}

// ListAll returns copies so callers cannot mutate stored records.
func (r *MemoryContactRepository) ListAll(_ context.Context) ([]*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.ContactSubmission, 0, len(r.submissions))
	for _, s := range r.submissions {
		c := *s
		out = append(out, &c)
	}
	return out, nil
}

func (r *MemoryContactRepository) Ping(_ context.Context) error {
	return nil
}
