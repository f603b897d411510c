package service

import (
	"context"

	"github.com/kenyaai/jobs-backend/internal/model"
	"github.com/kenyaai/jobs-backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit stores the draft. Store failures are returned unchanged and never retried.
func (s *contactServiceImpl) Submit(ctx context.Context, draft model.ContactDraft) (*model.ContactSubmission, error) {
	return s.repo.Create(ctx, draft)
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	subs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}
	return subs, nil
}
