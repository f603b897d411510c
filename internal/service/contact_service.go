package service

import (
	"context"

	"github.com/kenyaai/jobs-backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit persists a validated draft and returns the stored submission with
	// its assigned ID and CreatedAt.
	Submit(ctx context.Context, draft model.ContactDraft) (*model.ContactSubmission, error)

	// List returns every stored submission, oldest first.
	List(ctx context.Context) ([]*model.ContactSubmission, error)
}
