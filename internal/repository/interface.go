package repository

import (
	"context"

	"github.com/kenyaai/jobs-backend/internal/model"
)

// DB は バックエンドの生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository is the append-only persistence interface for contact submissions.
// Implementations assign ID and CreatedAt on Create and must never hand out the same ID twice,
// even under concurrent calls.
type ContactRepository interface {
	DB
	Create(ctx context.Context, draft model.ContactDraft) (*model.ContactSubmission, error)
	// ListAll returns every stored submission, oldest first. The result is never nil.
	ListAll(ctx context.Context) ([]*model.ContactSubmission, error)
}
