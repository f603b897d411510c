package model

import "time"

// ContactSubmission represents a free-trial request submitted via the landing page contact form.
// Submissions are append-only: once stored they are never updated or deleted.
type ContactSubmission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Profession string    `json:"profession"` // e.g. "software-developer", stored as-is
	Experience string    `json:"experience"` // e.g. "3-5", stored as-is
	CreatedAt  time.Time `json:"createdAt"`
}

// ContactDraft is a validated submission that has not been persisted yet.
type ContactDraft struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Profession string `json:"profession" validate:"required"`
	Experience string `json:"experience" validate:"required"`
}

// Submission builds the stored record for the draft with the given id and creation time.
func (d ContactDraft) Submission(id string, createdAt time.Time) *ContactSubmission {
	return &ContactSubmission{
		ID:         id,
		Name:       d.Name,
		Email:      d.Email,
		Profession: d.Profession,
		Experience: d.Experience,
		CreatedAt:  createdAt,
	}
}
