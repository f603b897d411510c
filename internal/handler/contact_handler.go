package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/kenyaai/jobs-backend/internal/model"
	"github.com/kenyaai/jobs-backend/internal/repository"
	"github.com/kenyaai/jobs-backend/internal/service"
)

const maxContactBodyBytes = 1 << 20

const (
	msgSubmitted    = "Contact form submitted successfully"
	msgSubmitFailed = "Failed to submit contact form"
	msgListFailed   = "Failed to retrieve contacts"
)

// ContactHandler handles contact form submission and listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitResponse is the JSON response for a stored submission.
type submitResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Contact *model.ContactSubmission `json:"contact"`
}

// listResponse is the JSON response for GET /api/contacts.
type listResponse struct {
	Success  bool                       `json:"success"`
	Contacts []*model.ContactSubmission `json:"contacts"`
}

// errorResponse is the failure envelope shared by both endpoints.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// decodeSingleJSON decodes exactly one JSON value; trailing data is an error.
func decodeSingleJSON(body io.Reader) (any, error) {
	dec := json.NewDecoder(body)
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
		return nil, err
	}
	return payload, nil
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

// Submit handles POST /api/contact.
// name, email, profession and experience are required non-empty strings.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	payload, err := decodeSingleJSON(http.MaxBytesReader(w, r.Body, maxContactBodyBytes))
	if err != nil {
		slog.Info("contact submission rejected", "reason", "invalid_json", "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, msgSubmitFailed, errors.New("request body too large"))
			return
		}
		writeError(w, http.StatusBadRequest, msgSubmitFailed, errors.New("invalid JSON body"))
		return
	}

	draft, err := service.ParseContactDraft(payload)
	if err != nil {
		slog.Info("contact submission rejected", "reason", "validation", "error", err)
		writeError(w, http.StatusBadRequest, msgSubmitFailed, err)
		return
	}

	contact, err := h.contactService.Submit(r.Context(), draft)
	if err != nil {
		slog.Error("contact submit failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgSubmitFailed, repository.ErrStoreUnavailable)
		return
	}

	slog.Info("contact submitted", "contact_id", contact.ID, "profession", contact.Profession)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(submitResponse{
		Success: true,
		Message: msgSubmitted,
		Contact: contact,
	})
}

// List handles GET /api/contacts. It accepts no filter or pagination parameters.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("contact list failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgListFailed, repository.ErrStoreUnavailable)
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.ContactSubmission{}
	}

	_ = json.NewEncoder(w).Encode(listResponse{Success: true, Contacts: contacts})
}
