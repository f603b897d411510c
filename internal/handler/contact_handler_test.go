package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kenyaai/jobs-backend/internal/model"
	"github.com/kenyaai/jobs-backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, draft model.ContactDraft) (*model.ContactSubmission, error)
	listFunc   func(ctx context.Context) ([]*model.ContactSubmission, error)
	submits    int
}

func (m *mockContactService) Submit(ctx context.Context, draft model.ContactDraft) (*model.ContactSubmission, error) {
	m.submits++
	if m.submitFunc != nil {
		return m.submitFunc(ctx, draft)
	}
	return draft.Submission("generated-id", time.Now().UTC()), nil
}

func (m *mockContactService) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

const validContactBody = `{"name":"Jane Doe","email":"jane@example.com","profession":"software-developer","experience":"3-5"}`

func postContact(h *ContactHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured model.ContactDraft
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, draft model.ContactDraft) (*model.ContactSubmission, error) {
			captured = draft
			return draft.Submission("abc-123", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)), nil
		},
	}
	h := NewContactHandler(mock)

	rec := postContact(h, validContactBody)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body: %s", rec.Code, rec.Body.String())
	}
	if captured.Name != "Jane Doe" || captured.Email != "jane@example.com" {
		t.Errorf("unexpected draft forwarded: %+v", captured)
	}

	var resp struct {
		Success bool                    `json:"success"`
		Message string                  `json:"message"`
		Contact model.ContactSubmission `json:"contact"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Message != "Contact form submitted successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Contact.ID != "abc-123" {
		t.Errorf("expected id=abc-123, got %q", resp.Contact.ID)
	}
	if resp.Contact.Profession != "software-developer" || resp.Contact.Experience != "3-5" {
		t.Errorf("unexpected contact: %+v", resp.Contact)
	}
	if resp.Contact.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
}

// TestContactHandler_Submit_ValidationFailures verifies 400 and that the service is never called.
func TestContactHandler_Submit_ValidationFailures(t *testing.T) {
	tests := map[string]string{
		"empty name":       `{"name":"","email":"jane@example.com","profession":"x","experience":"y"}`,
		"missing email":    `{"name":"Jane","profession":"x","experience":"y"}`,
		"numeric field":    `{"name":"Jane","email":"jane@example.com","profession":1,"experience":"y"}`,
		"empty object":     `{}`,
		"array body":       `[]`,
		"invalid json":     `{bad json`,
		"empty body":       ``,
		"trailing garbage": validContactBody + ` garbage`,
		"two objects":      validContactBody + validContactBody,
		"empty experience": `{"name":"Jane","email":"jane@example.com","profession":"x","experience":""}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			mock := &mockContactService{}
			h := NewContactHandler(mock)

			rec := postContact(h, body)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if mock.submits != 0 {
				t.Errorf("expected no Submit calls, got %d", mock.submits)
			}
			var resp errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Success {
				t.Error("expected success=false")
			}
			if resp.Message != "Failed to submit contact form" {
				t.Errorf("unexpected message %q", resp.Message)
			}
			if resp.Error == "" {
				t.Error("expected error field in response body")
			}
		})
	}
}

func TestContactHandler_Submit_TrailingWhitespaceAccepted(t *testing.T) {
	mock := &mockContactService{}
	h := NewContactHandler(mock)

	rec := postContact(h, validContactBody+"\n\t ")

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d body: %s", rec.Code, rec.Body.String())
	}
}

func TestContactHandler_Submit_TrailingDataIsInvalidJSON(t *testing.T) {
	mock := &mockContactService{}
	h := NewContactHandler(mock)

	rec := postContact(h, validContactBody+` garbage`)

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if rec.Code != http.StatusBadRequest || resp.Error != "invalid JSON body" {
		t.Errorf("expected 400 invalid JSON body, got %d %q", rec.Code, resp.Error)
	}
}

func TestContactHandler_Submit_BodyTooLarge(t *testing.T) {
	mock := &mockContactService{}
	h := NewContactHandler(mock)

	body := `{"name":"` + strings.Repeat("a", maxContactBodyBytes) + `"}`
	rec := postContact(h, body)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", rec.Code)
	}
	if mock.submits != 0 {
		t.Errorf("expected no Submit calls, got %d", mock.submits)
	}
}

// TestContactHandler_Submit_ServiceError verifies that a store failure returns 500 without retry.
func TestContactHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, draft model.ContactDraft) (*model.ContactSubmission, error) {
			return nil, errors.New("db connection lost")
		},
	}
	h := NewContactHandler(mock)

	rec := postContact(h, validContactBody)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
	if mock.submits != 1 {
		t.Errorf("expected exactly 1 Submit call, got %d", mock.submits)
	}
	var resp errorResponse
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Error != repository.ErrStoreUnavailable.Error() {
		t.Errorf("expected error=%q, got %q", repository.ErrStoreUnavailable, resp.Error)
	}
	if strings.Contains(rec.Body.String(), "db connection lost") {
		t.Errorf("backend error text leaked to client: %s", rec.Body.String())
	}
}

func TestContactHandler_Submit_ContentTypeJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	rec := postContact(h, validContactBody)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %q", ct)
	}
}

// ---------------------------------------------------------------------------
// GET /api/contacts tests
// ---------------------------------------------------------------------------

func TestContactHandler_List_Success(t *testing.T) {
	now := time.Now()
	contacts := []*model.ContactSubmission{
		{ID: "1", Name: "Alice", Email: "a@b.com", Profession: "other", Experience: "0-2", CreatedAt: now},
		{ID: "2", Name: "Bob", Email: "c@d.com", Profession: "hr-professional", Experience: "10+", CreatedAt: now},
	}
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.ContactSubmission, error) {
			return contacts, nil
		},
	}
	h := NewContactHandler(mock)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body: %s", rec.Code, rec.Body.String())
	}
	var resp listResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if len(resp.Contacts) != 2 || resp.Contacts[0].ID != "1" || resp.Contacts[1].ID != "2" {
		t.Errorf("unexpected contacts: %+v", resp.Contacts)
	}
}

// TestContactHandler_List_EmptyList verifies empty list returns [] not null.
func TestContactHandler_List_EmptyList(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"contacts":[]`) {
		t.Errorf("expected empty contacts array, got %s", rec.Body.String())
	}
}

func TestContactHandler_List_ServiceError(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.ContactSubmission, error) {
			return nil, errors.New("database error")
		},
	}
	h := NewContactHandler(mock)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on service error, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.Message != "Failed to retrieve contacts" || resp.Error != repository.ErrStoreUnavailable.Error() {
		t.Errorf("unexpected error envelope: %+v", resp)
	}
}
