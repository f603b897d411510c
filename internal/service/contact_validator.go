package service

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kenyaai/jobs-backend/internal/model"
)

// contactFields lists the required payload keys in reporting order.
var contactFields = []string{"name", "email", "profession", "experience"}

var draftValidator = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldIssue describes one violated constraint of a contact payload.
type FieldIssue struct {
	Field   string `json:"field"`
	Problem string `json:"problem"`
}

// ValidationError is returned by ParseContactDraft when the payload does not
// describe a complete contact submission.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.Field+": "+is.Problem)
	}
	return "invalid contact submission: " + strings.Join(parts, "; ")
}

// ParseContactDraft turns an untrusted decoded JSON payload into a ContactDraft.
// All four fields must be present, strings, and non-empty. Unknown keys are ignored;
// email format and the profession/experience picklists are not checked.
func ParseContactDraft(payload any) (model.ContactDraft, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return model.ContactDraft{}, &ValidationError{
			Issues: []FieldIssue{{Field: "payload", Problem: "expected object"}},
		}
	}

	var issues []FieldIssue
	values := make(map[string]string, len(contactFields))
	for _, f := range contactFields {
		raw, present := obj[f]
		if !present {
			issues = append(issues, FieldIssue{Field: f, Problem: "required"})
			continue
		}
		s, ok := raw.(string)
		if !ok {
			issues = append(issues, FieldIssue{Field: f, Problem: "expected string"})
			continue
		}
		values[f] = s
	}

	draft := model.ContactDraft{
		Name:       values["name"],
		Email:      values["email"],
		Profession: values["profession"],
		Experience: values["experience"],
	}

	if err := draftValidator.Struct(draft); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return model.ContactDraft{}, err
		}
		for _, fe := range fieldErrs {
			if hasIssue(issues, fe.Field()) {
				continue
			}
			issues = append(issues, FieldIssue{Field: fe.Field(), Problem: fe.Tag()})
		}
	}

	if len(issues) > 0 {
		slices.SortStableFunc(issues, func(a, b FieldIssue) int {
			return slices.Index(contactFields, a.Field) - slices.Index(contactFields, b.Field)
		})
		return model.ContactDraft{}, &ValidationError{Issues: issues}
	}
	return draft, nil
}

func hasIssue(issues []FieldIssue, field string) bool {
	for _, is := range issues {
		if is.Field == field {
			return true
		}
	}
	return false
}
