package validation

import (
	"sort"
	"strings"
)

// Error carries every problem found in one request. FieldErrors is keyed by the JSON field name;
// FormErrors holds messages about the payload as a whole.
type Error struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

func newError() *Error {
	return &Error{FormErrors: []string{}, FieldErrors: map[string][]string{}}
}

// FormError builds an Error with a single payload-level message
func FormError(msg string) *Error {
	e := newError()
	e.FormErrors = append(e.FormErrors, msg)
	return e
}

// FieldError builds an Error with a single field message
func FieldError(field, msg string) *Error {
	e := newError()
	e.add(field, msg)
	return e
}

func (e *Error) add(field, msg string) {
	e.FieldErrors[field] = append(e.FieldErrors[field], msg)
}

func (e *Error) empty() bool {
	return len(e.FormErrors) == 0 && len(e.FieldErrors) == 0
}

func (e *Error) Error() string {
	parts := append([]string(nil), e.FormErrors...)
	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.FieldErrors[f], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
