package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds shared by every gateway and use case. Controllers translate
// them into HTTP statuses with errors.Is.
var (
	// ErrNotFound indicates that a referenced entity id does not exist.
	ErrNotFound = errors.New("entity not found")
	// ErrConstraintViolation indicates a broken uniqueness or foreign-key rule,
	// surfaced by the database at commit time.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrValidationFailed indicates a field-level rule broken before any
	// persistence attempt.
	ErrValidationFailed = errors.New("validation failed")
	// ErrUnauthorized indicates the acting principal lacks the required role.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrCsrfRejected indicates a token mismatch on a delete request. It never
	// reaches the caller as a hard error: use cases swallow it into a no-op.
	ErrCsrfRejected = errors.New("csrf token rejected")
)

// ValidationError carries per-field messages so callers can re-present the
// input for correction without losing already-valid fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(err, ErrValidationFailed) hold for every ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
