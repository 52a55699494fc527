package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound    = errors.New("not found")
	ErrMissingInfo = errors.New("missing info")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NotFoundError reports that one or more referenced ids of a single kind do not exist.
// IDs keep the order (and any repetition) of the request that referenced them.
type NotFoundError struct {
	Kind EntityKind
	IDs  []int64
}

func (e *NotFoundError) Error() string {
	parts := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("Could not find %s(s) with id(s): %s", e.Kind.Label(), strings.Join(parts, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError creates a NotFoundError for the given ids.
func NewNotFoundError(kind EntityKind, ids ...int64) *NotFoundError {
	return &NotFoundError{Kind: kind, IDs: ids}
}

// EntityNotFoundError reports a failed lookup of one named entity.
type EntityNotFoundError struct {
	Kind EntityKind
	ID   int64
}

func (e *EntityNotFoundError) Error() string {
	return "ID: " + strconv.FormatInt(e.ID, 10)
}

func (e *EntityNotFoundError) Unwrap() error { return ErrNotFound }

// NewEntityNotFoundError creates an EntityNotFoundError.
func NewEntityNotFoundError(kind EntityKind, id int64) *EntityNotFoundError {
	return &EntityNotFoundError{Kind: kind, ID: id}
}

// MissingInfoError reports request fields that are absent or empty.
type MissingInfoError struct {
	Fields []string
}

func (e *MissingInfoError) Error() string {
	if len(e.Fields) == 0 {
		return "missing info"
	}
	return "missing info: " + strings.Join(e.Fields, ", ")
}

func (e *MissingInfoError) Unwrap() error { return ErrMissingInfo }

// NewMissingInfoError creates a MissingInfoError for the given fields.
func NewMissingInfoError(fields ...string) *MissingInfoError {
	return &MissingInfoError{Fields: fields}
}
