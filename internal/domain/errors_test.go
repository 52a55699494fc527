package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("type", "unknown pet type")

	if got := err.Error(); got != "validation: type: unknown pet type" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "skills", Message: "unknown skill"},
		{Field: "daysAvailable", Message: "unknown day"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestNotFoundError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind EntityKind
		ids  []int64
		want string
	}{
		{KindPet, []int64{1000}, "Could not find pet(s) with id(s): 1000"},
		{KindPet, []int64{1000, 1001}, "Could not find pet(s) with id(s): 1000, 1001"},
		{KindEmployee, []int64{7, 3, 7}, "Could not find employee(s) with id(s): 7, 3, 7"},
		{KindCustomer, []int64{5}, "Could not find customer(s) with id(s): 5"},
	}

	for _, tt := range tests {
		err := NewNotFoundError(tt.kind, tt.ids...)
		if got := err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestNotFoundError_UnwrapsThroughWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("save schedule: %w", NewNotFoundError(KindPet, 9))

	if !errors.Is(err, ErrNotFound) {
		t.Fatal("errors.Is(err, ErrNotFound) = false")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatal("errors.As(*NotFoundError) = false")
	}
	if nf.Kind != KindPet || len(nf.IDs) != 1 || nf.IDs[0] != 9 {
		t.Fatalf("unexpected error payload: %+v", nf)
	}
}

func TestEntityNotFoundError(t *testing.T) {
	t.Parallel()

	err := NewEntityNotFoundError(KindCustomer, 42)

	if got := err.Error(); got != "ID: 42" {
		t.Fatalf("Error() = %q, want %q", got, "ID: 42")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("errors.Is(err, ErrNotFound) = false")
	}
}

func TestMissingInfoError(t *testing.T) {
	t.Parallel()

	err := NewMissingInfoError("date", "skills")

	if got := err.Error(); got != "missing info: date, skills" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(err, ErrMissingInfo) {
		t.Fatal("errors.Is(err, ErrMissingInfo) = false")
	}
	if errors.Is(err, ErrValidation) {
		t.Fatal("missing info must not match ErrValidation")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotFound, ErrMissingInfo, ErrValidation, ErrConflict}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
