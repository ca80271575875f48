package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"validation", ErrValidation},
		{"not found", ErrNotFound},
		{"invalid transition", ErrInvalidTransition},
		{"version conflict", ErrVersionConflict},
		{"invalid confirmation", ErrInvalidConfirmation},
		{"missing confirmation", ErrMissingConfirmation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("op: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match %v", tc.err)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	all := []error{ErrValidation, ErrNotFound, ErrInvalidTransition, ErrVersionConflict, ErrInvalidConfirmation, ErrMissingConfirmation}
	for i, a := range all {
		for j, b := range all {
			if i != j && stdErrors.Is(a, b) {
				t.Fatalf("expected %v and %v to be distinct", a, b)
			}
		}
	}
}
