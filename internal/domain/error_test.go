package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"domain error", &Error{Code: EINVALID, Message: "bad input"}, EINVALID},
		{"wrapped domain error", fmt.Errorf("handler: %w", &Error{Code: ENOTFOUND}), ENOTFOUND},
		{"plain error", errors.New("boom"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"validation error", &Error{Code: EINVALID, Message: "Please select a product variant first"}, "Please select a product variant first"},
		{"internal hides details", Internal(errors.New("pq: connection refused"), "cart.save", "failed to persist cart"), "Something went wrong. Please try again later."},
		{"plain error hides details", errors.New("pq: connection refused"), "Something went wrong. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.expected {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	base := errors.New("io timeout")

	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{"message only", &Error{Message: "product not found"}, "product not found"},
		{"op and message", &Error{Op: "catalog.get", Message: "product not found"}, "catalog.get: product not found"},
		{"wrapped", &Error{Op: "cart.save", Message: "failed to persist cart", Err: base}, "cart.save: failed to persist cart: io timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	base := errors.New("io timeout")
	err := Internal(base, "cart.save", "failed to persist cart")

	if !errors.Is(err, base) {
		t.Error("wrapped error lost through Unwrap")
	}
	if !IsCode(err, EINTERNAL) {
		t.Error("IsCode missed the internal code")
	}
}
