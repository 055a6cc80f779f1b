package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DomainError
		expected string
	}{
		{
			name:     "error without details",
			err:      NewDomainError("WH-TEST-1000", "test message"),
			expected: "[WH-TEST-1000] test message",
		},
		{
			name:     "error with details",
			err:      NewDomainError("WH-TEST-1001", "test message").WithDetails("extra info"),
			expected: "[WH-TEST-1001] test message: extra info",
		},
		{
			name:     "error with details and cause",
			err:      NewDomainError("WH-TEST-1002", "write").WithDetails("out.json").WithCause(fmt.Errorf("disk full")),
			expected: "[WH-TEST-1002] write: out.json: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	err1 := NewDomainError("WH-TEST-1000", "message 1")
	err2 := NewDomainError("WH-TEST-1000", "message 2")
	err3 := NewDomainError("WH-TEST-1001", "message 1")

	if !errors.Is(err1, err2) {
		t.Error("errors.Is should return true for same error code")
	}
	if errors.Is(err1, err3) {
		t.Error("errors.Is should return false for different error code")
	}
	if errors.Is(err1, fmt.Errorf("some error")) {
		t.Error("errors.Is should return false for non-DomainError")
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying cause")
	err := NewDomainError("WH-TEST-1000", "wrapper").WithCause(cause)

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := NewDomainError("WH-TEST-1000", "no cause")
	if errors.Unwrap(errNoCause) != nil {
		t.Error("Unwrap() should return nil when no cause")
	}
}

func TestDomainError_WithDetailsDoesNotMutate(t *testing.T) {
	original := NewDomainError("WH-TEST-1000", "original message")
	withDetails := original.WithDetailsf("id=%d", 42)

	if original.Details != "" {
		t.Error("WithDetails should not modify original error")
	}
	if withDetails.Details != "id=42" {
		t.Errorf("Details = %q, want %q", withDetails.Details, "id=42")
	}
	if withDetails.Code != original.Code || withDetails.Message != original.Message {
		t.Error("code and message should be preserved")
	}
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		err  *DomainError
		code string
	}{
		{ErrVLANOutOfRange, "WH-VLAN-4001"},
		{ErrVLANNotFound, "WH-VLAN-4040"},
		{ErrVLANExists, "WH-VLAN-4090"},
		{ErrKeyNotFound, "WH-KV-4040"},
		{ErrConfigMissingKey, "WH-CONF-4001"},
		{ErrWin16Disabled, "WH-CONF-4002"},
		{ErrExportFailed, "WH-IO-5001"},
		{ErrImportFailed, "WH-IO-5002"},
		{ErrInvalidArgument, "WH-ARG-1001"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Error code = %q, want %q", tt.err.Code, tt.code)
			}
			if tt.err.Message == "" {
				t.Error("Error message should not be empty")
			}
		})
	}
}
