// Package domain defines the core domain models for WhiteHole.
package domain

import (
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
// Codes have the form WH-<AREA>-<NNNN>; the numeric part mirrors an HTTP-like
// status class (4xxx caller errors, 5xxx I/O errors, 1xxx argument errors).
type DomainError struct {
	Code    string // Error code (e.g., "WH-VLAN-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithDetailsf is WithDetails with fmt.Sprintf formatting.
func (e *DomainError) WithDetailsf(format string, args ...any) *DomainError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// ============================================================================
// VLAN Errors (VLAN)
// ============================================================================

var (
	// ErrVLANOutOfRange indicates the VLAN ID is outside [1, max].
	ErrVLANOutOfRange = NewDomainError("WH-VLAN-4001", "vlan id out of range")

	// ErrVLANNotFound indicates the requested VLAN does not exist.
	ErrVLANNotFound = NewDomainError("WH-VLAN-4040", "vlan not found")

	// ErrVLANExists indicates a VLAN with the same ID is already registered.
	ErrVLANExists = NewDomainError("WH-VLAN-4090", "vlan already exists")
)

// ============================================================================
// Key/Value Errors (KV)
// ============================================================================

var (
	// ErrKeyNotFound indicates no value is stored under the key.
	ErrKeyNotFound = NewDomainError("WH-KV-4040", "key not found")
)

// ============================================================================
// Configuration Errors (CONF)
// ============================================================================

var (
	// ErrConfigMissingKey indicates a required configuration key is absent.
	ErrConfigMissingKey = NewDomainError("WH-CONF-4001", "missing required configuration key")

	// ErrWin16Disabled indicates windows_16_support.enabled is not true.
	ErrWin16Disabled = NewDomainError("WH-CONF-4002", "windows 16 support is not enabled")
)

// ============================================================================
// I/O Errors (IO)
// ============================================================================

var (
	// ErrExportFailed indicates the registry could not be written to a file.
	ErrExportFailed = NewDomainError("WH-IO-5001", "export configuration failed")

	// ErrImportFailed indicates an export file could not be read or parsed.
	ErrImportFailed = NewDomainError("WH-IO-5002", "import configuration failed")
)

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("WH-ARG-1001", "invalid argument")
)
