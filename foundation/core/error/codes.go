// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across textkit so callers can
//              classify failures without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Added transform and line editing codes, dropped service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeIO           Code = "IO_ERROR"

	// Transformation pipeline
	CodeUnknownOperation Code = "UNKNOWN_OPERATION"
	CodeArityMismatch    Code = "ARITY_MISMATCH"

	// File editing
	CodeFileNotFound   Code = "FILE_NOT_FOUND"
	CodeTargetNotFound Code = "TARGET_NOT_FOUND"

	// Configuration
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeIO,
		CodeUnknownOperation, CodeArityMismatch,
		CodeFileNotFound, CodeTargetNotFound,
		CodeConfigError, CodeInvalidConfig, CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnknownOperation, CodeArityMismatch:
		return "transform"
	case CodeFileNotFound, CodeTargetNotFound, CodeIO:
		return "file"
	case CodeConfigError, CodeInvalidConfig, CodeValidationFailed:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for command line use.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeUnknownOperation, CodeArityMismatch, CodeValidationFailed:
		return 2
	case CodeFileNotFound, CodeTargetNotFound:
		return 3
	case CodeConfigError, CodeInvalidConfig:
		return 4
	default:
		return 1
	}
}
