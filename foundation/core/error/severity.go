// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick a log level when an error is reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2026-10-17 v0.2.0: Severity mapping for the textkit codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers caller mistakes such as a missing target line
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a specific code
	SeverityMedium

	// SeverityHigh covers I/O failures and broken configuration
	SeverityHigh

	// SeverityCritical covers internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIO, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeUnknownOperation, CodeArityMismatch,
		CodeFileNotFound, CodeTargetNotFound, CodeValidationFailed:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
