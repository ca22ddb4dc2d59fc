// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type carrying a code, a severity, the failing
//              operation and key/value details. It satisfies the standard error
//              interface and unwraps to its cause.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-17 v0.2.0: Chain-aware HasCode/GetCode via errors.As, caller capture
//                      replaces pooled stack traces

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"
)

// MaxErrorChainDepth limits how deep Wrap keeps nesting before flattening
const MaxErrorChainDepth = 15

// Error represents a structured error with context, codes, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details   map[string]interface{}
	operation string
	caller    string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
		caller:    captureCaller(2),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	e := New(fmt.Sprintf(format, args...))
	e.caller = captureCaller(2)
	return e
}

// Wrap wraps an existing error with additional context.
// Code, severity and details of a wrapped *Error are inherited.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth := chainDepth(err); depth >= MaxErrorChainDepth {
		return &Error{
			message:   fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxErrorChainDepth, err.Error()),
			code:      GetCode(err),
			severity:  SeverityHigh,
			timestamp: time.Now(),
			details:   map[string]interface{}{"truncated": true, "original_depth": depth},
			caller:    captureCaller(2),
		}
	}

	wrapped := &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
		caller:    captureCaller(2),
	}

	var inner *Error
	if errors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		for k, v := range inner.details {
			wrapped.details[k] = v
		}
	}

	return wrapped
}

// chainDepth counts nested *Error values
func chainDepth(err error) int {
	depth := 0
	for current := err; current != nil && depth < MaxErrorChainDepth*2; {
		e, ok := current.(*Error)
		if !ok {
			break
		}
		depth++
		current = e.cause
	}
	return depth
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code. The severity follows the code unless it
// was set explicitly before.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Message returns the message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error occurred
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// Caller returns the file:line where the error was created
func (e *Error) Caller() string {
	return e.caller
}

// Detail returns a single detail value
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// RootCause returns the deepest error in the chain
func (e *Error) RootCause() error {
	var last error = e
	for current := error(e); current != nil; current = errors.Unwrap(current) {
		last = current
	}
	return last
}

// String returns a detailed multi-line representation of the error
func (e *Error) String() string {
	parts := []string{
		fmt.Sprintf("Error: %s", e.message),
		fmt.Sprintf("Code: %s", e.code),
		fmt.Sprintf("Severity: %s", e.severity),
		fmt.Sprintf("Timestamp: %s", e.timestamp.Format(time.RFC3339)),
	}

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		detailStrs := make([]string, 0, len(keys))
		for _, k := range keys {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
		"details":   e.details,
	}

	if e.operation != "" {
		data["operation"] = e.operation
	}

	if e.caller != "" {
		data["caller"] = e.caller
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	return json.Marshal(data)
}

func captureCaller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// HasCode reports whether any *Error in the chain carries the code
func HasCode(err error, code Code) bool {
	for current := err; current != nil; current = errors.Unwrap(current) {
		if e, ok := current.(*Error); ok && e.code == code {
			return true
		}
	}
	return false
}

// GetCode returns the code of the outermost *Error in the chain, or CodeUnknown
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the outermost *Error in the chain, or SeverityMedium
func GetSeverity(err error) Severity {
	var e *Error
	if errors.As(err, &e) {
		return e.severity
	}
	return SeverityMedium
}
