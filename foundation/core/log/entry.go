// File: entry.go
// Title: Log Entry Structure
// Description: Entry and Fields types plus typed field constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Fields keep insertion-independent sorted output

package log

import (
	"sort"
	"time"
)

// Entry represents a single log entry
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
	Duration  time.Duration
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field
func Err(err error) Fields {
	if err == nil {
		return Fields{}
	}
	return Fields{"error": err.Error()}
}

// String creates a string field
func String(key, value string) Fields {
	return Fields{key: value}
}

// Int creates an integer field
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Bool creates a boolean field
func Bool(key string, value bool) Fields {
	return Fields{key: value}
}

// Duration creates a duration field
func Duration(key string, value time.Duration) Fields {
	return Fields{key: value.String()}
}

// Merge returns a new Fields containing f overlaid with other
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewEntry creates a new log entry
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
