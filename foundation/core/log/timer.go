// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation takes and logs the result
//              through the owning logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-17 v0.2.0: Removed checkpoints, Stop is idempotent

package log

import (
	"time"
)

// Timer represents a timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the duration. Only the first call logs.
func (t *Timer) Stop() time.Duration {
	d := t.Elapsed()
	if t.stopped {
		return d
	}
	t.stopped = true
	t.logger.logDuration(t.level, t.operation+" completed", nil, d, t.fields, String("operation", t.operation))
	return d
}

// StopWithError stops the timer and logs the duration together with err.
// A nil err behaves like Stop.
func (t *Timer) StopWithError(err error) time.Duration {
	d := t.Elapsed()
	if t.stopped {
		return d
	}
	t.stopped = true
	if err == nil {
		t.logger.logDuration(t.level, t.operation+" completed", nil, d, t.fields, String("operation", t.operation))
		return d
	}
	t.logger.logDuration(LevelError, t.operation+" failed", err, d, t.fields, String("operation", t.operation))
	return d
}

// IsRunning reports whether the timer has not been stopped yet
func (t *Timer) IsRunning() bool {
	return !t.stopped
}
