// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: leveled structured output with
//              immutable With* clones and integration with the textkit
//              error package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-17 v0.2.0: Synchronous writes only, NewNop, caller as a field

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	contextFields Fields
	enableCaller  bool

	// mu guards writes to output; clones share it with their parent.
	mu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level        Level
	Format       Format
	Formatter    Formatter // overrides Format when set
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// New creates a new logger with default configuration
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatText})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	formatter := config.Formatter
	if formatter == nil {
		formatter = GetFormatter(config.Format)
	}
	return &Logger{
		level:         config.Level,
		formatter:     formatter,
		output:        output,
		name:          config.Name,
		contextFields: make(Fields),
		enableCaller:  config.EnableCaller,
		mu:            &sync.Mutex{},
	}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return NewWithConfig(Config{Level: LevelFatal + 1, Output: io.Discard})
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat returns a new logger with the specified format
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.formatter = GetFormatter(format)
	return c
}

// WithFormatter returns a new logger using a custom formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	c := l.clone()
	c.formatter = formatter
	return c
}

// WithOutput returns a new logger writing to output
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	c.mu = &sync.Mutex{}
	return c
}

// WithName returns a new logger with the specified name. Names nest with a dot.
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	if l.name != "" {
		c.name = l.name + "." + name
	} else {
		c.name = name
	}
	return c
}

// WithField returns a new logger with an additional context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.contextFields[key] = value
	return c
}

// WithFields returns a new logger with additional context fields
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.contextFields[k] = v
	}
	return c
}

// WithCaller returns a new logger that records the calling file and line
func (l *Logger) WithCaller() *Logger {
	c := l.clone()
	c.enableCaller = true
	return c
}

// Trace logs a trace message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a fatal message. It does not exit the process.
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
}

// ErrorWithErr logs an error message with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs an error. Errors from the textkit error package are logged
// with their code, operation and details at a level derived from severity.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var tkErr *tkerror.Error
	if !errors.As(err, &tkErr) {
		l.log(LevelError, err.Error(), nil)
		return
	}

	fields := Fields{
		"error_code":     tkErr.Code().String(),
		"error_severity": tkErr.Severity().String(),
	}
	if op := tkErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range tkErr.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch tkErr.Severity() {
	case tkerror.SeverityLow:
		level = LevelInfo
	case tkerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, err.Error(), nil, fields)
}

// StartTimer starts a timer for measuring operation duration
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled reports whether messages at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// GetLevel returns the logger's minimum level
func (l *Logger) GetLevel() Level {
	return l.level
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.write(level, message, err, 0, fields...)
}

func (l *Logger) logDuration(level Level, message string, err error, d time.Duration, fields ...Fields) {
	l.write(level, message, err, d, fields...)
}

// write must be called through exactly one helper so the caller skip is stable.
func (l *Logger) write(level Level, message string, err error, d time.Duration, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}
	if l.enableCaller {
		if caller, ok := callerLocation(4); ok {
			entry.Fields["caller"] = caller
		}
	}
	entry.Duration = d

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.output.Write(formatted)
}

func callerLocation(skip int) (string, bool) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", false
	}
	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}
	return fmt.Sprintf("%s:%d", file, line), true
}

func (l *Logger) clone() *Logger {
	fields := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		fields[k] = v
	}
	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: fields,
		enableCaller:  l.enableCaller,
		mu:            l.mu,
	}
}

var (
	defaultLogger = New()
	defaultMu     sync.RWMutex
)

// GetDefault returns the package-level default logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level default logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Debug logs a debug message on the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().log(LevelDebug, message, nil, fields...)
}

// Info logs an info message on the default logger
func Info(message string, fields ...Fields) {
	GetDefault().log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning on the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().log(LevelWarn, message, nil, fields...)
}

// Error logs an error message on the default logger
func Error(message string, fields ...Fields) {
	GetDefault().log(LevelError, message, nil, fields...)
}
