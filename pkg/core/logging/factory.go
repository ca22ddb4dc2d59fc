// ============================================================================
// textkit - Inflection and line editing toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers from settings
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	tklog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format (json, text, console, logfmt)
	Format string

	// Verbose lowers the level to debug unless it is already lower
	Verbose bool

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// Record file:line of the caller
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "console",
	}
}

// FromSettings builds a logger configuration from the [log] settings
func FromSettings(name string, settings config.LogConfig) LoggerConfig {
	cfg := DefaultLoggerConfig(name)
	if settings.Level != "" {
		cfg.Level = settings.Level
	}
	if settings.Format != "" {
		cfg.Format = settings.Format
	}
	return cfg
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *tklog.Logger {
	level := parseLevel(cfg.Level)
	if cfg.Verbose && level > tklog.LevelDebug {
		level = tklog.LevelDebug
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	format := parseFormat(cfg.Format)
	var formatter tklog.Formatter
	if format == tklog.FormatConsole {
		formatter = &tklog.ConsoleFormatter{NoColor: !isTerminal(output)}
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return tklog.NewWithConfig(tklog.Config{
		Level:        level,
		Format:       format,
		Formatter:    formatter,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
}

// NewSimpleLogger creates a console logger at info level
func NewSimpleLogger(name string) *tklog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// Fields converts alternating key-value pairs to log fields. Non-string
// keys and a trailing key without value are dropped.
func Fields(keysAndValues ...interface{}) tklog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(tklog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

// parseLevel converts a string level, falling back to info
func parseLevel(level string) tklog.Level {
	parsed, err := tklog.ParseLevel(level)
	if err != nil {
		return tklog.LevelInfo
	}
	return parsed
}

// parseFormat converts a string format, falling back to console
func parseFormat(format string) tklog.Format {
	parsed, err := tklog.ParseFormat(format)
	if err != nil {
		return tklog.FormatConsole
	}
	return parsed
}

// isTerminal reports whether w is a terminal file descriptor
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
