// File: level.go
// Title: Log Level Definitions
// Description: Log levels, their string forms and parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with seven levels
// - 2026-10-17 v0.2.0: Removed the audit level

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ShortString returns a three letter representation of the log level
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	default:
		return "???"
	}
}

// Color returns the ANSI color code for the log level (for console output)
func (l Level) Color() string {
	switch l {
	case LevelTrace:
		return "\033[37m"
	case LevelDebug:
		return "\033[36m"
	case LevelInfo:
		return "\033[32m"
	case LevelWarn:
		return "\033[33m"
	case LevelError:
		return "\033[31m"
	case LevelFatal:
		return "\033[35m"
	default:
		return "\033[0m"
	}
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	default:
		return LevelInfo, &ParseError{Input: level, Type: "level"}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
