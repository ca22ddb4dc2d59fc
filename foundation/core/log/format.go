// File: format.go
// Title: Log Output Formats
// Description: Output formats and formatters for json, text, console and
//              logfmt rendering of log entries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Formatters render fields in sorted order

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatConsole
	FormatLogfmt
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	case FormatLogfmt:
		return "logfmt"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	case "console", "pretty":
		return FormatConsole, nil
	case "logfmt":
		return FormatLogfmt, nil
	default:
		return FormatText, &ParseError{Input: format, Type: "format"}
	}
}

// Formatter renders a log entry into bytes
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatConsole:
		return &ConsoleFormatter{}
	case FormatLogfmt:
		return &LogfmtFormatter{}
	default:
		return &TextFormatter{}
	}
}

// JSONFormatter formats log entries as one JSON object per line
type JSONFormatter struct{}

// Format implements Formatter
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+5)
	for k, v := range entry.Fields {
		data[k] = v
	}
	data["timestamp"] = entry.Timestamp.Format(timeLayout)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}
	if entry.Duration > 0 {
		data["duration"] = entry.Duration.String()
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal log entry: %w", err)
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as plain single-line text
type TextFormatter struct{}

// Format implements Formatter
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(entry.Timestamp.Format(timeLayout))
	b.WriteString(" [")
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString("]")
	if entry.Logger != "" {
		b.WriteString(" " + entry.Logger + ":")
	}
	b.WriteString(" " + entry.Message)
	writeKeyValues(&b, entry, false)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// ConsoleFormatter formats log entries with colors for terminals
type ConsoleFormatter struct {
	NoColor bool
}

// Format implements Formatter
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(entry.Timestamp.Format("15:04:05.000"))
	b.WriteByte(' ')
	if f.NoColor {
		b.WriteString(entry.Level.ShortString())
	} else {
		b.WriteString(entry.Level.Color() + entry.Level.ShortString() + "\033[0m")
	}
	if entry.Logger != "" {
		b.WriteString(" [" + entry.Logger + "]")
	}
	b.WriteString(" " + entry.Message)
	writeKeyValues(&b, entry, false)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// LogfmtFormatter formats log entries as logfmt key=value pairs
type LogfmtFormatter struct{}

// Format implements Formatter
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString("ts=" + entry.Timestamp.Format(timeLayout))
	b.WriteString(" level=" + entry.Level.String())
	if entry.Logger != "" {
		b.WriteString(" logger=" + quoteValue(entry.Logger))
	}
	b.WriteString(" msg=" + quoteValue(entry.Message))
	writeKeyValues(&b, entry, true)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func writeKeyValues(b *strings.Builder, entry *Entry, quote bool) {
	for _, k := range entry.Fields.Keys() {
		b.WriteString(" " + k + "=" + formatValue(entry.Fields[k], quote))
	}
	if entry.Error != nil {
		b.WriteString(" error=" + formatValue(entry.Error.Error(), true))
	}
	if entry.Duration > 0 {
		b.WriteString(" duration=" + entry.Duration.String())
	}
}

func formatValue(v interface{}, quote bool) string {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case time.Duration:
		s = val.String()
	case error:
		s = val.Error()
	default:
		s = fmt.Sprintf("%v", val)
	}
	if quote {
		return quoteValue(s)
	}
	return s
}

func quoteValue(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
