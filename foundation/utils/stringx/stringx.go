// File: stringx.go
// Title: Core String Utility Functions
// Description: Small Unicode-aware helpers used by the inflector and the
//              native pipeline operations.
// Author: msto63
// Version: v0.3.1
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-17 v0.3.0: Added SwapCase and Squish, removed interning and padding
// - 2026-10-17 v0.3.1: Removed IsEmpty and IsNotBlank

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate truncates a string to maxLen runes, adding ellipsis if truncated.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// Reverse reverses a string while preserving multi-byte characters.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// SwapCase inverts the case of every letter.
// Example: "Hello World" -> "hELLO wORLD"
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}

// Squish trims the string and collapses inner whitespace runs to one space.
// Example: "  foo \n\t bar  " -> "foo bar"
func Squish(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// upperFirst uppercases the first rune and leaves the rest untouched.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// isLetters reports whether s is non-empty and consists of letters only.
func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
