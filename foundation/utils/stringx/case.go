// File: case.go
// Title: Naming Convention Conversions
// Description: Implements underscore, dasherize, classify, titleize,
//              capitalize, demodulize and namespace.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-17 v0.3.0: Regex based underscore with namespace handling, apostrophe aware words

package stringx

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	namespaceSeparator  = "::"
	pathSeparator       = "/"
	underscoreSeparator = "_"
	dasherizeSeparator  = "-"
	titleizeSeparator   = " "
)

var (
	acronymBoundary = regexp.MustCompile(`([A-Z\d]+)([A-Z][a-z])`)
	camelBoundary   = regexp.MustCompile(`([a-z\d])([A-Z])`)
	classifyWords   = regexp.MustCompile(`_|::|/|-`)
)

// Underscore converts a name to snake_case and module separators to slashes.
// The passes run in a fixed order: "::" to "/", acronym boundaries,
// camel boundaries, whitespace and dashes to "_", then lowercasing.
// Example: "Hanami::Utils::APIDoc" -> "hanami/utils/api_doc"
func Underscore(s string) string {
	out := strings.ReplaceAll(s, namespaceSeparator, pathSeparator)
	out = acronymBoundary.ReplaceAllString(out, "${1}_${2}")
	out = camelBoundary.ReplaceAllString(out, "${1}_${2}")
	out = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return '_'
		}
		return r
	}, out)
	return strings.ToLower(out)
}

// Dasherize is Underscore with dashes as the word separator.
// Example: "APIDoc" -> "api-doc"
func Dasherize(s string) string {
	return strings.ReplaceAll(Underscore(s), underscoreSeparator, dasherizeSeparator)
}

// Classify converts a name to a class-style name. Words separated by
// underscores, dashes or spaces are joined; path and module separators
// become "::".
// Example: "hanami/utils_view" -> "Hanami::UtilsView"
func Classify(s string) string {
	u := Underscore(s)
	words := classifyWords.Split(u, -1)
	delimiters := classifyWords.FindAllString(u, -1)

	var b strings.Builder
	b.Grow(len(u))
	for i, w := range words {
		b.WriteString(upperFirst(w))
		if i < len(delimiters) {
			if delimiters[i] == underscoreSeparator {
				continue
			}
			b.WriteString(namespaceSeparator)
		}
	}
	return b.String()
}

// Titleize capitalizes every word and joins them with spaces.
// Example: "hanami_utils" -> "Hanami Utils"
func Titleize(s string) string {
	words := strings.Split(Underscore(s), underscoreSeparator)
	for i, w := range words {
		words[i] = capitalizeWord(w)
	}
	return strings.Join(words, titleizeSeparator)
}

// Capitalize capitalizes the first word only and joins words with spaces.
// Example: "OneTwoThree" -> "One two three"
func Capitalize(s string) string {
	words := strings.Split(Underscore(s), underscoreSeparator)
	words[0] = capitalizeWord(words[0])
	return strings.Join(words, titleizeSeparator)
}

// Demodulize returns the part after the last "::".
// Example: "Hanami::Utils::String" -> "String"
func Demodulize(s string) string {
	if i := strings.LastIndex(s, namespaceSeparator); i >= 0 {
		return s[i+len(namespaceSeparator):]
	}
	return s
}

// Namespace returns the part before the first "::".
// Example: "Hanami::Utils::String" -> "Hanami"
func Namespace(s string) string {
	if i := strings.Index(s, namespaceSeparator); i >= 0 {
		return s[:i]
	}
	return s
}

// capitalizeWord raises the first rune and lowers the rest. In a word with an
// apostrophe only the runes before it are lowered.
func capitalizeWord(w string) string {
	first, size := utf8.DecodeRuneInString(w)
	if size == 0 {
		return w
	}
	rest := w[size:]
	if i := strings.IndexAny(rest, "'’`"); i >= 0 {
		return string(unicode.ToUpper(first)) + strings.ToLower(rest[:i]) + rest[i:]
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(rest)
}
