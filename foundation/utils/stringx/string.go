// File: string.go
// Title: Inflectable String Type
// Description: String is a plain string with the inflector operations as
//              methods. Values convert freely to and from string.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.3.0: Initial implementation

package stringx

import "regexp"

// String is a string with inflection methods. Each method returns a new
// value; comparison and map keys behave exactly as for string.
type String string

// String returns the underlying string.
func (s String) String() string { return string(s) }

// Classify returns the class-style name, see Classify.
func (s String) Classify() String { return String(Classify(string(s))) }

// Underscore returns the snake_case form, see Underscore.
func (s String) Underscore() String { return String(Underscore(string(s))) }

// Dasherize returns the dash-case form, see Dasherize.
func (s String) Dasherize() String { return String(Dasherize(string(s))) }

// Demodulize returns the part after the last "::".
func (s String) Demodulize() String { return String(Demodulize(string(s))) }

// Namespace returns the part before the first "::".
func (s String) Namespace() String { return String(Namespace(string(s))) }

// Titleize returns the title form, see Titleize.
func (s String) Titleize() String { return String(Titleize(string(s))) }

// Capitalize returns the sentence form, see Capitalize.
func (s String) Capitalize() String { return String(Capitalize(string(s))) }

// Pluralize returns the plural form using the default inflector.
func (s String) Pluralize() String { return String(Pluralize(string(s))) }

// Singularize returns the singular form using the default inflector.
func (s String) Singularize() String { return String(Singularize(string(s))) }

// RSub replaces the rightmost occurrence of pattern.
func (s String) RSub(pattern, replacement string) String {
	return String(RSub(string(s), pattern, replacement))
}

// RSubPattern replaces the rightmost match of re.
func (s String) RSubPattern(re *regexp.Regexp, replacement string) String {
	return String(RSubPattern(string(s), re, replacement))
}

// Tokenize calls visit for every variant of the parenthesized group.
func (s String) Tokenize(visit func(String)) {
	if visit == nil {
		return
	}
	Tokenize(string(s), func(v string) { visit(String(v)) })
}

// Transform runs a pipeline over s using the default inflector.
func (s String) Transform(steps ...Step) (String, error) {
	out, err := Transform(string(s), steps...)
	if err != nil {
		return s, err
	}
	return String(out), nil
}
