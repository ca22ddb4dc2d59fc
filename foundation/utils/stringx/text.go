// File: text.go
// Title: Substitution and Tokenization
// Description: Rightmost substitution and parenthesized alternative expansion.
// Author: msto63
// Version: v0.3.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.3.0: Initial implementation
// - 2026-10-17 v0.3.1: Tokenize drops trailing empty alternatives

package stringx

import (
	"regexp"
	"strings"
)

var tokenGroup = regexp.MustCompile(`\((.*)\)`)

// RSub replaces the rightmost occurrence of pattern with replacement.
// The input is returned unchanged when pattern is empty or absent.
// Example: RSub("authors/books/index", "/", "#") -> "authors/books#index"
func RSub(s, pattern, replacement string) string {
	if pattern == "" {
		return s
	}
	i := strings.LastIndex(s, pattern)
	if i < 0 {
		return s
	}
	return s[:i] + replacement + s[i+len(pattern):]
}

// RSubPattern replaces the last of the non-overlapping matches of re, scanned
// from left to right. Replacement may reference groups as $1 or ${name}.
func RSubPattern(s string, re *regexp.Regexp, replacement string) string {
	if re == nil {
		return s
	}
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}
	last := matches[len(matches)-1]
	expanded := re.ExpandString(nil, replacement, s, last)
	return s[:last[0]] + string(expanded) + s[last[1]:]
}

// Tokenize expands the parenthesized group of s and calls visit once per
// alternative with the text around the group kept in place. The group spans
// from the first "(" to the last ")". Trailing empty alternatives are
// dropped, so "a(b|)c" visits only "abc" and "a()c" visits nothing. Without
// a group visit is called once with s.
// Example: "Lotus::(Utils|App)" visits "Lotus::Utils" then "Lotus::App".
func Tokenize(s string, visit func(string)) {
	if visit == nil {
		return
	}
	m := tokenGroup.FindStringSubmatchIndex(s)
	if m == nil {
		visit(s)
		return
	}
	prefix, suffix := s[:m[0]], s[m[1]:]
	alts := strings.Split(s[m[2]:m[3]], "|")
	for len(alts) > 0 && alts[len(alts)-1] == "" {
		alts = alts[:len(alts)-1]
	}
	for _, alt := range alts {
		visit(prefix + alt + suffix)
	}
}

// Tokens collects the variants Tokenize would visit.
func Tokens(s string) []string {
	var out []string
	Tokenize(s, func(v string) { out = append(out, v) })
	return out
}
