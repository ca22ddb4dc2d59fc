// File: text_test.go
// Title: Substitution and Tokenization Tests
// Description: Tests for RSub, RSubPattern and Tokenize.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-17
// Modified: 2026-10-17

package stringx

import (
	"reflect"
	"regexp"
	"testing"
)

func TestRSub(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		pattern     string
		replacement string
		expected    string
	}{
		{"rightmost only", "authors/books/index", "/", "#", "authors/books#index"},
		{"no match", "index", "/", "#", "index"},
		{"repeated runs", "aaa", "a", "b", "aab"},
		{"multi-byte pattern", "a::b::c", "::", "/", "a::b/c"},
		{"empty pattern", "index", "", "#", "index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RSub(tt.input, tt.pattern, tt.replacement); got != tt.expected {
				t.Errorf("RSub(%q, %q, %q) = %q; want %q", tt.input, tt.pattern, tt.replacement, got, tt.expected)
			}
		})
	}
}

func TestRSubPattern(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		pattern     string
		replacement string
		expected    string
	}{
		{"literal class", "foo boo", `o`, "0", "foo bo0"},
		{"group reference", "a/b/c", `(\w+)/`, "${1}#", "a/b#c"},
		{"no match", "index", `/`, "#", "index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			if got := RSubPattern(tt.input, re, tt.replacement); got != tt.expected {
				t.Errorf("RSubPattern(%q, %s, %q) = %q; want %q", tt.input, tt.pattern, tt.replacement, got, tt.expected)
			}
		})
	}

	if got := RSubPattern("abc", nil, "x"); got != "abc" {
		t.Errorf("nil pattern changed input: %q", got)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Lotus::(Utils|App)", []string{"Lotus::Utils", "Lotus::App"}},
		{"Lotus", []string{"Lotus"}},
		{"Hanami::(Utils|App)::Model", []string{"Hanami::Utils::Model", "Hanami::App::Model"}},
		{"Lotus::(Single)", []string{"Lotus::Single"}},
		{"Lotus::()", nil},
		{"a(b|)c", []string{"abc"}},
		{"a(b||)c", []string{"abc"}},
		{"a(|b)c", []string{"ac", "abc"}},
		{"a(b||c)d", []string{"abd", "ad", "acd"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var visited []string
			Tokenize(tt.input, func(s string) { visited = append(visited, s) })
			if !reflect.DeepEqual(visited, tt.expected) {
				t.Errorf("Tokenize(%q) visited %q; want %q", tt.input, visited, tt.expected)
			}
			if got := Tokens(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokens(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}
