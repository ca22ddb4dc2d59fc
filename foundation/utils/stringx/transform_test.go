// File: transform_test.go
// Title: Transformation Pipeline Tests
// Description: Tests for named operations, function steps, error codes and
//              pipeline caching.
// Author: msto63
// Version: v0.3.1
// Created: 2026-10-17
// Modified: 2026-10-17

package stringx

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

type slug string

func TestTransform(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		steps    []Step
		expected string
	}{
		{"underscore then classify", "hanami/utils", []Step{Op("underscore"), Op("classify")}, "Hanami::Utils"},
		{"no steps", "hanami", nil, "hanami"},
		{"rsub literal", "authors/books/index", []Step{Op("rsub", "/", "#")}, "authors/books#index"},
		{"rsub regexp", "a1b22c", []Step{Op("rsub", regexp.MustCompile(`\d+`), "#")}, "a1b#c"},
		{"demodulize pluralize", "Admin::Category", []Step{Op("demodulize"), Op("underscore"), Op("pluralize")}, "categories"},
		{"namespace downcase", "Hanami::Utils", []Step{Op("namespace"), Op("downcase")}, "hanami"},
		{"titleize", "hanami_utils", []Step{Op("titleize")}, "Hanami Utils"},
		{"capitalize", "OneTwo", []Step{Op("capitalize")}, "One two"},
		{"dasherize upcase", "HanamiView", []Step{Op("dasherize"), Op("upcase")}, "HANAMI-VIEW"},
		{"singularize", "people", []Step{Op("singularize")}, "person"},
		{"strip family", "  x  ", []Step{Op("lstrip"), Op("append", "|")}, "x  |"},
		{"rstrip", "  x  ", []Step{Op("rstrip"), Op("prepend", "|")}, "|  x"},
		{"strip", " \tx\n", []Step{Op("strip")}, "x"},
		{"reverse swapcase", "Abc", []Step{Op("reverse"), Op("swapcase")}, "CBa"},
		{"squish", " a \n b ", []Step{Op("squish")}, "a b"},
		{"sub literal", "a-b-c", []Step{Op("sub", "-", "_")}, "a_b-c"},
		{"gsub literal", "a-b-c", []Step{Op("gsub", "-", "_")}, "a_b_c"},
		{"sub regexp", "a-b-c", []Step{Op("sub", regexp.MustCompile(`(\w)-`), "${1}+")}, "a+b-c"},
		{"gsub regexp", "a-b-c", []Step{Op("gsub", regexp.MustCompile(`-`), "")}, "abc"},
		{"String arguments", "books", []Step{Op("append", String("_controller"))}, "books_controller"},
		{"function step", "hanami", []Step{Func(strings.ToUpper)}, "HANAMI"},
		{"String function step", "hanami", []Step{FuncOf(func(s String) String { return s.Classify() + "!" })}, "Hanami!"},
		{"reflected function step", "Books Index", []Step{FuncOf(func(s slug) slug { return slug(Dasherize(string(s))) })}, "books-index"},
		{"mixed", "Hanami::View", []Step{Op("underscore"), FuncOf(strings.ToUpper), Op("rsub", "/", "::")}, "HANAMI::VIEW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform(tt.input, tt.steps...)
			if err != nil {
				t.Fatalf("Transform(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Transform(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTransformErrors(t *testing.T) {
	tests := []struct {
		name     string
		steps    []Step
		wantCode tkerror.Code
		wantStep string
	}{
		{"unknown operation", []Step{Op("underscore"), Op("explode")}, tkerror.CodeUnknownOperation, "explode"},
		{"missing argument", []Step{Op("rsub", "/")}, tkerror.CodeArityMismatch, "rsub"},
		{"extra argument", []Step{Op("upcase", "x")}, tkerror.CodeArityMismatch, "upcase"},
		{"non string argument", []Step{Op("append", 5)}, tkerror.CodeInvalidInput, "append"},
		{"binary function", []Step{FuncOf(func(a, b string) string { return a + b })}, tkerror.CodeArityMismatch, ""},
		{"nullary function", []Step{FuncOf(func() string { return "" })}, tkerror.CodeArityMismatch, ""},
		{"variadic function", []Step{FuncOf(func(s ...string) string { return "" })}, tkerror.CodeArityMismatch, ""},
		{"not a function", []Step{FuncOf(42)}, tkerror.CodeInvalidInput, ""},
		{"nil value", []Step{FuncOf(nil)}, tkerror.CodeInvalidInput, ""},
		{"non string function", []Step{FuncOf(func(i int) int { return i })}, tkerror.CodeInvalidInput, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform("hanami", tt.steps...)
			if err == nil {
				t.Fatalf("Transform() = %q; want error", got)
			}
			if !tkerror.HasCode(err, tt.wantCode) {
				t.Errorf("error code = %s; want %s (%v)", tkerror.GetCode(err), tt.wantCode, err)
			}
			if tt.wantStep == "" {
				return
			}
			var tkErr *tkerror.Error
			if !errors.As(err, &tkErr) {
				t.Fatalf("error is not a *tkerror.Error: %T", err)
			}
			if step, _ := tkErr.Detail("step"); step != tt.wantStep {
				t.Errorf("step detail = %v; want %s", step, tt.wantStep)
			}
		})
	}
}

func TestTransformUnknownOperationNamesInput(t *testing.T) {
	_, err := Transform("hanami/utils", Op("frobnicate"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `"frobnicate"`) || !strings.Contains(err.Error(), `"hanami/utils"`) {
		t.Errorf("error should name step and input: %v", err)
	}
	var tkErr *tkerror.Error
	if errors.As(err, &tkErr) {
		if input, _ := tkErr.Detail("input"); input != "hanami/utils" {
			t.Errorf("input detail = %v", input)
		}
	}
}

func cachedPipelines(in *Inflector) []string {
	var keys []string
	in.pipelines.Range(func(key, _ interface{}) bool {
		keys = append(keys, key.(string))
		return true
	})
	return keys
}

func TestTransformCachesNamedPipelines(t *testing.T) {
	in := NewInflector()
	steps := []Step{Op("underscore"), Op("pluralize"), Op("upcase")}

	for _, input := range []string{"Hanami::Utils", "Admin::Books::Index"} {
		if _, err := in.Transform(input, steps...); err != nil {
			t.Fatalf("Transform() error = %v", err)
		}
	}

	keys := cachedPipelines(in)
	if len(keys) != 1 || keys[0] != "underscore|pluralize|upcase" {
		t.Errorf("cached pipelines = %v; want [underscore|pluralize|upcase]", keys)
	}

	if _, err := in.Transform("x", Func(strings.ToUpper)); err != nil {
		t.Fatal(err)
	}
	if _, err := in.Transform("x", Op("nope")); err == nil {
		t.Fatal("expected error")
	}
	if keys := cachedPipelines(in); len(keys) != 1 {
		t.Errorf("function and failing pipelines must not be cached, have %v", keys)
	}
}

func TestTransformDoesNotCacheArguments(t *testing.T) {
	in := NewInflector()

	for i := 0; i < 200; i++ {
		pattern := fmt.Sprintf("k%d", i)
		got, err := in.Transform("key_"+pattern, Op("underscore"), Op("rsub", pattern, "v"))
		if err != nil {
			t.Fatalf("Transform() error = %v", err)
		}
		if want := "key_v"; got != want {
			t.Fatalf("Transform() = %q; want %q", got, want)
		}
	}
	if _, err := in.Transform("Books", Op("sub", regexp.MustCompile(`^B`), "L")); err != nil {
		t.Fatal(err)
	}

	if keys := cachedPipelines(in); len(keys) != 0 {
		t.Errorf("pipelines with arguments must not be cached, have %d entries", len(keys))
	}
}

func TestTransformConcurrentUse(t *testing.T) {
	in := NewInflector()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := in.Transform("hanami/utils", Op("underscore"), Op("classify"))
			if err != nil || got != "Hanami::Utils" {
				t.Errorf("Transform() = %q, %v", got, err)
			}
		}()
	}
	wg.Wait()
}

func TestOperations(t *testing.T) {
	names := Operations()
	for _, want := range []string{"classify", "rsub", "gsub", "squish", "singularize"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Operations() missing %q", want)
		}
	}
	if n, ok := OperationArity("rsub"); !ok || n != 2 {
		t.Errorf("OperationArity(rsub) = %d, %v", n, ok)
	}
	if _, ok := OperationArity("nope"); ok {
		t.Error("OperationArity(nope) should be unknown")
	}
	if got := Op("rsub", regexp.MustCompile(`\d+`), "#").String(); got != `rsub(/\d+/, "#")` {
		t.Errorf("Step.String() = %q", got)
	}
}
