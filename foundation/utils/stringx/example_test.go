// File: example_test.go
// Title: Example Tests for the stringx Package
// Description: Executable examples that double as documentation.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17

package stringx_test

import (
	"fmt"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

func ExampleUnderscore() {
	fmt.Println(stringx.Underscore("Hanami::Utils::APIDoc"))
	fmt.Println(stringx.Underscore("Lucky23Action"))
	// Output:
	// hanami/utils/api_doc
	// lucky23_action
}

func ExampleClassify() {
	fmt.Println(stringx.Classify("hanami_view"))
	fmt.Println(stringx.Classify("hanami/utils"))
	// Output:
	// HanamiView
	// Hanami::Utils
}

func ExamplePluralize() {
	fmt.Println(stringx.Pluralize("admin_person"))
	fmt.Println(stringx.Pluralize("hanami_category"))
	fmt.Println(stringx.Singularize("analyses"))
	// Output:
	// admin_people
	// hanami_categories
	// analysis
}

func ExampleTokenize() {
	stringx.Tokenize("Lotus::(Utils|App)", func(s string) {
		fmt.Println(s)
	})
	// Output:
	// Lotus::Utils
	// Lotus::App
}

func ExampleTransform() {
	out, err := stringx.Transform("Admin::BooksController",
		stringx.Op("demodulize"),
		stringx.Op("rsub", "Controller", ""),
		stringx.Op("underscore"),
		stringx.Op("singularize"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: book
}

func ExampleNewInflector() {
	in := stringx.NewInflector(stringx.WithIrregular("octopus", "octopi"))
	fmt.Println(in.Pluralize("octopus"))
	fmt.Println(in.Singularize("Octopi"))
	// Output:
	// octopi
	// Octopus
}
