// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the textkit inflector: case and
//              namespace conversions, pluralization, rightmost substitution,
//              token interpolation and composable transformation pipelines.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-17 v0.3.0: Reworked into an inflector, removed random generation

// Package stringx provides string inflection for textkit.
//
// Package: stringx
// Title: String Inflection
// Description: Conversions between naming conventions (CamelCase, snake_case,
//              dash-case, Module::Name) and between singular and plural
//              nouns, plus a small pipeline engine to compose them.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Overview
//
// Every operation is a pure function of its input. The package functions use a
// default Inflector; NewInflector builds one with extra irregular or
// uncountable words. The String type carries the same operations as methods so
// a value can be chained:
//
//	stringx.String("Hanami::Utils::String").Demodulize()   // "String"
//	stringx.String("hanami/utils").Classify()              // "Hanami::Utils"
//
// Case conversions
//
//	stringx.Underscore("APIDoc")         // "api_doc"
//	stringx.Dasherize("APIDoc")          // "api-doc"
//	stringx.Classify("hanami_view")      // "HanamiView"
//	stringx.Titleize("hanami' utils")    // "Hanami' Utils"
//	stringx.Capitalize("OneTwoThree")    // "One two three"
//
// Words containing an apostrophe (', ’ or `) only have their first letter
// raised; the text after the apostrophe is kept as it is.
//
// Number
//
// Pluralize and Singularize consult the irregular and uncountable tables
// first, keyed by the last underscore separated word, and then an ordered rule
// table where the first matching rule wins:
//
//	stringx.Pluralize("admin_person")   // "admin_people"
//	stringx.Singularize("categories")   // "category"
//
// Substitution and tokens
//
//	stringx.RSub("authors/books/index", "/", "#")   // "authors/books#index"
//
//	stringx.Tokenize("Lotus::(Utils|App)", func(s string) {
//	    fmt.Println(s) // "Lotus::Utils", then "Lotus::App"
//	})
//
// Pipelines
//
// Transform applies steps from left to right. A step is a named operation,
// optionally with arguments, or a unary function:
//
//	out, err := stringx.Transform("hanami/utils",
//	    stringx.Op("underscore"),
//	    stringx.Op("classify"),
//	    stringx.Op("append", "Controller"))
//	// "Hanami::UtilsController"
//
// Unknown names fail with code UNKNOWN_OPERATION and functions that do not
// take exactly one argument fail with ARITY_MISMATCH. Pipelines made only of
// named steps are compiled once and cached.
package stringx
