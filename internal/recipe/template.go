// ============================================================================
// textkit - Inflection and line editing toolkit
// ============================================================================
//
// Package:     recipe
// Description: Template rendering of recipe fields with inflector functions
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package recipe

import (
	"strings"
	"text/template"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// FuncMap returns the template functions backed by in. Functions taking
// extra arguments expect the piped value last:
//
//	{{ .action | underscore | rsub "/" "#" }}
//	{{ .model | transform "underscore" "pluralize" }}
func FuncMap(in *stringx.Inflector) template.FuncMap {
	return template.FuncMap{
		"classify":    stringx.Classify,
		"underscore":  stringx.Underscore,
		"dasherize":   stringx.Dasherize,
		"demodulize":  stringx.Demodulize,
		"namespace":   stringx.Namespace,
		"titleize":    stringx.Titleize,
		"capitalize":  stringx.Capitalize,
		"pluralize":   in.Pluralize,
		"singularize": in.Singularize,
		"rsub": func(pattern, replacement, s string) string {
			return stringx.RSub(s, pattern, replacement)
		},
		"tokens": stringx.Tokens,
		"transform": func(args ...string) (string, error) {
			if len(args) == 0 {
				return "", nil
			}
			input, names := args[len(args)-1], args[:len(args)-1]
			steps := make([]stringx.Step, len(names))
			for i, name := range names {
				steps[i] = stringx.Op(name)
			}
			return in.Transform(input, steps...)
		},
		"upcase":   strings.ToUpper,
		"downcase": strings.ToLower,
	}
}

// renderer renders recipe fields against a fixed set of variables
type renderer struct {
	vars  map[string]interface{}
	funcs template.FuncMap
}

func newRenderer(in *stringx.Inflector, vars map[string]interface{}) *renderer {
	return &renderer{vars: vars, funcs: FuncMap(in)}
}

// render executes text as a template. Text without actions is returned as is.
func (r *renderer) render(field, text string) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}

	tmpl, err := template.New(field).Option("missingkey=error").Funcs(r.funcs).Parse(text)
	if err != nil {
		return "", tkerror.Wrap(err, "invalid template").
			WithCode(tkerror.CodeInvalidInput).
			WithDetail("field", field)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, r.vars); err != nil {
		wrapped := tkerror.Wrap(err, "template execution failed").WithDetail("field", field)
		if wrapped.Code() == tkerror.CodeUnknown {
			wrapped = wrapped.WithCode(tkerror.CodeInvalidInput)
		}
		return "", wrapped
	}
	return b.String(), nil
}
