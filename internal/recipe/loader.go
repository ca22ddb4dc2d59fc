// ============================================================================
// textkit - Inflection and line editing toolkit
// ============================================================================
//
// Package:     recipe
// Description: Recipe loader for YAML and TOML files
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package recipe

import (
	"path/filepath"
	"strings"

	fconfig "github.com/msto63/textkit/foundation/core/config"
	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Load reads a recipe from a .yaml, .yml or .toml file
func Load(path string) (*Recipe, error) {
	src, err := fconfig.Load(path)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to load recipe").
			WithOperation("recipe.Load").
			WithDetail("path", path)
	}

	r, err := decode(src)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to load recipe").
			WithOperation("recipe.Load").
			WithDetail("path", path)
	}
	if r.Name == "" {
		r.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	r.SourceFile = path
	return r, nil
}

// Parse reads a recipe from a string. format is "yaml" or "toml".
func Parse(content, format string) (*Recipe, error) {
	f := fconfig.FormatTOML
	switch strings.ToLower(format) {
	case "yaml", "yml":
		f = fconfig.FormatYAML
	case "toml", "":
	default:
		return nil, tkerror.Newf("unsupported recipe format %q", format).
			WithCode(tkerror.CodeInvalidInput).
			WithOperation("recipe.Parse")
	}

	src, err := fconfig.LoadFromString(content, f)
	if err != nil {
		return nil, err
	}
	return decode(src)
}

func decode(src *fconfig.Config) (*Recipe, error) {
	var r Recipe
	if err := src.Decode(&r); err != nil {
		return nil, err
	}
	r.Defaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
