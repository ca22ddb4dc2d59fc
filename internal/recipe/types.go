// ============================================================================
// textkit - Inflection and line editing toolkit
// ============================================================================
//
// Package:     recipe
// Description: Recipe definitions: named, templated sequences of file edits
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package recipe

import (
	"fmt"
	"sort"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Op names a recipe step operation
type Op string

// Step operations
const (
	OpTouch            Op = "touch"
	OpWrite            Op = "write"
	OpRewrite          Op = "rewrite"
	OpCopy             Op = "copy"
	OpMkdir            Op = "mkdir"
	OpMkdirP           Op = "mkdir_p"
	OpDelete           Op = "delete"
	OpDeleteDir        Op = "delete_dir"
	OpPrepend          Op = "prepend"
	OpAppend           Op = "append"
	OpReplaceFirst     Op = "replace_first"
	OpReplaceLast      Op = "replace_last"
	OpInsertBefore     Op = "insert_before"
	OpInsertAfter      Op = "insert_after"
	OpInsertBeforeLast Op = "insert_before_last"
	OpInsertAfterLast  Op = "insert_after_last"
	OpRemoveLine       Op = "remove_line"
	OpRemoveBlock      Op = "remove_block"
)

// required step fields; line and content may legitimately be empty
const (
	needPath = 1 << iota
	needFrom
	needTarget
)

var opFields = map[Op]int{
	OpTouch:            needPath,
	OpWrite:            needPath,
	OpRewrite:          needPath,
	OpCopy:             needPath | needFrom,
	OpMkdir:            needPath,
	OpMkdirP:           needPath,
	OpDelete:           needPath,
	OpDeleteDir:        needPath,
	OpPrepend:          needPath,
	OpAppend:           needPath,
	OpReplaceFirst:     needPath | needTarget,
	OpReplaceLast:      needPath | needTarget,
	OpInsertBefore:     needPath | needTarget,
	OpInsertAfter:      needPath | needTarget,
	OpInsertBeforeLast: needPath | needTarget,
	OpInsertAfterLast:  needPath | needTarget,
	OpRemoveLine:       needPath | needTarget,
	OpRemoveBlock:      needPath | needTarget,
}

// Ops lists the supported step operations in sorted order
func Ops() []Op {
	ops := make([]Op, 0, len(opFields))
	for op := range opFields {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Recipe is a named sequence of file edits. Every string field of a step is
// a text/template rendered with Vars and the inflector functions.
type Recipe struct {
	Name        string                 `yaml:"name" toml:"name"`
	Description string                 `yaml:"description" toml:"description"`
	Vars        map[string]interface{} `yaml:"vars" toml:"vars"`
	Steps       []Step                 `yaml:"steps" toml:"steps"`

	// Internal tracking
	SourceFile string `yaml:"-" toml:"-"`
}

// Step is a single recipe operation
type Step struct {
	Op      Op     `yaml:"op" toml:"op"`
	Path    string `yaml:"path" toml:"path"`
	From    string `yaml:"from" toml:"from"`       // copy source
	Content string `yaml:"content" toml:"content"` // write, rewrite
	Target  string `yaml:"target" toml:"target"`
	Line    string `yaml:"line" toml:"line"`
	Regexp  bool   `yaml:"regexp" toml:"regexp"` // target is a pattern
}

// Defaults fills optional fields
func (r *Recipe) Defaults() {
	if r.Vars == nil {
		r.Vars = make(map[string]interface{})
	}
	for i := range r.Steps {
		r.Steps[i].Op = Op(strings.ToLower(strings.TrimSpace(string(r.Steps[i].Op))))
	}
}

// Validate checks that every step names a known operation and carries the
// fields it needs.
func (r *Recipe) Validate() error {
	if len(r.Steps) == 0 {
		return tkerror.New("recipe has no steps").
			WithCode(tkerror.CodeValidationFailed).
			WithOperation("recipe.Validate").
			WithDetail("recipe", r.Name)
	}
	for i, step := range r.Steps {
		if err := step.validate(); err != nil {
			return tkerror.Wrap(err, fmt.Sprintf("recipe step %d invalid", i)).
				WithOperation("recipe.Validate").
				WithDetail("recipe", r.Name).
				WithDetail("index", i)
		}
	}
	return nil
}

func (s Step) validate() error {
	fields, ok := opFields[s.Op]
	if !ok {
		return tkerror.Newf("unknown operation %q", s.Op).
			WithCode(tkerror.CodeUnknownOperation).
			WithDetail("op", string(s.Op))
	}

	var missing []string
	check := func(flag int, name, value string) {
		if fields&flag != 0 && value == "" {
			missing = append(missing, name)
		}
	}
	check(needPath, "path", s.Path)
	check(needFrom, "from", s.From)
	check(needTarget, "target", s.Target)

	if len(missing) > 0 {
		return tkerror.Newf("%s requires %s", s.Op, strings.Join(missing, ", ")).
			WithCode(tkerror.CodeValidationFailed).
			WithDetail("op", string(s.Op))
	}
	return nil
}
