// ============================================================================
// textkit - Inflection and line editing toolkit
// ============================================================================
//
// Package:     recipe
// Description: Runner renders recipe steps and applies them in order
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package recipe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/filex"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// Runner applies recipes through a line editor
type Runner struct {
	editor    *filex.Editor
	inflector *stringx.Inflector
	logger    *log.Logger
	dryRun    bool
}

// Option configures a Runner
type Option func(*Runner)

// WithEditor sets the editor used for file operations
func WithEditor(editor *filex.Editor) Option {
	return func(r *Runner) {
		if editor != nil {
			r.editor = editor
		}
	}
}

// WithInflector sets the inflector behind the template functions
func WithInflector(in *stringx.Inflector) Option {
	return func(r *Runner) {
		if in != nil {
			r.inflector = in
		}
	}
}

// WithLogger sets the logger; entries are named "recipe"
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger.WithName("recipe")
		}
	}
}

// WithDryRun renders steps without touching any file
func WithDryRun(dryRun bool) Option {
	return func(r *Runner) {
		r.dryRun = dryRun
	}
}

// NewRunner creates a runner using the default editor and inflector
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		editor:    filex.Default(),
		inflector: stringx.Default(),
		logger:    log.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Action is a step with all templates rendered
type Action struct {
	Index int
	Step
}

// String describes the action for humans
func (a Action) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s %s", a.Index, a.Op, a.Path)
	if a.From != "" {
		fmt.Fprintf(&b, " from=%q", a.From)
	}
	if a.Target != "" {
		kind := "target"
		if a.Regexp {
			kind = "pattern"
		}
		fmt.Fprintf(&b, " %s=%q", kind, a.Target)
	}
	if a.Line != "" {
		fmt.Fprintf(&b, " line=%q", a.Line)
	}
	if a.Content != "" {
		fmt.Fprintf(&b, " bytes=%d", len(a.Content))
	}
	return b.String()
}

// Result summarizes a run
type Result struct {
	RunID    string
	Recipe   string
	DryRun   bool
	Actions  []Action
	Duration time.Duration
}

// Plan renders every step of rec. vars override the recipe's own variables.
func (r *Runner) Plan(rec *Recipe, vars map[string]string) ([]Action, error) {
	merged := make(map[string]interface{}, len(rec.Vars)+len(vars))
	for k, v := range rec.Vars {
		merged[k] = v
	}
	for k, v := range vars {
		merged[k] = v
	}
	rnd := newRenderer(r.inflector, merged)

	actions := make([]Action, 0, len(rec.Steps))
	for i, step := range rec.Steps {
		action := Action{Index: i, Step: step}
		fields := []struct {
			name string
			ptr  *string
		}{
			{"path", &action.Path},
			{"from", &action.From},
			{"content", &action.Content},
			{"target", &action.Target},
			{"line", &action.Line},
		}
		for _, f := range fields {
			out, err := rnd.render(fmt.Sprintf("steps[%d].%s", i, f.name), *f.ptr)
			if err != nil {
				return nil, stepError(err, "render", rec.Name, action)
			}
			*f.ptr = out
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// Apply renders and executes rec. Steps run in order and the first failing
// step stops the run; steps before it stay applied. Rendering happens up
// front, so a template error leaves every file untouched.
func (r *Runner) Apply(ctx context.Context, rec *Recipe, vars map[string]string) (result *Result, err error) {
	runID := uuid.NewString()
	logger := r.logger.WithFields(log.Fields{"run_id": runID, "recipe": rec.Name})
	timer := logger.StartTimer("recipe.apply").WithField("steps", len(rec.Steps))

	result = &Result{RunID: runID, Recipe: rec.Name, DryRun: r.dryRun}
	defer func() {
		if err != nil {
			err = withRunID(err, runID)
			result.Duration = timer.Elapsed()
			logger.Debug("recipe.apply aborted", log.Err(err), log.Int("applied", len(result.Actions)))
			return
		}
		result.Duration = timer.Stop()
		logger.Info("recipe applied", log.Int("steps", len(result.Actions)), log.Bool("dry_run", r.dryRun))
	}()

	actions, err := r.Plan(rec, vars)
	if err != nil {
		return result, err
	}

	for _, action := range actions {
		if err := ctx.Err(); err != nil {
			return result, stepError(err, "cancel", rec.Name, action)
		}
		if !r.dryRun {
			if err := r.execute(action); err != nil {
				return result, stepError(err, "apply", rec.Name, action)
			}
		}

		result.Actions = append(result.Actions, action)
		logger.Debug("step applied", log.Fields{
			"index":   action.Index,
			"op":      string(action.Op),
			"path":    action.Path,
			"dry_run": r.dryRun,
		})
	}
	return result, nil
}

func (r *Runner) execute(a Action) error {
	e := r.editor

	switch a.Op {
	case OpTouch:
		return e.Touch(a.Path)
	case OpWrite:
		return e.Write(a.Path, a.Content)
	case OpRewrite:
		return e.Rewrite(a.Path, a.Content)
	case OpCopy:
		return e.Copy(a.From, a.Path)
	case OpMkdir:
		return e.MakeDirectory(a.Path)
	case OpMkdirP:
		return e.MakeParentDirectories(a.Path)
	case OpDelete:
		return e.Delete(a.Path)
	case OpDeleteDir:
		return e.DeleteDirectory(a.Path)
	case OpPrepend:
		return e.PrependLine(a.Path, a.Line)
	case OpAppend:
		return e.AppendLine(a.Path, a.Line)
	}

	target, err := filex.ParseTarget(a.Target, a.Regexp)
	if err != nil {
		return err
	}

	switch a.Op {
	case OpReplaceFirst:
		return e.ReplaceFirstLine(a.Path, target, a.Line)
	case OpReplaceLast:
		return e.ReplaceLastLine(a.Path, target, a.Line)
	case OpInsertBefore:
		return e.InsertLineBefore(a.Path, target, a.Line)
	case OpInsertAfter:
		return e.InsertLineAfter(a.Path, target, a.Line)
	case OpInsertBeforeLast:
		return e.InsertLineBeforeLast(a.Path, target, a.Line)
	case OpInsertAfterLast:
		return e.InsertLineAfterLast(a.Path, target, a.Line)
	case OpRemoveLine:
		return e.RemoveLine(a.Path, target)
	case OpRemoveBlock:
		return e.RemoveBlock(a.Path, target)
	}

	return tkerror.Newf("unknown operation %q", a.Op).
		WithCode(tkerror.CodeUnknownOperation).
		WithDetail("op", string(a.Op))
}

func stepError(err error, phase, recipe string, a Action) error {
	return tkerror.Wrap(err, fmt.Sprintf("recipe step %d (%s) failed", a.Index, a.Op)).
		WithOperation("recipe." + phase).
		WithDetail("recipe", recipe).
		WithDetail("index", a.Index).
		WithDetail("op", string(a.Op))
}

func withRunID(err error, runID string) error {
	var tkErr *tkerror.Error
	if e, ok := err.(*tkerror.Error); ok {
		tkErr = e
	} else {
		tkErr = tkerror.Wrap(err, "recipe run failed")
	}
	return tkErr.WithDetail("run_id", runID)
}
