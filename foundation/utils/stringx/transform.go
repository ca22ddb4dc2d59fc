// File: transform.go
// Title: Transformation Pipelines
// Description: Composes named operations and unary functions into pipelines
//              applied from left to right.
// Author: msto63
// Version: v0.3.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.3.0: Initial implementation
// - 2026-10-17 v0.3.1: Only argument-free pipelines are cached

package stringx

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"unicode"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Step is one stage of a Transform pipeline. Build it with Op, Func or FuncOf.
type Step struct {
	name string
	args []interface{}
	fn   func(string) string
	err  error
}

// Op returns a step running the named operation with args. Arguments are
// strings; the pattern of sub, gsub and rsub may also be a *regexp.Regexp.
func Op(name string, args ...interface{}) Step {
	return Step{name: name, args: args}
}

// Func returns a step running fn.
func Func(fn func(string) string) Step {
	return Step{name: "func", fn: fn}
}

// FuncOf adapts any unary string function, including func(String) String and
// functions over other string based types. A function that does not take
// exactly one argument yields an ARITY_MISMATCH step; anything that is not a
// string function yields an INVALID_INPUT step. The error surfaces when the
// pipeline runs.
func FuncOf(v interface{}) Step {
	switch fn := v.(type) {
	case func(string) string:
		return Func(fn)
	case func(String) String:
		return Func(func(s string) string { return string(fn(String(s))) })
	case nil:
		return Step{name: "func", err: invalidFunc(v)}
	}

	rv := reflect.ValueOf(v)
	rt := rv.Type()
	if rt.Kind() != reflect.Func {
		return Step{name: "func", err: invalidFunc(v)}
	}
	if rt.NumIn() != 1 || rt.IsVariadic() {
		return Step{name: "func", err: tkerror.Newf("function step takes %d arguments, want 1", rt.NumIn()).
			WithCode(tkerror.CodeArityMismatch).
			WithOperation("stringx.FuncOf").
			WithDetail("type", rt.String())}
	}
	in := rt.In(0)
	if in.Kind() != reflect.String || rt.NumOut() != 1 || rt.Out(0).Kind() != reflect.String {
		return Step{name: "func", err: invalidFunc(v)}
	}
	return Func(func(s string) string {
		out := rv.Call([]reflect.Value{reflect.ValueOf(s).Convert(in)})
		return out[0].String()
	})
}

func invalidFunc(v interface{}) error {
	return tkerror.Newf("step of type %T is not a string function", v).
		WithCode(tkerror.CodeInvalidInput).
		WithOperation("stringx.FuncOf")
}

// Name returns the operation name, or "func" for function steps.
func (s Step) Name() string {
	return s.name
}

// String renders the step as name or name(arg, ...).
func (s Step) String() string {
	if len(s.args) == 0 {
		return s.name
	}
	parts := make([]string, len(s.args))
	for i, a := range s.args {
		parts[i] = formatArg(a)
	}
	return s.name + "(" + strings.Join(parts, ", ") + ")"
}

func formatArg(a interface{}) string {
	switch v := a.(type) {
	case *regexp.Regexp:
		return "/" + v.String() + "/"
	case string:
		return fmt.Sprintf("%q", v)
	case String:
		return fmt.Sprintf("%q", string(v))
	default:
		return fmt.Sprintf("%T(%v)", a, a)
	}
}

type stepFunc func(string) string

// operation describes a named pipeline operation
type operation struct {
	arity int
	build func(in *Inflector, args []interface{}) (stepFunc, error)
}

func unary(fn func(in *Inflector) stepFunc) operation {
	return operation{build: func(in *Inflector, _ []interface{}) (stepFunc, error) { return fn(in), nil }}
}

func static(fn stepFunc) operation {
	return unary(func(*Inflector) stepFunc { return fn })
}

var operations = map[string]operation{
	// inflector operations
	"classify":    static(Classify),
	"underscore":  static(Underscore),
	"dasherize":   static(Dasherize),
	"demodulize":  static(Demodulize),
	"namespace":   static(Namespace),
	"titleize":    static(Titleize),
	"capitalize":  static(Capitalize),
	"pluralize":   unary(func(in *Inflector) stepFunc { return in.Pluralize }),
	"singularize": unary(func(in *Inflector) stepFunc { return in.Singularize }),
	"rsub": {arity: 2, build: func(_ *Inflector, args []interface{}) (stepFunc, error) {
		repl, err := stringArg("rsub", args[1])
		if err != nil {
			return nil, err
		}
		if re, ok := args[0].(*regexp.Regexp); ok {
			return func(s string) string { return RSubPattern(s, re, repl) }, nil
		}
		pattern, err := stringArg("rsub", args[0])
		if err != nil {
			return nil, err
		}
		return func(s string) string { return RSub(s, pattern, repl) }, nil
	}},

	// native string operations
	"upcase":   static(strings.ToUpper),
	"downcase": static(strings.ToLower),
	"strip":    static(strings.TrimSpace),
	"lstrip":   static(func(s string) string { return strings.TrimLeftFunc(s, unicode.IsSpace) }),
	"rstrip":   static(func(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) }),
	"reverse":  static(Reverse),
	"swapcase": static(SwapCase),
	"squish":   static(Squish),
	"sub": {arity: 2, build: func(_ *Inflector, args []interface{}) (stepFunc, error) {
		return substitution("sub", args, 1)
	}},
	"gsub": {arity: 2, build: func(_ *Inflector, args []interface{}) (stepFunc, error) {
		return substitution("gsub", args, -1)
	}},
	"append": {arity: 1, build: func(_ *Inflector, args []interface{}) (stepFunc, error) {
		suffix, err := stringArg("append", args[0])
		if err != nil {
			return nil, err
		}
		return func(s string) string { return s + suffix }, nil
	}},
	"prepend": {arity: 1, build: func(_ *Inflector, args []interface{}) (stepFunc, error) {
		prefix, err := stringArg("prepend", args[0])
		if err != nil {
			return nil, err
		}
		return func(s string) string { return prefix + s }, nil
	}},
}

// Operations lists the names accepted by Op in sorted order.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OperationArity returns the number of arguments the named operation takes.
func OperationArity(name string) (int, bool) {
	op, ok := operations[name]
	return op.arity, ok
}

// substitution replaces the first n matches (n < 0 for all) of a literal or
// regexp pattern.
func substitution(name string, args []interface{}, n int) (stepFunc, error) {
	repl, err := stringArg(name, args[1])
	if err != nil {
		return nil, err
	}
	if re, ok := args[0].(*regexp.Regexp); ok {
		if n < 0 {
			return func(s string) string { return re.ReplaceAllString(s, repl) }, nil
		}
		return func(s string) string {
			m := re.FindStringSubmatchIndex(s)
			if m == nil {
				return s
			}
			return s[:m[0]] + string(re.ExpandString(nil, repl, s, m)) + s[m[1]:]
		}, nil
	}
	pattern, err := stringArg(name, args[0])
	if err != nil {
		return nil, err
	}
	if pattern == "" {
		return func(s string) string { return s }, nil
	}
	return func(s string) string { return strings.Replace(s, pattern, repl, n) }, nil
}

func stringArg(op string, v interface{}) (string, error) {
	switch a := v.(type) {
	case string:
		return a, nil
	case String:
		return string(a), nil
	case fmt.Stringer:
		return a.String(), nil
	}
	return "", tkerror.Newf("operation %s expects a string argument, got %T", op, v).
		WithCode(tkerror.CodeInvalidInput).
		WithOperation("stringx.Transform").
		WithDetail("step", op)
}

// Transform applies steps to s using the default inflector.
func Transform(s string, steps ...Step) (string, error) {
	return Default().Transform(s, steps...)
}

// Transform applies steps to s from left to right, feeding each result into
// the next step. Pipelines made only of argument-free named operations are
// compiled once per inflector and cached by their signature; steps with
// arguments are compiled on every call so caller-supplied patterns cannot
// grow the cache.
func (in *Inflector) Transform(s string, steps ...Step) (string, error) {
	fns, err := in.compile(s, steps)
	if err != nil {
		return "", err
	}
	out := s
	for _, fn := range fns {
		out = fn(out)
	}
	return out, nil
}

func (in *Inflector) compile(input string, steps []Step) ([]stepFunc, error) {
	cacheable := true
	for _, step := range steps {
		if step.fn != nil || step.err != nil || len(step.args) > 0 {
			cacheable = false
			break
		}
	}

	var key string
	if cacheable {
		key = signature(steps)
		if cached, ok := in.pipelines.Load(key); ok {
			return cached.([]stepFunc), nil
		}
	}

	fns := make([]stepFunc, 0, len(steps))
	for i, step := range steps {
		fn, err := in.resolve(input, step)
		if err != nil {
			return nil, tkerror.Wrap(err, fmt.Sprintf("transform step %d (%s) failed", i, step)).
				WithDetail("index", i)
		}
		fns = append(fns, fn)
	}

	if cacheable {
		in.pipelines.Store(key, fns)
	}
	return fns, nil
}

func (in *Inflector) resolve(input string, step Step) (stepFunc, error) {
	if step.err != nil {
		return nil, step.err
	}
	if step.fn != nil {
		return step.fn, nil
	}

	op, ok := operations[step.name]
	if !ok {
		return nil, tkerror.Newf("unknown operation %q for %q", step.name, input).
			WithCode(tkerror.CodeUnknownOperation).
			WithOperation("stringx.Transform").
			WithDetail("step", step.name).
			WithDetail("input", input)
	}
	if len(step.args) != op.arity {
		return nil, tkerror.Newf("operation %s takes %d arguments, got %d", step.name, op.arity, len(step.args)).
			WithCode(tkerror.CodeArityMismatch).
			WithOperation("stringx.Transform").
			WithDetail("step", step.name).
			WithDetail("input", input)
	}
	return op.build(in, step.args)
}

func signature(steps []Step) string {
	parts := make([]string, len(steps))
	for i, step := range steps {
		parts[i] = step.String()
	}
	return strings.Join(parts, "|")
}
