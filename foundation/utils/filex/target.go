// File: target.go
// Title: Line Targets
// Description: Targets locate lines by substring or by pattern.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package filex

import (
	"fmt"
	"regexp"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Target decides whether a line is the one an operation looks for.
// Match receives the line without its terminator.
type Target interface {
	Match(line string) bool
	String() string
}

type containsTarget string

func (t containsTarget) Match(line string) bool { return strings.Contains(line, string(t)) }
func (t containsTarget) String() string         { return string(t) }

type patternTarget struct {
	re *regexp.Regexp
}

func (t patternTarget) Match(line string) bool { return t.re.MatchString(line) }
func (t patternTarget) String() string         { return t.re.String() }

// Contains returns a target matching lines that contain substr.
func Contains(substr string) Target {
	return containsTarget(substr)
}

// Matches returns a target matching lines that match re.
func Matches(re *regexp.Regexp) Target {
	return patternTarget{re: re}
}

// ParseTarget returns Contains(s), or Matches of the compiled s when
// pattern is set.
func ParseTarget(s string, pattern bool) (Target, error) {
	if !pattern {
		return Contains(s), nil
	}
	re, err := regexp.Compile(s)
	if err != nil {
		return nil, tkerror.Wrap(err, "invalid target pattern").
			WithCode(tkerror.CodeInvalidInput).
			WithOperation("filex.ParseTarget").
			WithDetail("target", s)
	}
	return Matches(re), nil
}

// TargetOf converts a string, a *regexp.Regexp or a Target into a Target.
func TargetOf(v interface{}) (Target, error) {
	switch t := v.(type) {
	case Target:
		return t, nil
	case string:
		return Contains(t), nil
	case *regexp.Regexp:
		if t == nil {
			break
		}
		return Matches(t), nil
	case fmt.Stringer:
		return Contains(t.String()), nil
	}
	return nil, tkerror.Newf("unsupported target type %T", v).
		WithCode(tkerror.CodeInvalidInput).
		WithOperation("filex.TargetOf")
}
