package cmd

import (
	"fmt"
	"regexp"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/spf13/cobra"
)

const transformLongDescription = `Run input through a pipeline of operations from left to right.

A step is "name" or "name:arg1:arg2"; a literal colon in an argument is
written as "\:". With --regexp the first argument of sub, gsub and rsub is
a regular expression.

Operations:
  %s

Examples:
  textkit transform hanami/utils underscore classify        # Hanami::Utils
  textkit transform authors/books/index rsub:/:#            # authors/books#index
  textkit transform --regexp v1.2.3 'gsub:\d+:N'            # vN.N.N`

func newTransformCmd(a *app) *cobra.Command {
	var pattern bool

	cmd := &cobra.Command{
		Use:   "transform <input> <step>...",
		Short: "Run a pipeline of string operations",
		Long:  fmt.Sprintf(transformLongDescription, strings.Join(stringx.Operations(), ", ")),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := make([]stringx.Step, 0, len(args)-1)
			for _, raw := range args[1:] {
				step, err := parseStep(raw, pattern)
				if err != nil {
					return err
				}
				steps = append(steps, step)
			}

			out, err := a.inflector.Transform(args[0], steps...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pattern, "regexp", false, "treat the first argument of sub, gsub and rsub as a regular expression")
	return cmd
}

// parseStep converts "name:arg1:arg2" into a step
func parseStep(raw string, pattern bool) (stringx.Step, error) {
	parts := splitEscaped(raw, ':')
	name, rest := parts[0], parts[1:]

	args := make([]interface{}, len(rest))
	for i, arg := range rest {
		args[i] = arg
	}

	if pattern && len(rest) > 0 {
		switch name {
		case "sub", "gsub", "rsub":
			re, err := regexp.Compile(rest[0])
			if err != nil {
				return stringx.Step{}, tkerror.Wrap(err, "invalid pattern").
					WithCode(tkerror.CodeInvalidInput).
					WithDetail("step", raw)
			}
			args[0] = re
		}
	}
	return stringx.Op(name, args...), nil
}

// splitEscaped splits s at sep unless it is preceded by a backslash
func splitEscaped(s string, sep byte) []string {
	var parts []string
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == sep:
			b.WriteByte(sep)
			i++
		case s[i] == sep:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteByte(s[i])
		}
	}
	return append(parts, b.String())
}
