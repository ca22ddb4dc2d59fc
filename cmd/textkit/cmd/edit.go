package cmd

import (
	"github.com/msto63/textkit/foundation/utils/filex"
	"github.com/spf13/cobra"
)

const editLongDescription = `Insert, replace or remove lines in a text file.

A target selects lines containing the given text, or matching it as a
regular expression with --regexp. When no line matches, the command fails
with TARGET_NOT_FOUND and the file is left unchanged.

Examples:
  textkit edit insert-after config/routes.rb 'routes do' "  get '/books'"
  textkit edit replace-last Gemfile 'gem "rack"' 'gem "rack", "~> 3.0"'
  textkit edit --regexp remove-line app.rb '^\s*# TODO'
  textkit edit remove-block app.rb 'configure do'`

type lineEdit struct {
	use   string
	short string
	// run receives the path and, for targeted edits, target and line
	run func(e *filex.Editor, path string, target filex.Target, line string) error
	// targeted edits take a target argument
	targeted bool
	// withLine edits take a line argument
	withLine bool
}

var lineEdits = []lineEdit{
	{"prepend <path> <line>", "Insert line at the top of the file",
		func(e *filex.Editor, p string, _ filex.Target, l string) error { return e.PrependLine(p, l) }, false, true},
	{"append <path> <line>", "Add line at the end of the file",
		func(e *filex.Editor, p string, _ filex.Target, l string) error { return e.AppendLine(p, l) }, false, true},
	{"replace-first <path> <target> <line>", "Replace the first matching line",
		func(e *filex.Editor, p string, t filex.Target, l string) error { return e.ReplaceFirstLine(p, t, l) }, true, true},
	{"replace-last <path> <target> <line>", "Replace the last matching line",
		func(e *filex.Editor, p string, t filex.Target, l string) error { return e.ReplaceLastLine(p, t, l) }, true, true},
	{"insert-before <path> <target> <line>", "Insert line before the first matching line",
		func(e *filex.Editor, p string, t filex.Target, l string) error { return e.InsertLineBefore(p, t, l) }, true, true},
	{"insert-after <path> <target> <line>", "Insert line after the first matching line",
		func(e *filex.Editor, p string, t filex.Target, l string) error { return e.InsertLineAfter(p, t, l) }, true, true},
	{"insert-before-last <path> <target> <line>", "Insert line before the last matching line",
		func(e *filex.Editor, p string, t filex.Target, l string) error { return e.InsertLineBeforeLast(p, t, l) }, true, true},
	{"insert-after-last <path> <target> <line>", "Insert line after the last matching line",
		func(e *filex.Editor, p string, t filex.Target, l string) error { return e.InsertLineAfterLast(p, t, l) }, true, true},
	{"remove-line <path> <target>", "Remove the first matching line",
		func(e *filex.Editor, p string, t filex.Target, _ string) error { return e.RemoveLine(p, t) }, true, false},
	{"remove-block <path> <target>", "Remove every block opening on a matching line",
		func(e *filex.Editor, p string, t filex.Target, _ string) error { return e.RemoveBlock(p, t) }, true, false},
}

func newEditCmd(a *app) *cobra.Command {
	var pattern bool

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Insert, replace or remove lines in a file",
		Long:  editLongDescription,
	}
	cmd.PersistentFlags().BoolVar(&pattern, "regexp", false, "treat the target as a regular expression")

	for _, le := range lineEdits {
		le := le
		nargs := 1
		if le.targeted {
			nargs++
		}
		if le.withLine {
			nargs++
		}

		cmd.AddCommand(&cobra.Command{
			Use:   le.use,
			Short: le.short,
			Args:  cobra.ExactArgs(nargs),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, rest := args[0], args[1:]

				var target filex.Target
				if le.targeted {
					t, err := filex.ParseTarget(rest[0], pattern)
					if err != nil {
						return err
					}
					target, rest = t, rest[1:]
				}

				var line string
				if le.withLine {
					line = rest[0]
				}
				return le.run(a.editor, path, target, line)
			},
		})
	}

	return cmd
}
