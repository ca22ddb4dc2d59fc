package cmd

import (
	"errors"
	"fmt"
	"io"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/filex"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/pkg/core/config"
	"github.com/msto63/textkit/pkg/core/logging"
	"github.com/spf13/cobra"
)

// app carries global flags and the components built from them
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg       *config.Config
	logger    *log.Logger
	inflector *stringx.Inflector
	editor    *filex.Editor
}

// setup loads the configuration and builds logger, inflector and editor
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.cfgFile)
	if err != nil {
		return err
	}

	logCfg := logging.FromSettings("textkit", cfg.Log)
	logCfg.Verbose = a.verbose
	logCfg.Output = cmd.ErrOrStderr()
	if a.logFormat != "" {
		logCfg.Format = a.logFormat
	}

	a.cfg = cfg
	a.logger = logging.NewLogger(logCfg)
	a.inflector = cfg.Inflector()
	a.editor = filex.NewEditor(append(cfg.EditorOptions(), filex.WithLogger(a.logger))...)

	if path := cfg.Path(); path != "" {
		a.logger.Debug("configuration loaded", log.String("path", path))
	}
	return nil
}

// report logs err through the configured logger, or prints it when setup
// never ran.
func (a *app) report(w io.Writer, err error) {
	if a.logger != nil {
		a.logger.LogError(err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "textkit",
		Short: "textkit - inflection and line editing toolkit",
		Long: `textkit converts identifiers between naming conventions and edits
text files line by line.

Commands:
  inflect    - apply an inflector operation to words
  transform  - run a pipeline of string operations
  tokenize   - expand a (a|b) pattern into its variants
  edit       - insert, replace or remove lines in a file
  fs         - create, copy and delete files and directories
  recipe     - apply a templated sequence of edits
  tui        - interactive inflection preview`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./textkit.toml, ./textkit.yaml, ~/.config/textkit/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json, text, console, logfmt")

	root.AddCommand(
		newInflectCmd(a),
		newTransformCmd(a),
		newTokenizeCmd(),
		newEditCmd(a),
		newFsCmd(a),
		newRecipeCmd(a),
		newTUICmd(a),
		newVersionCmd(),
	)

	return root, a
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	root, a := newRootCmd()
	if err := root.Execute(); err != nil {
		a.report(root.ErrOrStderr(), err)
		return ExitCode(err)
	}
	return 0
}

// ExitCode maps err to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var tkErr *tkerror.Error
	if errors.As(err, &tkErr) {
		return tkErr.Code().ExitCode()
	}
	return 1
}
