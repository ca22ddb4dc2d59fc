package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/textkit/internal/recipe"
	"github.com/spf13/cobra"
)

var (
	summaryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	dryRunStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#6B7280"))
)

func newRecipeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Apply templated sequences of file edits",
		Long: `Recipes are YAML or TOML files listing file and line operations.
Every string field is a Go template; vars and the inflector functions
(classify, underscore, pluralize, ...) are available inside templates.`,
	}

	cmd.AddCommand(newRecipeApplyCmd(a), newRecipeValidateCmd(), newRecipeOpsCmd())
	return cmd
}

func newRecipeApplyCmd(a *app) *cobra.Command {
	var (
		vars   map[string]string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "apply <recipe>...",
		Short: "Apply recipes in order",
		Example: `  textkit recipe apply scaffold.yaml --var name=book
  textkit recipe apply scaffold.yaml --var name=book --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := recipe.NewRunner(
				recipe.WithEditor(a.editor),
				recipe.WithInflector(a.inflector),
				recipe.WithLogger(a.logger),
				recipe.WithDryRun(dryRun),
			)

			out := cmd.OutOrStdout()
			for _, path := range args {
				rec, err := recipe.Load(path)
				if err != nil {
					return err
				}

				result, err := runner.Apply(cmd.Context(), rec, vars)
				if err != nil {
					return err
				}

				for _, action := range result.Actions {
					fmt.Fprintf(out, "  %s\n", action)
				}
				summary := fmt.Sprintf("%s: %d steps in %s (run %s)",
					result.Recipe, len(result.Actions), result.Duration.Round(time.Microsecond), result.RunID)
				if result.DryRun {
					fmt.Fprintln(out, dryRunStyle.Render(summary+" [dry run]"))
					continue
				}
				fmt.Fprintln(out, summaryStyle.Render(summary))
			}
			return nil
		},
	}

	cmd.Flags().StringToStringVar(&vars, "var", nil, "template variable name=value (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "render steps without touching files")
	return cmd
}

func newRecipeValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <recipe>...",
		Short: "Check recipes without rendering or applying them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				rec, err := recipe.Load(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d steps)\n", rec.Name, len(rec.Steps))
			}
			return nil
		},
	}
}

func newRecipeOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations a recipe step may use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names := make([]string, 0, len(recipe.Ops()))
			for _, op := range recipe.Ops() {
				names = append(names, string(op))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
		},
	}
}
