package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/textkit/internal/tui"
	"github.com/msto63/textkit/pkg/core/config"
	"github.com/spf13/cobra"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [word]",
		Short: "Interactive inflection preview",
		Long: `Shows every inflector operation applied to the text as you type.
When a configuration file is in use it is watched and edits to its
inflection tables apply immediately.

Keys:
  Ctrl+L    - clear the input
  Esc       - quit
  Ctrl+C    - quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []tui.Option{
				tui.WithInflector(a.inflector),
				tui.WithSource(a.cfg.Path()),
			}
			if len(args) == 1 {
				opts = append(opts, tui.WithValue(args[0]))
			}

			p := tea.NewProgram(tui.NewModel(opts...), tea.WithAltScreen())

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if a.cfg.Path() != "" {
				err := a.cfg.Watch(ctx,
					func(c *config.Config) { p.Send(tui.InflectorMsg{Inflector: c.Inflector()}) },
					func(err error) { p.Send(tui.ErrMsg{Err: err}) },
				)
				if err != nil {
					return err
				}
			}

			_, err := p.Run()
			return err
		},
	}
}
