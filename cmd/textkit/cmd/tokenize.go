package cmd

import (
	"fmt"

	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <pattern>",
		Short: "Expand a (a|b) pattern into its variants",
		Long: `Expand the parenthesized alternatives of a pattern and print one
variant per line. A pattern without a group prints unchanged.

Example:
  textkit tokenize 'Lotus::(Utils|App)'   # Lotus::Utils, Lotus::App`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			stringx.Tokenize(args[0], func(token string) {
				fmt.Fprintln(out, token)
			})
			return nil
		},
	}
}
