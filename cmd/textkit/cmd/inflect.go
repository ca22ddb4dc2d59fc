package cmd

import (
	"bytes"
	"fmt"

	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/internal/tui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const inflectLongDescription = `Apply an inflector operation to each word and print one result per line.

Operations:
  classify, underscore, dasherize, demodulize, namespace,
  titleize, capitalize, pluralize, singularize

"all" prints a table with every operation for each word.

Examples:
  textkit inflect underscore HanamiView      # hanami_view
  textkit inflect pluralize person book      # people, books
  textkit inflect all Hanami::Utils::String`

var inflectOps = []string{
	"classify", "underscore", "dasherize", "demodulize", "namespace",
	"titleize", "capitalize", "pluralize", "singularize", "all",
}

func newInflectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "inflect <operation> <word>...",
		Short:     "Apply an inflector operation to words",
		Long:      inflectLongDescription,
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: inflectOps,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, words := args[0], args[1:]
			if op == "all" {
				return printInflectionTable(cmd, a.inflector, words)
			}
			for _, word := range words {
				out, err := a.inflector.Transform(word, stringx.Op(op))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}

func printInflectionTable(cmd *cobra.Command, in *stringx.Inflector, words []string) error {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(append([]string{"Operation"}, words...))
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator(" ")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	columns := make([][]tui.Row, len(words))
	for i, word := range words {
		columns[i] = tui.Inflections(in, word)
	}
	for r := range columns[0] {
		row := []string{columns[0][r].Name}
		for _, col := range columns {
			row = append(row, col[r].Value)
		}
		table.Append(row)
	}

	table.Render()
	_, err := cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
