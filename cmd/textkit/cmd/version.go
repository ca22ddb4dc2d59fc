package cmd

import (
	"fmt"

	"github.com/msto63/textkit/pkg/core/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "textkit v%s\n", info.Version)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
			for _, name := range version.Components() {
				fmt.Fprintf(out, "  %-11s %s\n", name+":", version.ComponentVersion(name))
			}
		},
	}
}
