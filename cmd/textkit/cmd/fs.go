package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/msto63/textkit/foundation/utils/filex"
	"github.com/spf13/cobra"
)

func newFsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fs",
		Short: "Create, copy and delete files and directories",
		Long: `File system helpers. Parent directories are created as needed.

  touch <path>...          create files or update their modification time
  write <path> [text]...   append text (stdin when none) to a file
  rewrite <path> [text]... replace the content of an existing file
  cp <src> <dst>           copy a file, keeping its mode
  mkdir <path>...          create directories
  mkdir-p <path>...        create the parent directories of paths
  rm <path>...             delete files
  rmdir <path>...          delete directories recursively
  exists <path>...         print true or false per path`,
	}

	each := func(use, short string, fn func(e *filex.Editor, path string) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <path>...",
			Short: short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, path := range args {
					if err := fn(a.editor, path); err != nil {
						return err
					}
				}
				return nil
			},
		}
	}

	content := func(cmd *cobra.Command, args []string) (string, error) {
		if len(args) > 0 {
			return strings.Join(args, "\n") + "\n", nil
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	}

	cmd.AddCommand(
		each("touch", "Create files or update their modification time", (*filex.Editor).Touch),
		each("mkdir", "Create directories", (*filex.Editor).MakeDirectory),
		each("mkdir-p", "Create the parent directories of paths", (*filex.Editor).MakeParentDirectories),
		each("rm", "Delete files", (*filex.Editor).Delete),
		each("rmdir", "Delete directories recursively", (*filex.Editor).DeleteDirectory),
		&cobra.Command{
			Use:   "write <path> [text]...",
			Short: "Append text to a file",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := content(cmd, args[1:])
				if err != nil {
					return err
				}
				return a.editor.Write(args[0], text)
			},
		},
		&cobra.Command{
			Use:   "rewrite <path> [text]...",
			Short: "Replace the content of an existing file",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := content(cmd, args[1:])
				if err != nil {
					return err
				}
				return a.editor.Rewrite(args[0], text)
			},
		},
		&cobra.Command{
			Use:   "cp <src> <dst>",
			Short: "Copy a file",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.editor.Copy(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "exists <path>...",
			Short: "Print whether paths exist",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, path := range args {
					if len(args) > 1 {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", path, filex.Exists(path))
						continue
					}
					fmt.Fprintln(cmd.OutOrStdout(), filex.Exists(path))
				}
				return nil
			},
		},
	)

	return cmd
}
