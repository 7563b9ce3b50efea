package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/spectrena/sw/internal/log"
	"github.com/spectrena/sw/internal/output"
)

func newCdCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "cd <branch>",
		Short:   "Print a worktree path for shell scripting",
		GroupID: GroupWorktree,
		Args:    cobra.ExactArgs(1),
		Long: `Print the path of a worktree for shell scripting.

Use with shell command substitution: cd $(sw cd 007-login-flow)

Only the path goes to stdout; everything else goes to stderr, so the
substitution stays clean.`,
		Example: `  cd $(sw cd 007-login-flow)    # jump into the worktree
  sw cd --copy 007-login-flow   # copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			branch := args[0]

			m, err := newManager(ctx)
			if err != nil {
				return err
			}

			path := m.Path(branch)
			if _, err := os.Stat(path); err != nil {
				result, listErr := m.List(ctx)
				if listErr == nil {
					var names []string
					for _, row := range result.Rows {
						names = append(names, row.Branch)
					}
					if matches := fuzzy.Find(branch, names); len(matches) > 0 {
						return fmt.Errorf("no worktree for %q, did you mean %q?", branch, matches[0].Str)
					}
				}
				return fmt.Errorf("no worktree for %q (create one with: sw create %s)", branch, branch)
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(path); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				log.FromContext(ctx).Printf("Copied to clipboard\n")
			}

			out.Println(path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the path to the clipboard")

	return cmd
}
