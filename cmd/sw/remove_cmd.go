package main

import (
	"github.com/spf13/cobra"

	"github.com/spectrena/sw/internal/output"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove [branch]",
		Short:   "Remove a worktree",
		Aliases: []string{"rm"},
		GroupID: GroupWorktree,
		Args:    cobra.MaximumNArgs(1),
		Long: `Remove one worktree's working copy and registry entry.

The branch ref and the specs/ directory stay untouched. Without an
argument a menu of managed worktrees is shown. Worktrees with
uncommitted changes require typing "yes" before they are discarded.`,
		Example: `  sw remove 007-login-flow   # remove one worktree
  sw remove                  # pick from a menu`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			m, err := newManager(ctx)
			if err != nil {
				return err
			}

			branch := ""
			if len(args) == 1 {
				branch = args[0]
			}

			res, err := m.Remove(ctx, branch)
			if err != nil {
				return err
			}

			switch {
			case res.NoWorktrees:
				out.Println("No worktrees found")
			case res.Cancelled:
				out.Println("Cancelled, nothing removed")
			default:
				out.Printf("Removed worktree for %s, reclaimed %s\n", res.Branch, res.Reclaimed)
			}
			return nil
		},
	}

	return cmd
}
