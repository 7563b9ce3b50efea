package main

import (
	"github.com/spf13/cobra"

	"github.com/spectrena/sw/internal/output"
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create <branch>",
		Short:   "Create a worktree for a feature branch",
		GroupID: GroupWorktree,
		Args:    cobra.ExactArgs(1),
		Long: `Create a worktree for a numbered feature branch under the worktrees
directory.

If the branch already exists it is checked out into the new worktree;
otherwise branch and worktree are created together from the current HEAD.
The worktrees directory is added to .gitignore automatically.`,
		Example: `  sw create 007-login-flow     # new branch + worktree
  sw create 003-search         # attach existing branch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			m, err := newManager(ctx)
			if err != nil {
				return err
			}

			res, err := m.Create(ctx, args[0])
			if err != nil {
				return err
			}

			switch {
			case res.Skipped:
				out.Printf("Kept existing worktree at %s\n", res.Path)
			case res.NewBranch:
				out.Printf("Created branch %s and worktree at %s\n", res.Branch, res.Path)
			default:
				out.Printf("Created worktree for %s at %s\n", res.Branch, res.Path)
			}
			return nil
		},
	}

	return cmd
}
