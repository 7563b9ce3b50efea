package main

import (
	"github.com/spf13/cobra"

	"github.com/spectrena/sw/internal/output"
)

func newMergeCmd() *cobra.Command {
	var keepBranch bool

	cmd := &cobra.Command{
		Use:     "merge <branch>",
		Short:   "Merge a finished feature branch and remove its worktree",
		GroupID: GroupWorktree,
		Args:    cobra.ExactArgs(1),
		Long: `Merge a feature branch into the default branch (main, or master),
always recording a merge commit, then remove its worktree and delete
the branch ref.

The worktree removal is not forced: uncommitted changes in it stop the
cleanup after the merge commit instead of being discarded.`,
		Example: `  sw merge 001-user-auth                # merge, remove worktree, delete branch
  sw merge 001-user-auth --keep-branch  # keep the branch ref around`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			m, err := newManager(ctx)
			if err != nil {
				return err
			}

			res, err := m.Merge(ctx, args[0], !keepBranch)
			if err != nil {
				return err
			}

			out.Printf("Merged %s into %s\n", res.Branch, res.Target)
			if res.RemovedPath != "" {
				out.Printf("Removed worktree at %s\n", res.RemovedPath)
			}
			if res.BranchDeleted {
				out.Printf("Deleted branch %s\n", res.Branch)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepBranch, "keep-branch", false, "Keep the branch ref after merging")

	return cmd
}
