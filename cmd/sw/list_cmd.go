package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/spectrena/sw/internal/output"
	"github.com/spectrena/sw/internal/ui/static"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List managed worktrees",
		Aliases: []string{"ls"},
		GroupID: GroupWorktree,
		Args:    cobra.NoArgs,
		Long: `List all managed worktrees with their status and disk usage.

Status is derived from git's worktree registry and the branch refs:
active (both present), stale (branch deleted) or orphaned (directory
unknown to git). Dirty worktrees are marked with *.`,
		Example: `  sw list          # table with status and sizes
  sw list --json   # machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			m, err := newManager(ctx)
			if err != nil {
				return err
			}

			result, err := m.List(ctx)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			if len(result.Rows) == 0 {
				out.Println("No worktrees found")
				return nil
			}

			var rows [][]string
			for _, row := range result.Rows {
				branch := row.Branch
				if row.Current {
					branch += " (current)"
				}
				rows = append(rows, static.WorktreeRow(branch, string(row.Status), row.Size, row.Path, row.Dirty))
			}
			out.Print(static.RenderTable([]string{"BRANCH", "STATUS", "SIZE", "PATH"}, rows))
			out.Printf("%d worktree(s), %s total\n", len(result.Rows), result.TotalSize)

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
