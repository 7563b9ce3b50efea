package main

import (
	"github.com/spf13/cobra"

	"github.com/spectrena/sw/internal/output"
	"github.com/spectrena/sw/internal/ui/static"
	"github.com/spectrena/sw/internal/ui/styles"
)

func newCleanupCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "cleanup",
		Short:   "Remove stale and orphaned worktrees",
		GroupID: GroupWorktree,
		Args:    cobra.NoArgs,
		Long: `Scan for worktrees whose branch was deleted (stale) and directories
under the worktrees directory that git no longer tracks (orphaned), then
remove them after a single confirmation.

A failing candidate (e.g. a locked worktree) is skipped; the rest of the
batch still runs. Branch refs are never deleted.`,
		Example: `  sw cleanup             # scan, confirm once, remove
  sw cleanup --dry-run   # show candidates, change nothing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			m, err := newManager(ctx)
			if err != nil {
				return err
			}

			report, err := m.CleanupStale(ctx, dryRun)
			if err != nil {
				return err
			}

			if len(report.Candidates) == 0 {
				out.Println("Nothing to clean up")
				return nil
			}

			if report.DryRun {
				var rows [][]string
				for _, c := range report.Candidates {
					name := c.Name
					if c.Dirty {
						name += "*"
					}
					rows = append(rows, []string{name, styles.Status(string(c.Status)), c.Size, c.Path})
				}
				out.Print(static.RenderTable([]string{"WORKTREE", "STATUS", "SIZE", "PATH"}, rows))
				out.Printf("%d candidate(s); run without --dry-run to remove\n", len(report.Candidates))
				return nil
			}

			if report.Cancelled {
				out.Println("Cancelled, nothing removed")
				return nil
			}

			out.Printf("Removed %d, skipped %d, reclaimed %s\n",
				len(report.Removed), len(report.Skipped), report.Reclaimed)
			for _, name := range report.Skipped {
				out.Printf("  skipped %s (try: git worktree remove --force %s)\n", name, m.Path(name))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Show candidates without removing anything")

	return cmd
}
