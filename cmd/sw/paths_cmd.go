package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/spectrena/sw/internal/git"
	"github.com/spectrena/sw/internal/output"
	"github.com/spectrena/sw/internal/scaffold"
)

func newPathsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "paths",
		Short:   "Print the standard paths for the current feature",
		GroupID: GroupFeature,
		Args:    cobra.NoArgs,
		Long: `Print the standard file locations for the feature on the current
branch (spec, plan, tasks, research, contracts). Fails when the current
branch is not a numbered feature branch.`,
		Example: `  sw paths           # key-value output
  sw paths --json    # JSON for agent tooling`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			root, cfg, err := repoContext(ctx)
			if err != nil {
				return err
			}
			branch, err := git.CurrentBranch(ctx, root)
			if err != nil {
				return err
			}

			paths, err := scaffold.FeaturePaths(root, branch, cfg)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(paths)
			}
			out.Printf("REPO_ROOT: %s\n", paths.RepoRoot)
			out.Printf("CURRENT_BRANCH: %s\n", paths.CurrentBranch)
			out.Printf("FEATURE_DIR: %s\n", paths.FeatureDir)
			out.Printf("FEATURE_SPEC: %s\n", paths.FeatureSpec)
			out.Printf("IMPL_PLAN: %s\n", paths.ImplPlan)
			out.Printf("TASKS: %s\n", paths.Tasks)
			out.Printf("RESEARCH: %s\n", paths.Research)
			out.Printf("DATA_MODEL: %s\n", paths.DataModel)
			out.Printf("QUICKSTART: %s\n", paths.Quickstart)
			out.Printf("CONTRACTS_DIR: %s\n", paths.ContractsDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
