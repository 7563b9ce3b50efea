package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spectrena/sw/internal/output"
	"github.com/spectrena/sw/internal/scaffold"
)

func newNewCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "new <description>...",
		Short:   "Scaffold a new numbered feature",
		GroupID: GroupFeature,
		Args:    cobra.MinimumNArgs(1),
		Long: `Create a new feature from a free-form description: allocate the next
feature number, create and check out branch NNN-slug, create the
specs/NNN-slug/ directory and seed spec.md from the template.

The number is one past the highest found in the specs directory or the
local branches, so numbers are never recycled.`,
		Example: `  sw new "Add OAuth2 login flow"      # creates 004-add-oauth2-login
  sw new user dashboard --json        # JSON for agent tooling`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			root, cfg, err := repoContext(ctx)
			if err != nil {
				return err
			}

			feature, err := scaffold.CreateFeature(ctx, root, strings.Join(args, " "), cfg)
			if err != nil {
				return err
			}

			if jsonOutput {
				return json.NewEncoder(out.Writer()).Encode(feature)
			}
			out.Printf("BRANCH_NAME: %s\n", feature.Branch)
			out.Printf("SPEC_FILE: %s\n", feature.SpecFile)
			out.Printf("FEATURE_NUM: %s\n", feature.Number)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
