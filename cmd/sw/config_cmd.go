package main

import (
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/spectrena/sw/internal/config"
	"github.com/spectrena/sw/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage repository configuration",
		GroupID: GroupConfig,
		Long: `Manage the per-repository configuration at .spectrena/config.toml.

Every setting has a default; the file is only needed to override them.`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		Example: `  sw config init           # create .spectrena/config.toml
  sw config init --force   # overwrite an existing file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			root, _, err := repoContext(ctx)
			if err != nil {
				return err
			}

			path, err := config.Init(root, force)
			if err != nil {
				return err
			}
			out.Printf("Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			root, cfg, err := repoContext(ctx)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			if _, err := os.Stat(config.Path(root)); err == nil {
				out.Printf("# %s\n", config.Path(root))
			} else {
				out.Println("# defaults (no config file)")
			}
			return toml.NewEncoder(out.Writer()).Encode(cfg)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
