package cmd

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/timescale/intrinsic-names/internal/intrinsics/config"
	"github.com/timescale/intrinsic-names/internal/intrinsics/util"
)

func buildConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:         "show",
		Short:       "Show current configuration",
		Long:        `Display the configuration read from ~/.config/intrinsic-names/config.yaml and INTRINSIC_NAMES_* variables`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{strictConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidateOutputFormat(output); err != nil {
				return exitWithCode(ExitInvalidParameters, err)
			}
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out := cmd.OutOrStdout()
			switch output {
			case "json":
				return util.SerializeToJSON(out, cfg)
			case "yaml":
				return util.SerializeToYAML(out, cfg)
			default:
				t := tablewriter.NewWriter(out)
				t.Header("PROPERTY", "VALUE")
				t.Append("debug", strconv.FormatBool(cfg.Debug))
				t.Append("config_dir", cfg.ConfigDir)
				return t.Render()
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")
	_ = cmd.RegisterFlagCompletionFunc("output", completeOutputFormats)

	return cmd
}

func buildConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect CLI configuration",
		Long:  `Inspect the CLI configuration. The file is edited by hand; this tool never writes it.`,
	}
	cmd.AddCommand(buildConfigShowCmd())
	return cmd
}
