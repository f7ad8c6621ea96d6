package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/timescale/intrinsic-names/internal/intrinsics/config"
	"github.com/timescale/intrinsic-names/internal/intrinsics/filter"
	"github.com/timescale/intrinsic-names/internal/intrinsics/logging"
	"github.com/timescale/intrinsic-names/internal/intrinsics/table"
)

// Commands carrying this annotation fail on an unreadable config instead of
// falling back to defaults.
const strictConfigAnnotation = "intrinsic-names/strict-config"

func buildRootCmd(ctx context.Context, tbl *table.Table) (*cobra.Command, error) {
	var configDir string
	var debug bool

	cmd := &cobra.Command{
		Use:   "intrinsic-names",
		Short: "List the LLVM AVX2 intrinsics",
		Long: `intrinsic-names prints every LLVM intrinsic whose name starts with
"` + filter.DefaultPrefix + `", one per line, in intrinsic ID order.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return exitWithCode(ExitInvalidParameters, err)
			}
			return nil
		},
		PersistentPreRunE: initCLI,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return listIntrinsics(cmd, tbl)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}
	cmd.SetContext(ctx)

	cmd.PersistentFlags().StringVar(&configDir, "config-dir", config.DefaultDir(), "config directory")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug")); err != nil {
		return nil, fmt.Errorf("failed to bind debug flag: %w", err)
	}

	cmd.AddCommand(buildVersionCmd())
	cmd.AddCommand(buildConfigCmd())

	return cmd, nil
}

// initCLI loads the config and starts logging. A broken config never stops
// the listing: unless the command is annotated strict, it logs a warning
// and continues with defaults.
func initCLI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		if cmd.Annotations[strictConfigAnnotation] == "true" {
			return err
		}

		debug := config.DefaultDebug
		if f := cmd.Flags().Lookup("debug"); f != nil && f.Changed {
			debug, _ = cmd.Flags().GetBool("debug")
		}
		if err := logging.Init(debug); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logging.Warn("Ignoring unreadable configuration, using defaults", zap.Error(err))
		return nil
	}

	if err := logging.Init(cfg.Debug); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Debug("CLI initialized",
		zap.String("config_dir", cfg.ConfigDir),
		zap.Bool("debug", cfg.Debug),
	)
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.Setup(config.Dir(cmd.Flags().Lookup("config-dir"))); err != nil {
		return nil, fmt.Errorf("failed to set up config: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func listIntrinsics(cmd *cobra.Command, tbl *table.Table) error {
	n, err := filter.Print(cmd.OutOrStdout(), filter.Matches(tbl, filter.DefaultPrefix))
	if err != nil {
		logging.Error("failed to write intrinsic names", zap.Error(err))
		return fmt.Errorf("failed to write intrinsic names: %w", err)
	}

	logging.Debug("Listed intrinsics",
		zap.String("prefix", filter.DefaultPrefix),
		zap.Int("table_size", tbl.Len()),
		zap.Int("matches", n),
	)
	return nil
}

// Execute runs the CLI against the generated intrinsic table.
func Execute(ctx context.Context) error {
	rootCmd, err := buildRootCmd(ctx, table.Default())
	if err != nil {
		return err
	}
	return rootCmd.Execute()
}
