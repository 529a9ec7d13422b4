package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg    *Config
	logger zerolog.Logger
}

func newRootCommand(cfg *Config) *cobra.Command {
	var configPath string
	a := &app{cfg: cfg, logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "mecalloc",
		Short: "Conflict-free placement selection for mobile-edge resource units",
		Long: `mecalloc reads a placement document (unit weights plus a binary
placement matrix), derives the conflict graph between placements and selects
a set of placements that share no resource unit, keeping the total energy
cost low.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := cfg.LoadFromFile(configPath); err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
			}
			a.logger = cfg.CreateLogger(cmd.ErrOrStderr())
			a.logger.Debug().Str("strategy", cfg.Strategy()).Int("delta", cfg.Delta()).Msg("configuration loaded")

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (optional)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cfg.bind(cmd.PersistentFlags(), keyLogLevel, "log-level")

	cmd.AddCommand(
		newAllocateCommand(a),
		newGenerateCommand(a),
		newInspectCommand(a),
	)

	return cmd
}
