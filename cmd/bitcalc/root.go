package main

import (
	"fmt"

	"github.com/danmuck/bitcalc/internal/config"
	"github.com/danmuck/bitcalc/internal/logging"
	"github.com/danmuck/bitcalc/internal/observability"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	configF   = "config"
	strictF   = "strict"
	logLevelF = "log-level"

	configUsage   = "Path to a bitcalc TOML config file."
	strictUsage   = "Reject bitcodes whose length is not a multiple of 4."
	logLevelUsage = "Log level: trace, debug, info, warn, error, disabled."
)

// app holds state resolved by the root command before any subcommand runs.
type app struct {
	cfgPath  string
	strict   bool
	logLevel string

	cfg    config.Config
	logger zerolog.Logger
}

func NewCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "bitcalc",
		Short:         "Decode, repair and evaluate 4-bit arithmetic bitcodes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, configF, "", configUsage)
	root.PersistentFlags().BoolVar(&a.strict, strictF, false, strictUsage)
	root.PersistentFlags().StringVar(&a.logLevel, logLevelF, "", logLevelUsage)

	root.AddCommand(
		newDecodeCmd(a),
		newTraceCmd(a),
		newServeCmd(a),
		newConfigCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		loaded, err := config.Load(a.cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed(strictF) {
		cfg.StrictLength = a.strict
	}
	if cmd.Flags().Changed(logLevelF) {
		cfg.LogLevel = a.logLevel
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("--%s: %w", logLevelF, err)
		}
	}
	a.cfg = cfg

	logCfg := logging.DefaultConfig(logging.ProfileRuntime)
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		logCfg.Level = lvl
	}
	logging.ApplyEnvOverrides(&logCfg)
	logCfg.Out = cmd.ErrOrStderr()
	logging.Apply(logCfg)

	a.logger = observability.WithApp("bitcalc").With().Str("cmd", cmd.Name()).Logger()
	log.Logger = a.logger
	return nil
}
