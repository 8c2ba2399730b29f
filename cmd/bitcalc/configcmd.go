package main

import (
	"fmt"

	"github.com/danmuck/bitcalc/internal/config"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "bitcalc.toml"

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or validate bitcalc config files.",
	}

	var (
		output string
		force  bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config template.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteTemplate(output, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote config template to %s\n", output)
			return nil
		},
	}
	initCmd.Flags().StringVar(&output, "output", defaultConfigPath, "Output path for the config template.")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file.")

	validateCmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a config file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := config.Load(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Validated config at %s\n", path)
			return nil
		},
	}

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}
