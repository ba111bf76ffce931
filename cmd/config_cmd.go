// Package cmd implements the carerev CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/carerev/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if _, err := cfg.RateTable(); err != nil {
		return fmt.Errorf("applying rate overrides: %w", err)
	}

	// Status lines go to stderr so stdout stays valid TOML.
	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "# Config file: %s\n", configPath())
	if config.Exists(flagConfig) {
		fmt.Fprintln(errOut, "# Status: loaded")
	} else {
		fmt.Fprintln(errOut, "# Status: using defaults (no config file)")
	}

	if err := config.Encode(cmd.OutOrStdout(), cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
