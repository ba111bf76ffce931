package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/carerev/internal/cli"
	"github.com/theirongolddev/carerev/internal/config"
	"github.com/theirongolddev/carerev/internal/logging"
	"github.com/theirongolddev/carerev/internal/model"
	"github.com/theirongolddev/carerev/internal/pipeline"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagLogFormat string
	flagLogLevel  string
	flagFormat    string
)

var rootCmd = &cobra.Command{
	Use:   "carerev",
	Short: "Medicare CCM & RPM revenue calculator",
	Long: "Project monthly and annual revenue for Chronic Care Management and\n" +
		"Remote Patient Monitoring programs from a clinic's patient panel.",
	SilenceUsage: true,
	RunE:         runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	pf.StringVar(&flagLogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVarP(&flagFormat, "format", "o", cli.FormatTable, "Output format: table, json or yaml")

	// String flags so "", "1e2" and "0x10" go through the same coercion as the form.
	for _, f := range model.Fields {
		pf.String(f.Key, "", f.Label)
	}
}

// inputs is everything a report command needs, resolved from config and flags.
type inputs struct {
	cfg    config.Config
	params model.Params
	engine *pipeline.Engine
	format string
	log    zerolog.Logger
}

// loadInputs is the shared setup path used by all commands.
func loadInputs(cmd *cobra.Command) (*inputs, error) {
	log := logging.Setup(flagLogFormat, flagLogLevel)

	format, err := cli.ParseFormat(flagFormat)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("path", configPath()).
		Bool("exists", config.Exists(flagConfig)).
		Str("theme", cfg.Appearance.Theme).
		Msg("config loaded")

	rates, err := cfg.RateTable()
	if err != nil {
		return nil, fmt.Errorf("applying rate overrides: %w", err)
	}
	for code, rate := range cfg.Rates {
		log.Debug().Str("code", code).Float64("rate", rate).Msg("rate override")
	}

	params := applyParamFlags(cmd, cfg.Defaults)
	log.Debug().Interface("params", params).Msg("parameters resolved")

	return &inputs{
		cfg:    cfg,
		params: params,
		engine: pipeline.NewEngine(rates),
		format: format,
		log:    log,
	}, nil
}

// applyParamFlags overlays explicitly set parameter flags on base.
func applyParamFlags(cmd *cobra.Command, base model.Params) model.Params {
	p := base
	for _, f := range model.Fields {
		flag := cmd.Flags().Lookup(f.Key)
		if flag == nil || !flag.Changed {
			continue
		}
		f.Apply(&p, flag.Value.String())
	}
	return p
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}
