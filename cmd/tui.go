package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/theirongolddev/carerev/internal/config"
	"github.com/theirongolddev/carerev/internal/logging"
	"github.com/theirongolddev/carerev/internal/pipeline"
	"github.com/theirongolddev/carerev/internal/tui"
	"github.com/theirongolddev/carerev/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive calculator dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// A broken config file must not keep the dashboard from starting;
	// the error is shown in the status bar instead.
	cfg, cfgErr := config.Load(flagConfig)
	rates, err := cfg.RateTable()
	if err != nil {
		cfgErr = fmt.Errorf("applying rate overrides: %w", err)
		rates = config.DefaultRates()
	}
	if cfgErr == nil && !slices.Contains(theme.Names(), cfg.Appearance.Theme) {
		cfgErr = fmt.Errorf("unknown theme %q (want one of %s)", cfg.Appearance.Theme, strings.Join(theme.Names(), ", "))
	}
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Defaults:  cfg.Defaults,
		Initial:   applyParamFlags(cmd, cfg.Defaults),
		Engine:    pipeline.NewEngine(rates),
		ConfigErr: cfgErr,
		Log:       logging.Discard(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

