package components

import (
	"fmt"

	"github.com/theirongolddev/carerev/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns a color that warms as pct approaches full enrollment.
func ColorForPct(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.GreenBright
	case pct >= 0.5:
		return t.Accent
	case pct >= 0.25:
		return t.Yellow
	default:
		return t.Orange
	}
}

// FactorBar renders a labeled fill bar for a 0-1 fraction.
func FactorBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active
	pct = min(max(pct, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(string(ColorForPct(pct))),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(ColorForPct(pct)).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%4.0f%%", pct*100))
}
