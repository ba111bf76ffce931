package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/carerev/internal/cli"
	"github.com/theirongolddev/carerev/internal/pipeline"
	"github.com/theirongolddev/carerev/internal/tui/components"
	"github.com/theirongolddev/carerev/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// rampChartLabels returns short x-axis labels ("M1".."M12").
func rampChartLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("M%d", i+1)
	}
	return labels
}

func (a App) renderRampTab(cw, contentH int) string {
	t := theme.Active
	ramp := a.proj.Ramp

	values := make([]float64, len(ramp))
	for i, pt := range ramp {
		values[i] = pt.Revenue
	}

	// Leave room for the legend and table cards below the chart.
	chartH := min(max(contentH-len(ramp)-10, 6), 14)

	var b strings.Builder
	b.WriteString(components.ContentCard(
		"Monthly Revenue During Enrollment Ramp",
		components.BarChart(values, rampChartLabels(len(values)), t.Blue, components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	if a.isCompactLayout() {
		b.WriteString(a.renderRampTable(cw))
		b.WriteString("\n")
		b.WriteString(a.renderRampLegend(cw))
		return b.String()
	}

	halves := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		a.renderRampTable(halves[0]),
		a.renderRampLegend(halves[1]),
	}))
	return b.String()
}

func (a App) renderRampLegend(width int) string {
	innerW := components.CardInnerWidth(width)
	labelW := 12
	barW := max(innerW-labelW-7, 5)

	var b strings.Builder
	for _, step := range pipeline.RampSchedule() {
		b.WriteString(components.FactorBar(step.Label(), step.Factor, labelW, barW))
		b.WriteString("\n")
	}
	return components.ContentCard("Enrollment Schedule", strings.TrimRight(b.String(), "\n"), width)
}

func (a App) renderRampTable(width int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	moneyStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)

	innerW := components.CardInnerWidth(width)
	monthW := 9
	pctW := 8
	revW := max(innerW-monthW-pctW-2, 12)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %*s %*s", monthW, "Month", pctW, "Enrolled", revW, "Revenue")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", monthW+pctW+revW+2)))
	b.WriteString("\n")

	total := 0.0
	for _, pt := range a.proj.Ramp {
		total += pt.Revenue
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s %*s ", monthW, pt.Month, pctW, cli.FormatFactor(pt.Factor))))
		b.WriteString(moneyStyle.Render(fmt.Sprintf("%*s", revW, cli.FormatMoney(pt.Revenue))))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(strings.Repeat("─", monthW+pctW+revW+2)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %*s ", monthW, "Year 1", pctW, "")))
	b.WriteString(moneyStyle.Bold(true).Render(fmt.Sprintf("%*s", revW, cli.FormatMoney(total))))

	return components.ContentCard("Ramp Schedule", b.String(), width)
}
