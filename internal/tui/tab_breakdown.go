package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/carerev/internal/cli"
	"github.com/theirongolddev/carerev/internal/model"
	"github.com/theirongolddev/carerev/internal/tui/components"
	"github.com/theirongolddev/carerev/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderProgramTable(program model.Program, enrolled int, total float64, cw int) string {
	t := theme.Active

	innerW := components.CardInnerWidth(cw)
	codeW, patW, rateW, amtW := 6, 9, 9, 12
	fixed := codeW + patW + rateW + amtW + 4
	descW := max(innerW-fixed, 12)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	codeStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface)
	moneyStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %-*s %*s %*s %*s",
		codeW, "Code", descW, "Service", patW, "Patients", rateW, "Rate", amtW, "Amount")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", fixed+descW)))
	b.WriteString("\n")

	for _, it := range a.proj.LineItems {
		if it.Program != program {
			continue
		}
		b.WriteString(codeStyle.Render(fmt.Sprintf("%-*s ", codeW, it.Code)))
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s %*s %*s ",
			descW, truncStr(it.Description, descW),
			patW, cli.FormatUnits(it.Patients, it.Units),
			rateW, cli.FormatCurrency(it.Rate))))
		b.WriteString(moneyStyle.Render(fmt.Sprintf("%*s", amtW, cli.FormatMoney(it.Amount))))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(strings.Repeat("─", fixed+descW)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", fixed+descW-amtW, "TOTAL")))
	b.WriteString(moneyStyle.Bold(true).Render(fmt.Sprintf("%*s", amtW, cli.FormatMoney(total))))

	title := fmt.Sprintf("%s  %s enrolled", program, cli.FormatNumber(int64(enrolled)))
	return components.ContentCard(title, b.String(), cw)
}

func (a App) renderBreakdownTab(cw int) string {
	r := a.proj.Result

	var b strings.Builder
	b.WriteString(a.renderProgramTable(model.ProgramCCM, r.CCMPatients, r.CCMRevenue, cw))
	b.WriteString("\n")
	b.WriteString(a.renderProgramTable(model.ProgramRPM, r.RPMPatients, r.RPMRevenue, cw))
	b.WriteString("\n")
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Total Monthly", Value: cli.FormatMoney(r.MonthlyRevenue)},
		{Label: "Annual", Value: cli.FormatMoney(r.AnnualRevenue)},
	}, cw))
	return b.String()
}
