package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/carerev/internal/cli"
	"github.com/theirongolddev/carerev/internal/model"
	"github.com/theirongolddev/carerev/internal/tui/components"
	"github.com/theirongolddev/carerev/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	formLabelWidth = 30
	formInputWidth = 12
	formCardWidth  = formLabelWidth + formInputWidth + 8
)

// formState tracks the calculator inputs, one per model.Fields entry.
type formState struct {
	inputs  []textinput.Model
	focus   int
	editing bool
}

func newFormState(p model.Params) formState {
	inputs := make([]textinput.Model, len(model.Fields))
	for i, f := range model.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 16
		ti.Width = formInputWidth
		ti.Placeholder = "0"
		ti.SetValue(f.Format(p))
		ti.CursorEnd()
		inputs[i] = ti
	}
	return formState{inputs: inputs}
}

// styleInputs re-applies theme colors; called after a theme change.
func (f *formState) styleInputs() {
	t := theme.Active
	for i := range f.inputs {
		f.inputs[i].TextStyle = lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright)
		f.inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.SurfaceBright)
		f.inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(t.AccentBright)
	}
}

// setValues overwrites every input from p, e.g. after a reset.
func (f *formState) setValues(p model.Params) {
	for i, fld := range model.Fields {
		f.inputs[i].SetValue(fld.Format(p))
		f.inputs[i].CursorEnd()
	}
}

func (f *formState) focusField(i int) tea.Cmd {
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n
	for j := range f.inputs {
		if j == f.focus {
			continue
		}
		f.inputs[j].Blur()
	}
	return f.inputs[f.focus].Focus()
}

func (f *formState) blurAll() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.editing = false
}

// updateForm handles a key while the form has focus.
func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Leave):
		a.form.blurAll()
		return a, nil
	case key.Matches(msg, a.keys.Next):
		return a, a.form.focusField(a.form.focus + 1)
	case key.Matches(msg, a.keys.Prev):
		return a, a.form.focusField(a.form.focus - 1)
	}

	i := a.form.focus
	before := a.form.inputs[i].Value()

	var cmd tea.Cmd
	a.form.inputs[i], cmd = a.form.inputs[i].Update(msg)

	if v := a.form.inputs[i].Value(); v != before {
		model.Fields[i].Apply(&a.params, v)
		a.recompute()
	}
	return a, cmd
}

func (a App) renderForm(width int) string {
	t := theme.Active

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	focusLabelStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	labelW := min(formLabelWidth, max(components.CardInnerWidth(width)-formInputWidth-3, 10))

	var b strings.Builder
	section := ""
	for i, f := range model.Fields {
		if f.Section != section {
			if section != "" {
				b.WriteString("\n")
			}
			section = f.Section
			b.WriteString(sectionStyle.Render(section))
			b.WriteString("\n")
		}

		focused := a.form.editing && i == a.form.focus
		marker := space.Render("  ")
		ls := labelStyle
		if focused {
			marker = markerStyle.Render("▸ ")
			ls = focusLabelStyle
		}
		b.WriteString(marker)
		b.WriteString(ls.Render(fmt.Sprintf("%-*s", labelW, truncStr(f.Label, labelW))))
		b.WriteString(space.Render(" "))
		if focused {
			b.WriteString(a.form.inputs[i].View())
		} else {
			b.WriteString(valueStyle.Render(a.form.inputs[i].Value()))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) resultMetrics() []components.Metric {
	r := a.proj.Result
	return []components.Metric{
		{Label: "CCM Patients", Value: cli.FormatNumber(int64(r.CCMPatients)), Delta: cli.FormatPercent(a.params.CCMParticipation) + " enrolled"},
		{Label: "RPM Patients", Value: cli.FormatNumber(int64(r.RPMPatients)), Delta: cli.FormatPercent(a.params.RPMParticipation) + " enrolled"},
		{Label: "Monthly Total", Value: cli.FormatMoney(r.MonthlyRevenue), Delta: cli.FormatMoneyShort(r.AnnualRevenue) + " / year"},
		{Label: "CCM Revenue", Value: cli.FormatMoney(r.CCMRevenue), Delta: "per month"},
		{Label: "RPM Revenue", Value: cli.FormatMoney(r.RPMRevenue), Delta: "per month"},
		{Label: "Annual Revenue", Value: cli.FormatMoney(r.AnnualRevenue), Delta: "steady state x12"},
	}
}

func (a App) renderResults(width int) string {
	t := theme.Active
	metrics := a.resultMetrics()

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics[:3], width))
	b.WriteString("\n")
	b.WriteString(components.MetricCardRow(metrics[3:], width))
	b.WriteString("\n")

	values := make([]float64, len(a.proj.Ramp))
	yearOne := 0.0
	for i, pt := range a.proj.Ramp {
		values[i] = pt.Revenue
		yearOne += pt.Revenue
	}
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	body := components.Sparkline(values, t.Blue) +
		mutedStyle.Render("  year one with ramp-up: ") +
		lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).Render(cli.FormatMoney(yearOne))
	b.WriteString(components.ContentCard("12-Month Ramp", body, width))
	return b.String()
}

func (a App) renderCalculatorTab(cw int) string {
	if a.isCompactLayout() {
		var b strings.Builder
		b.WriteString(components.FocusCard("Inputs", a.renderForm(cw), cw, a.form.editing))
		b.WriteString("\n")
		b.WriteString(a.renderResults(cw))
		return b.String()
	}

	formW := formCardWidth
	resultW := cw - formW
	return components.CardRow([]string{
		components.FocusCard("Inputs", a.renderForm(formW), formW, a.form.editing),
		a.renderResults(resultW),
	})
}
