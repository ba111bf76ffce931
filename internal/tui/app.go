// Package tui provides the interactive Bubble Tea dashboard for carerev.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/carerev/internal/model"
	"github.com/theirongolddev/carerev/internal/pipeline"
	"github.com/theirongolddev/carerev/internal/tui/components"
	"github.com/theirongolddev/carerev/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Options configures a new App.
type Options struct {
	Defaults  model.Params // target of the reset key
	Initial   model.Params // starting values, defaults plus any flags
	Engine    *pipeline.Engine
	ConfigErr error // shown in the status bar when non-nil
	Log       zerolog.Logger
}

// App is the root Bubble Tea model.
type App struct {
	// Inputs and derived results
	params   model.Params
	defaults model.Params
	memo     *pipeline.Memo
	proj     pipeline.Projection

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	form      formState
	keys      keyMap
	help      help.Model

	configErr error
	log       zerolog.Logger
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5
)

// NewApp creates a new TUI app model. The form starts focused so the
// first keystrokes edit the patient count.
func NewApp(opts Options) App {
	a := App{
		params:    opts.Initial,
		defaults:  opts.Defaults,
		memo:      pipeline.NewMemo(opts.Engine),
		form:      newFormState(opts.Initial),
		keys:      newKeyMap(),
		help:      help.New(),
		configErr: opts.ConfigErr,
		log:       opts.Log,
	}
	a.form.styleInputs()
	a.form.editing = true
	a.form.focusField(0)
	a.styleHelp()
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(tea.EnableMouseCellMotion, a.form.inputs[a.form.focus].Cursor.BlinkCmd())
}

func (a *App) recompute() {
	before := a.memo.Computations()
	a.proj = a.memo.Get(a.params)
	if a.memo.Computations() != before {
		a.log.Debug().
			Int("patients", a.params.PatientCount).
			Float64("monthly", a.proj.Result.MonthlyRevenue).
			Msg("projection recomputed")
	}
}

func (a *App) styleHelp() {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	sepStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	a.help.Styles.ShortKey = keyStyle
	a.help.Styles.ShortDesc = descStyle
	a.help.Styles.ShortSeparator = sepStyle
	a.help.Styles.FullKey = keyStyle
	a.help.Styles.FullDesc = descStyle
	a.help.Styles.FullSeparator = sepStyle
	a.help.Styles.Ellipsis = sepStyle
}

func (a *App) reset() {
	a.params = a.defaults
	a.form.setValues(a.defaults)
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Leave room for the theme and warning text on the right.
		a.help.Width = max(msg.Width-30, 20)
		return a, nil

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Cursor blink and other input messages belong to the focused field.
	if a.form.editing {
		var cmd tea.Cmd
		i := a.form.focus
		a.form.inputs[i], cmd = a.form.inputs[i].Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}

	// Any key dismisses the help overlay.
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// The form captures typing while it has focus.
	if a.activeTab == 0 && a.form.editing {
		return a.updateForm(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Reset):
		a.reset()
	case key.Matches(msg, a.keys.Theme):
		theme.SetActive(theme.Next(theme.Active.Name))
		a.form.styleInputs()
		a.styleHelp()
	case key.Matches(msg, a.keys.Tab):
		if idx := components.TabIdxByKey([]rune(msg.String())[0]); idx >= 0 {
			a.activeTab = idx
		}
	case key.Matches(msg, a.keys.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case key.Matches(msg, a.keys.PrevTab):
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case key.Matches(msg, a.keys.Edit):
		a.activeTab = 0
		a.form.editing = true
		return a, a.form.focusField(a.form.focus)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == 0 && a.form.editing {
			return a, a.form.focusField(a.form.focus - 1)
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == 0 && a.form.editing {
			return a, a.form.focusField(a.form.focus + 1)
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		// The tab bar is the first line.
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
				if tab != 0 {
					a.form.blurAll()
				}
			}
		}
	}
	return a, nil
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  carerev needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusBar(w int) string {
	hints := a.help.ShortHelpView(a.keys.ShortHelp())
	if a.activeTab == 0 && a.form.editing {
		hints = a.help.ShortHelpView(a.keys.formShortHelp())
	}

	info := "theme: " + theme.Active.Name
	warning := ""
	if a.configErr != nil {
		warning = "config: " + a.configErr.Error()
	}
	return components.RenderStatusBar(w, hints, info, warning)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := a.statusBar(w)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderCalculatorTab(cw)
	case 1:
		content = a.renderRampTab(cw, contentH)
	case 2:
		content = a.renderBreakdownTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 {
		return ""
	}
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		if i < len(components.Tabs)-1 {
			pos += len(components.TabSeparator)
		}
	}
	return -1
}
