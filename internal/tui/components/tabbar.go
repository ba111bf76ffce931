package components

import (
	"strings"

	"github.com/theirongolddev/carerev/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs, in display order.
var Tabs = []Tab{
	{Name: "Calculator", Key: '1'},
	{Name: "Ramp", Key: '2'},
	{Name: "Breakdown", Key: '3'},
}

// TabSeparator sits between adjacent tabs.
const TabSeparator = " "

func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		return lipgloss.NewStyle().
			Foreground(t.AccentBright).
			Background(t.SurfaceBright).
			Bold(true).
			Padding(0, 1).
			Render(string(tab.Key) + " " + tab.Name)
	}

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pad := lipgloss.NewStyle().Background(t.Surface).Render(" ")
	return pad + keyStyle.Render(string(tab.Key)) + nameStyle.Render(" "+tab.Name) + pad
}

// TabVisualWidth returns the rendered width of a tab, used for mouse hit-boxes.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}
	sep := lipgloss.NewStyle().Background(t.Surface).Render(TabSeparator)

	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		Render(strings.Join(parts, sep))
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
