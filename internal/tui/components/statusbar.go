package components

import (
	"strings"

	"github.com/theirongolddev/carerev/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. hints sit on the left;
// a non-empty warning replaces the right-hand info text.
func RenderStatusBar(width int, hints, info, warning string) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	right := base.Render(info + " ")
	if warning != "" {
		right = lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Bold(true).Render("! " + warning + " ")
	}
	left := base.Render(" " + hints)

	// Truncate the warning before it pushes the hints off-screen.
	avail := width - lipgloss.Width(left)
	if lipgloss.Width(right) > avail {
		right = lipgloss.NewStyle().MaxWidth(max(avail, 0)).Render(right)
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + base.Render(strings.Repeat(" ", padding)) + right
}

