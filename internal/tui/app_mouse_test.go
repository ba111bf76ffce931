package tui

import (
	"testing"

	"github.com/theirongolddev/carerev/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(components.Tabs)
	for active := range n {
		a := App{activeTab: active}
		pos := 0

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < n-1 {
				if got := a.tabAtX(pos); got != -1 {
					t.Fatalf("active=%d separator x=%d -> tab=%d, want -1", active, pos, got)
				}
				pos += len(components.TabSeparator)
			}
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Fatalf("x past last tab -> %d, want -1", got)
		}
	}
}

func TestMouseClickSwitchesTab(t *testing.T) {
	a := sized(newTestApp(), 140, 40)

	x := components.TabVisualWidth(components.Tabs[0], true) + len(components.TabSeparator) + 2
	a = update(a, tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.activeTab != 1 {
		t.Fatalf("activeTab = %d, want 1", a.activeTab)
	}
	if a.form.editing {
		t.Error("form should lose focus when leaving the calculator")
	}

	// Clicks below the tab bar are ignored.
	a = update(a, tea.MouseMsg{X: 2, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.activeTab != 1 {
		t.Fatalf("activeTab = %d after body click, want 1", a.activeTab)
	}
}

func TestMouseWheelMovesFormFocus(t *testing.T) {
	a := sized(newTestApp(), 140, 40)
	a = update(a, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	if a.form.focus != 1 {
		t.Fatalf("focus = %d, want 1", a.form.focus)
	}
	a = update(a, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	a = update(a, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	if want := len(a.form.inputs) - 1; a.form.focus != want {
		t.Fatalf("focus = %d, want wrap to %d", a.form.focus, want)
	}
}
