package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the dashboard bindings. It implements help.KeyMap.
type keyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Edit      key.Binding
	Leave     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Tab       key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Reset     key.Binding
	Theme     key.Binding
	ForceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Edit:      key.NewBinding(key.WithKeys("enter", "e", "i"), key.WithHelp("enter", "edit inputs")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave form")),
		Next:      key.NewBinding(key.WithKeys("tab", "down", "enter"), key.WithHelp("tab/↓", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev field")),
		Tab:       key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "switch tab")),
		NextTab:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev tab")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset to defaults")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle theme")),
	}
}

// ShortHelp is shown in the status bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Tab, k.Edit, k.Reset, k.Quit}
}

// FullHelp is shown in the help overlay, one column per group.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.NextTab, k.PrevTab},
		{k.Edit, k.Next, k.Prev, k.Leave},
		{k.Reset, k.Theme, k.Help, k.Quit, k.ForceQuit},
	}
}

// formShortHelp is the status bar hint while typing into the form.
func (k keyMap) formShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Leave, k.ForceQuit}
}
