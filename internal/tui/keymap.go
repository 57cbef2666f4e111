package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Tabs
	NextTab key.Binding
	PrevTab key.Binding

	// Filters
	NextMonth    key.Binding
	PrevMonth    key.Binding
	NextYear     key.Binding
	PrevYear     key.Binding
	ClearFilters key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous view"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "next month"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "previous month"),
		),
		NextYear: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "next year"),
		),
		PrevYear: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "previous year"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all periods"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.NextMonth, k.NextYear, k.ClearFilters, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.NextMonth, k.PrevMonth, k.NextYear, k.PrevYear},
		{k.ClearFilters, k.Help, k.Quit},
	}
}
