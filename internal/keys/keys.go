package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection
	Select key.Binding
	Back   key.Binding

	// Pane focus
	FocusLeft  key.Binding
	FocusRight key.Binding

	// Pane geometry
	ShrinkPane  key.Binding
	GrowPane    key.Binding
	ToggleNav   key.Binding
	ResetLayout key.Binding
	NextListTab key.Binding
	Preferences key.Binding

	// Top-level tabs
	TabMailbox     key.Binding
	TabJobTracker  key.Binding
	TabSpreadsheet key.Binding

	// Command palette
	Command key.Binding

	// Help toggle
	Help key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open message"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close message"),
		),
		FocusLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "focus left pane"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "focus right pane"),
		),
		ShrinkPane: key.NewBinding(
			key.WithKeys("<", "shift+left"),
			key.WithHelp("<", "move handle left"),
		),
		GrowPane: key.NewBinding(
			key.WithKeys(">", "shift+right"),
			key.WithHelp(">", "move handle right"),
		),
		ToggleNav: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "collapse/expand nav"),
		),
		ResetLayout: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("=", "reset layout"),
		),
		NextListTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "all/unread"),
		),
		Preferences: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "layout preferences"),
		),
		TabMailbox: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "mailbox"),
		),
		TabJobTracker: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "job tracker"),
		),
		TabSpreadsheet: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "spreadsheet"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Back,
		k.ToggleNav, k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.NextListTab},
		{k.FocusLeft, k.FocusRight, k.ShrinkPane, k.GrowPane, k.ToggleNav, k.ResetLayout},
		{k.TabMailbox, k.TabJobTracker, k.TabSpreadsheet},
		{k.Command, k.Preferences, k.Help, k.Quit},
	}
}
