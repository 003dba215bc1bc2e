package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines global key bindings used across the TUI.
type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	CoarseUp key.Binding
	CoarseDn key.Binding
	Reset    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "next field"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "increase"),
		),
		CoarseDn: key.NewBinding(
			key.WithKeys("pgdown", "["),
			key.WithHelp("pgdn/[", "decrease (coarse)"),
		),
		CoarseUp: key.NewBinding(
			key.WithKeys("pgup", "]"),
			key.WithHelp("pgup/]", "increase (coarse)"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset defaults"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Decrease, k.Increase, k.CoarseDn, k.CoarseUp},
		{k.Reset, k.Help, k.Quit},
	}
}
