package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/tvdeck/internal/input"
)

// keyMap defines all keyboard bindings for the application. The embedded
// remote bindings are the ones routed to the focus controller.
type keyMap struct {
	input.KeyMap

	// Move only documents the arrow keys in the footer.
	Move key.Binding

	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	ToggleMute key.Binding
	Back       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		KeyMap: input.DefaultKeyMap(),

		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("←↑↓→", "Move"),
		),

		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleMute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Mute hero"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "Close"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Confirm, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Remote
		{k.Up, k.Down, k.Left, k.Right, k.Confirm},
		// General
		{k.ToggleMute, k.CycleTheme, k.Back, k.Help, k.Quit},
	}
}
