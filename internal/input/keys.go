package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tvdeck/internal/focus"
)

// KeyMap binds physical keys to remote directions.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the arrow keys plus enter and space for Confirm.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Move right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "Select"),
		),
	}
}

// Direction maps msg to a remote direction. Keys outside the map report
// ok=false.
func (k KeyMap) Direction(msg tea.KeyMsg) (dir focus.Direction, ok bool) {
	switch {
	case key.Matches(msg, k.Up):
		return focus.Up, true
	case key.Matches(msg, k.Down):
		return focus.Down, true
	case key.Matches(msg, k.Left):
		return focus.Left, true
	case key.Matches(msg, k.Right):
		return focus.Right, true
	case key.Matches(msg, k.Confirm):
		return focus.Confirm, true
	default:
		return 0, false
	}
}

// Bindings lists the direction bindings in display order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Confirm}
}
