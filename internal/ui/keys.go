package ui

import (
	"github.com/atomicstack/tvgrid/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type intent int

const (
	intentNone intent = iota
	intentMove
	intentActivate
	intentDismiss
	intentQuit
)

func (i intent) String() string {
	switch i {
	case intentMove:
		return "move"
	case intentActivate:
		return "activate"
	case intentDismiss:
		return "dismiss"
	case intentQuit:
		return "quit"
	default:
		return "none"
	}
}

// keyMap binds remote-control keys to intents.
type keyMap struct {
	Right    key.Binding
	Left     key.Binding
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "row up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "row down")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Dismiss:  key.NewBinding(key.WithKeys("backspace", "esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Activate, k.Dismiss, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Activate, k.Dismiss, k.Quit},
	}
}

// resolve maps a key press to an intent. Unmapped keys yield intentNone.
func (k keyMap) resolve(msg tea.KeyMsg) (intent, state.Direction) {
	switch {
	case key.Matches(msg, k.Right):
		return intentMove, state.Right
	case key.Matches(msg, k.Left):
		return intentMove, state.Left
	case key.Matches(msg, k.Up):
		return intentMove, state.Up
	case key.Matches(msg, k.Down):
		return intentMove, state.Down
	case key.Matches(msg, k.Activate):
		return intentActivate, 0
	case key.Matches(msg, k.Dismiss):
		return intentDismiss, 0
	case key.Matches(msg, k.Quit):
		return intentQuit, 0
	}
	return intentNone, 0
}
