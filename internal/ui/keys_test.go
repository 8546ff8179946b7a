package ui

import (
	"testing"

	"github.com/atomicstack/tvgrid/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyMapResolve(t *testing.T) {
	keys := defaultKeyMap()
	cases := []struct {
		msg    tea.KeyMsg
		intent intent
		dir    state.Direction
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, intentMove, state.Right},
		{tea.KeyMsg{Type: tea.KeyLeft}, intentMove, state.Left},
		{tea.KeyMsg{Type: tea.KeyUp}, intentMove, state.Up},
		{tea.KeyMsg{Type: tea.KeyDown}, intentMove, state.Down},
		{tea.KeyMsg{Type: tea.KeyEnter}, intentActivate, 0},
		{tea.KeyMsg{Type: tea.KeyBackspace}, intentDismiss, 0},
		{tea.KeyMsg{Type: tea.KeyEsc}, intentDismiss, 0},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, intentQuit, 0},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, intentNone, 0},
		{tea.KeyMsg{Type: tea.KeyTab}, intentNone, 0},
	}
	for _, tc := range cases {
		in, dir := keys.resolve(tc.msg)
		if in != tc.intent {
			t.Fatalf("%s: expected intent %s, got %s", tc.msg, tc.intent, in)
		}
		if in == intentMove && dir != tc.dir {
			t.Fatalf("%s: expected direction %s, got %s", tc.msg, tc.dir, dir)
		}
	}
}

func TestKeyMapHelpListsEveryBinding(t *testing.T) {
	keys := defaultKeyMap()
	if n := len(keys.ShortHelp()); n != 7 {
		t.Fatalf("expected 7 short help bindings, got %d", n)
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 7 {
		t.Fatalf("expected 7 bindings in full help, got %d", total)
	}
}
