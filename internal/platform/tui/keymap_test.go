package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	playing := core.GameState{}
	over := core.GameState{GameOver: true}

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		state    core.GameState
		want     core.Action
		wantQuit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, playing, core.ActionUp, false},
		{"w", runeKey('w'), playing, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, playing, core.ActionDown, false},
		{"a", runeKey('a'), playing, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, playing, core.ActionRight, false},
		{"p", runeKey('p'), playing, core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, playing, core.ActionPause, false},
		{"r playing", runeKey('r'), playing, core.ActionResume, false},
		{"r over", runeKey('r'), over, core.ActionRestart, false},
		{"q", runeKey('q'), playing, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, over, core.ActionQuit, true},
		{"unbound", runeKey('z'), playing, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := keys.Action(tt.msg, tt.state)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("Action = %v, %v; want %v, %v", got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.SetColor(0, 1, 'x', core.Color(200)) // Unknown colors fall back to default

	out := RenderScreen(s)
	if got := len(strings.Split(out, "\n")); got != 2 {
		t.Fatalf("lines = %d, want 2", got)
	}
	for _, want := range []string{"ab", "cd", "x"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
