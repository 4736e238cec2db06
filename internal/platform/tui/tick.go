// Package tui runs a game in the terminal with Bubble Tea.
// Bubble Tea's update loop is the single timeline every game task runs
// on: ticks, key input and window events are handled one at a time.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step.
type TickMsg time.Time

// tickCmd schedules the next tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
