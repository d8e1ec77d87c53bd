// Package tui provides the Bubble Tea host for the life universe.
// It handles the terminal UI loop, input mapping, the runs board, and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameRate is how often the model wakes up to apply input and, when
// running, advance generations. The generation rate is paced separately.
const frameRate = 30

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(rate int) tea.Cmd {
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
