// Package tui runs the shape games in a terminal with Bubble Tea, locally
// or over SSH, and shows the menu and scoreboard around them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is the logic clock the shape games are tuned for.
const defaultTickRate = 50

// TickMsg is sent to trigger a game simulation tick. Round tells apart the
// tick chains of successive games in one program, so a tick left over from
// a finished game cannot drive the next one.
type TickMsg struct {
	At    time.Time
	Round int
}

// tickCmd schedules the next simulation tick. The rate is ticks per second.
func tickCmd(tickRate, round int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Round: round}
	})
}
