// Package tui is the Bubble Tea frontend for the runner. Its Update
// goroutine owns the scheduler: every frame advances virtual time by the
// wall-clock delta, so the simulation, engine and key release timers all
// run on one goroutine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameStep caps how much virtual time a single frame may advance, so a
// suspended terminal does not replay seconds of simulation at once.
const maxFrameStep = 100 * time.Millisecond

// frameMsg is sent to advance the scheduler and redraw.
type frameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// frameStep returns the virtual time to advance for a frame arriving at now.
func frameStep(last, now time.Time) time.Duration {
	if last.IsZero() || !now.After(last) {
		return 0
	}
	return min(now.Sub(last), maxFrameStep)
}
