// Package autopilot plays the runner without a human: it shuttles between
// the canvas walls and jumps the obstacle from a standstill, retrying after
// every game over. It watches frames as an engine renderer and answers with
// input signals.
package autopilot

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/sched"
)

// KindRetry is the scheduler slot for the delayed retry after game over.
const KindRetry sched.Kind = "autopilot-retry"

// maxGroundedFrames gives up on a jump request that never left the floor.
const maxGroundedFrames = 10

// Controller accepts input signals. *engine.Engine satisfies it.
type Controller interface {
	Handle(core.Signal)
}

// Options tune the pilot.
type Options struct {
	Lead       float64       // stop and jump once the obstacle is this close
	Clearance  float64       // resume running once this far above the obstacle top
	RetryDelay time.Duration // pause on the game-over screen before retrying
}

// DefaultOptions suit the default canvas and timing.
func DefaultOptions() Options {
	return Options{
		Lead:       15,
		Clearance:  10,
		RetryDelay: time.Second,
	}
}

// Pilot is an engine renderer that drives a Controller.
type Pilot struct {
	ctrl  Controller
	sched *sched.Scheduler
	opts  Options

	dir      core.Direction // travel direction
	moving   bool           // a start signal for dir is in effect
	jumping  bool
	airborne bool
	grounded int // frames spent on the floor since the jump request
	retrying bool

	jumps int
}

// New creates a pilot heading right.
func New(ctrl Controller, s *sched.Scheduler, opts Options) *Pilot {
	return &Pilot{
		ctrl:  ctrl,
		sched: s,
		opts:  opts,
		dir:   core.DirRight,
	}
}

// Render reacts to one frame.
func (p *Pilot) Render(f runner.Frame) {
	if f.Over {
		p.scheduleRetry()
		return
	}

	if p.jumping {
		p.steerJump(f)
		return
	}

	// Let the player drop to the floor after a reset.
	if !f.OnFloor {
		return
	}

	p.turnAtWalls(f)

	gap := p.gap(f)
	if gap > 0 && gap <= p.opts.Lead {
		p.stop()
		p.ctrl.Handle(core.SignalJump)
		p.jumping, p.airborne, p.grounded = true, false, 0
		p.jumps++
		return
	}
	p.run()
}

// steerJump waits for the player to rise above the obstacle before
// running again, and ends the jump once it is back on the floor.
func (p *Pilot) steerJump(f runner.Frame) {
	if !f.OnFloor {
		p.airborne = true
		if !p.moving && f.Player.Bottom() < f.Obstacle.Top()-p.opts.Clearance {
			p.run()
		}
		return
	}
	p.grounded++
	if p.airborne || p.grounded > maxGroundedFrames {
		p.jumping = false
	}
}

// gap returns the distance from the player's leading edge to the obstacle
// ahead, or a negative value when the obstacle is behind.
func (p *Pilot) gap(f runner.Frame) float64 {
	if p.dir == core.DirRight {
		return f.Obstacle.Left() - f.Player.Right()
	}
	return f.Player.Left() - f.Obstacle.Right()
}

func (p *Pilot) turnAtWalls(f runner.Frame) {
	switch {
	case p.dir == core.DirRight && f.Player.Right() >= f.Bounds.W:
		p.stop()
		p.dir = core.DirLeft
	case p.dir == core.DirLeft && f.Player.Left() <= 0:
		p.stop()
		p.dir = core.DirRight
	}
}

func (p *Pilot) run() {
	if p.moving {
		return
	}
	p.ctrl.Handle(p.dir.StartSignal())
	p.moving = true
}

func (p *Pilot) stop() {
	if !p.moving {
		return
	}
	p.ctrl.Handle(p.dir.StopSignal())
	p.moving = false
}

func (p *Pilot) scheduleRetry() {
	if p.retrying {
		return
	}
	p.retrying = true
	p.moving, p.jumping, p.airborne = false, false, false

	p.sched.After(KindRetry, p.opts.RetryDelay, func() {
		p.retrying = false
		p.dir = core.DirRight
		p.ctrl.Handle(core.SignalRetry)
	})
}

// Jumps returns the number of jumps the pilot has attempted.
func (p *Pilot) Jumps() int {
	return p.jumps
}
