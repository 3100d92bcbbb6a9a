// Package engine implements the lifecycle controller: a startup countdown
// gate followed by a fixed-cadence main tick that steps the simulation and
// hands each frame to the renderers.
package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/events"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/sched"
)

// Scheduler task kinds owned by the engine.
const (
	KindTick      sched.Kind = "tick"
	KindCountdown sched.Kind = "countdown"
)

// State is the engine lifecycle state.
type State int

const (
	StateIdle    State = iota // Load not called
	StateLoading              // countdown running
	StateStopped              // loaded, no tick driver
	StateActive               // tick driver running
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateStopped:
		return "stopped"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// Simulation is the part of runner.Sim the engine drives.
type Simulation interface {
	Tick()
	Frame() runner.Frame
	Over() bool
	Retry() bool
	Handle(core.Signal)
}

// Renderer receives one frame per main tick, after the simulation step.
type Renderer interface {
	Render(runner.Frame)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(runner.Frame)

// Render calls f.
func (f RenderFunc) Render(frame runner.Frame) { f(frame) }

// Config holds engine cadences.
type Config struct {
	Tick          time.Duration // main tick interval
	Countdown     time.Duration // countdown step interval
	CountdownFrom int           // first value announced by the countdown
}

// ConfigFrom extracts engine settings from the runner configuration.
func ConfigFrom(cfg config.RunnerConfig) Config {
	return Config{
		Tick:          cfg.Timing.Tick,
		Countdown:     cfg.Timing.Countdown,
		CountdownFrom: cfg.Timing.CountdownFrom,
	}
}

// Engine owns the main tick task. Like the simulation, it must only be
// used from the scheduler's goroutine.
type Engine struct {
	cfg       Config
	sim       Simulation
	sched     *sched.Scheduler
	sink      events.Sink
	logger    *log.Logger
	renderers []Renderer

	state     State
	loaded    chan struct{}
	remaining int
	ticks     uint64
}

// New creates an idle engine. A nil logger discards output.
func New(cfg Config, sim Simulation, s *sched.Scheduler, sink events.Sink, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		cfg:    cfg,
		sim:    sim,
		sched:  s,
		sink:   sink,
		logger: logger,
	}
}

// AddRenderer registers r to receive every frame.
func (e *Engine) AddRenderer(r Renderer) {
	e.renderers = append(e.renderers, r)
}

// Load starts the countdown gate. Each countdown step emits
// CountdownTick with the remaining count; the step after the last one emits
// LoadComplete and closes the returned channel. Later calls return the same
// channel without restarting the countdown.
func (e *Engine) Load() <-chan struct{} {
	if e.loaded != nil {
		return e.loaded
	}
	e.loaded = make(chan struct{})
	e.remaining = e.cfg.CountdownFrom
	e.state = StateLoading
	e.logger.Info("loading", "countdown", e.remaining, "step", e.cfg.Countdown)

	e.sched.Every(KindCountdown, e.cfg.Countdown, e.countdown)
	return e.loaded
}

func (e *Engine) countdown() {
	if e.remaining > 0 {
		e.sink.Emit(events.CountdownTick{Remaining: e.remaining})
		e.remaining--
		return
	}

	e.sched.Cancel(KindCountdown)
	if e.state == StateLoading {
		e.state = StateStopped
	}
	close(e.loaded)
	e.logger.Info("load complete")
	e.sink.Emit(events.LoadComplete{})
}

// Loaded reports whether the countdown has finished.
func (e *Engine) Loaded() bool {
	if e.loaded == nil {
		return false
	}
	select {
	case <-e.loaded:
		return true
	default:
		return false
	}
}

// Start begins the main tick. Any previous tick driver is cancelled first,
// so calling Start while active never runs two drivers.
func (e *Engine) Start() {
	e.sched.Every(KindTick, e.cfg.Tick, e.tick)
	if e.state != StateActive {
		e.logger.Info("engine started", "tick", e.cfg.Tick)
	}
	e.state = StateActive
}

// Stop cancels the main tick. It does nothing unless the engine is active.
func (e *Engine) Stop() {
	if e.state != StateActive {
		return
	}
	e.sched.Cancel(KindTick)
	e.state = StateStopped
	e.logger.Info("engine stopped", "ticks", e.ticks)
}

func (e *Engine) tick() {
	e.ticks++
	e.sim.Tick()

	frame := e.sim.Frame()
	for _, r := range e.renderers {
		r.Render(frame)
	}

	if e.sim.Over() {
		e.Stop()
	}
}

// Retry resets a finished game and resumes the tick if the engine was
// stopped. Returns false when the simulation is not over.
func (e *Engine) Retry() bool {
	if !e.sim.Retry() {
		return false
	}
	if e.state == StateStopped {
		e.Start()
	}
	return true
}

// Handle routes an input signal. Retry goes through the engine so the tick
// resumes; everything else goes straight to the simulation.
func (e *Engine) Handle(sig core.Signal) {
	if sig == core.SignalRetry {
		e.Retry()
		return
	}
	e.sim.Handle(sig)
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Active reports whether the tick driver is running.
func (e *Engine) Active() bool {
	return e.state == StateActive
}

// Ticks returns the number of main ticks run so far.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}
