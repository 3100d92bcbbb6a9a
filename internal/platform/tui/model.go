package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
	"github.com/vovakirdan/tui-runner/internal/events"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/sched"
)

// Options configures a terminal session.
type Options struct {
	Config  config.RunnerConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger     // nil discards
	Watcher *config.Watcher // optional; reloads apply on the next retry
}

// configMsg carries a reloaded configuration from the watcher.
type configMsg config.Update

// Model is the Bubble Tea model for a runner session.
type Model struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	watcher *config.Watcher

	sched  *sched.Scheduler
	queue  *events.Queue
	sim    *runner.Sim
	engine *engine.Engine
	canvas *Canvas
	screen *core.Screen

	keys KeyMap
	help help.Model

	last      time.Time
	countdown int
	loading   bool
	state     core.GameState
	notice    string
	quitting  bool
	err       error
}

// NewModel wires a scheduler, simulation and engine for one session.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := sched.New()
	q := &events.Queue{}
	sim := runner.New(opts.Config, s, q.Sink(), logger.WithPrefix("sim"))
	eng := engine.New(engine.ConfigFrom(opts.Config), sim, s, q.Sink(), logger.WithPrefix("engine"))
	canvas := NewCanvas(opts.Config)
	eng.AddRenderer(canvas)

	h := help.New()
	h.ShowAll = false

	return Model{
		cfg:       opts.Config,
		runtime:   opts.Runtime,
		logger:    logger,
		watcher:   opts.Watcher,
		sched:     s,
		queue:     q,
		sim:       sim,
		engine:    eng,
		canvas:    canvas,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:      NewKeyMap(opts.Config.Input.Scheme),
		help:      h,
		countdown: opts.Config.Timing.CountdownFrom,
		loading:   true,
	}
}

// Init starts the countdown and the frame loop.
func (m Model) Init() tea.Cmd {
	m.engine.Load()
	return tea.Batch(frameCmd(m.runtime.FrameRate), m.waitForConfig())
}

// waitForConfig blocks on the watcher for the next reload.
func (m Model) waitForConfig() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		u, ok := <-w.Updates
		if !ok {
			return nil
		}
		return configMsg(u)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		return m.handleFrame(time.Time(msg))

	case configMsg:
		return m.handleConfig(config.Update(msg))
	}

	return m, nil
}

// handleKey maps a key to signals. Terminals report no key releases, so
// each direction press re-arms a one-shot release timer on the scheduler.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionLeft:
		m.hold(core.DirLeft)
	case ActionRight:
		m.hold(core.DirRight)
	case ActionJump:
		m.engine.Handle(core.SignalJump)
	case ActionRetry:
		m.engine.Handle(core.SignalRetry)
	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	m.drainEvents()
	return m, nil
}

func releaseKind(d core.Direction) sched.Kind {
	return sched.Kind("release-" + d.String())
}

func (m Model) hold(d core.Direction) {
	eng := m.engine
	eng.Handle(d.StartSignal())
	m.sched.After(releaseKind(d), m.cfg.Input.HoldWindow, func() {
		eng.Handle(d.StopSignal())
	})
}

// handleFrame advances virtual time by the wall-clock delta and applies
// whatever the simulation emitted.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.sched.Advance(frameStep(m.last, now))
	m.last = now
	m.drainEvents()

	if m.err != nil {
		return m, tea.Quit
	}
	return m, frameCmd(m.runtime.FrameRate)
}

// drainEvents applies queued events until the queue stays empty.
func (m *Model) drainEvents() {
	for m.queue.Len() > 0 {
		for _, ev := range m.queue.Drain() {
			m.logger.Debug("event", "event", ev)
			m.apply(ev)
		}
	}
}

func (m *Model) apply(ev events.Event) {
	switch e := ev.(type) {
	case events.CountdownTick:
		m.countdown = e.Remaining

	case events.LoadComplete:
		m.loading = false
		if err := m.sim.Setup(m.cfg.Bounds()); err != nil {
			m.err = err
			return
		}
		m.engine.Start()

	case events.ScoreChanged:
		m.state.Score = e.Score
		m.state.Best = max(m.state.Best, e.Score)

	case events.GameOver:
		m.state.Over = true

	case events.RetryRequested:
		m.state.Over = false
		m.notice = ""
	}
}

func (m Model) handleConfig(u config.Update) (tea.Model, tea.Cmd) {
	if u.Err != nil {
		m.logger.Warn("config reload failed", "error", u.Err)
		m.notice = "config error, keeping current settings"
		return m, m.waitForConfig()
	}

	m.logger.Info("config reloaded", "gravity", u.Config.Physics.Gravity, "run_speed", u.Config.Player.RunSpeed)
	m.sim.SetTuning(u.Config)
	m.canvas.SetColors(u.Config)
	m.notice = "config reloaded, applies on retry"
	return m, m.waitForConfig()
}

// View renders the HUD, the field and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.runtime.ScreenW
	status := m.status()
	hud := renderScoreboard(m.state, status, m.notice, width)
	footer := helpStyle.Render(m.help.View(m.keys))

	fieldH := m.runtime.ScreenH - lipgloss.Height(hud) - lipgloss.Height(footer)
	m.screen.Resize(width, fieldH)
	m.canvas.Draw(m.screen)
	m.drawOverlay()

	return lipgloss.JoinVertical(lipgloss.Left, hud, RenderScreen(m.screen), footer)
}

func (m Model) status() string {
	switch {
	case m.loading:
		return "loading"
	case m.state.Over:
		return "game over"
	default:
		return m.engine.State().String()
	}
}

func (m Model) drawOverlay() {
	switch {
	case m.loading && m.countdown > 0:
		drawCenteredMessage(m.screen, fmt.Sprintf("Game engine starting in %d...", m.countdown), "", core.ColorYellow)
	case m.loading:
		drawCenteredMessage(m.screen, "Game engine starting...", "", core.ColorYellow)
	case m.state.Over:
		retry := m.keys.Retry.Help().Key
		drawCenteredMessage(m.screen, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press %s to retry", m.state.Score, retry), core.ColorRed)
	}
}

// State returns the scoreboard state.
func (m Model) State() core.GameState {
	return m.state
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for one session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
