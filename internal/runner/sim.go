// Package runner implements the runner simulation: a player rectangle that
// falls under gravity, runs left and right, jumps over a single static
// obstacle and scores one point for every jump that carries it across.
//
// The simulation owns no goroutines. Its movement, ascent and landing
// drivers are periodic tasks on a sched.Scheduler, and its main step is
// Tick, which the engine calls on its own cadence. All of them run on the
// scheduler's goroutine.
package runner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/events"
	"github.com/vovakirdan/tui-runner/internal/physics"
	"github.com/vovakirdan/tui-runner/internal/sched"
)

// Scheduler task kinds owned by the simulation.
const (
	KindMove    sched.Kind = "move"
	KindAscent  sched.Kind = "jump-ascent"
	KindLanding sched.Kind = "jump-landing"
)

// Phase is the simulation state.
type Phase int

const (
	PhaseIdle Phase = iota // before Setup
	PhaseRunning
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Sim is the simulation core.
type Sim struct {
	cfg     config.RunnerConfig
	pending *config.RunnerConfig // tuning waiting for the next retry
	phys    physics.Physics
	sched   *sched.Scheduler
	sink    events.Sink
	logger  *log.Logger

	bounds   core.Bounds
	phase    Phase
	player   Player
	obstacle core.Rect
	score    int

	movingLeft  bool
	movingRight bool
	heading     core.Direction // winning latch, last pressed

	wasLeftOfObstacle bool // recorded when the current jump started
	airborne          bool // landing poll has seen the player leave the floor
}

// New creates a simulation in the Idle phase. A nil logger discards output.
func New(cfg config.RunnerConfig, s *sched.Scheduler, sink events.Sink, logger *log.Logger) *Sim {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sim := &Sim{
		sched:  s,
		sink:   sink,
		logger: logger,
	}
	sim.apply(cfg)
	sim.player = NewPlayer(cfg.Player)
	return sim
}

func (s *Sim) apply(cfg config.RunnerConfig) {
	s.cfg = cfg
	s.phys = physics.New(cfg.Physics.Gravity)
}

// Setup establishes the canvas bounds and enters the Running phase.
// Calling it again after a successful setup has no effect.
func (s *Sim) Setup(b core.Bounds) error {
	if !b.Valid() {
		return fmt.Errorf("runner: invalid canvas bounds %vx%v", b.W, b.H)
	}
	if s.phase != PhaseIdle {
		return nil
	}
	s.bounds = b
	s.player = NewPlayer(s.cfg.Player)
	s.obstacle = ObstacleFor(b, s.cfg.Obstacle)
	s.phase = PhaseRunning
	s.logger.Info("simulation set up", "width", b.W, "height", b.H, "obstacle", s.obstacle)
	return nil
}

// Tick advances the simulation by one main step: gravity, obstacle
// placement, clamping and collision, in that order. Tick before Setup is a
// contract violation and panics. Tick while over does nothing.
func (s *Sim) Tick() {
	switch s.phase {
	case PhaseIdle:
		panic("runner: Tick called before Setup")
	case PhaseOver:
		return
	}

	s.player.OffsetY += s.phys.Gravity
	s.obstacle = ObstacleFor(s.bounds, s.cfg.Obstacle)
	s.clamp()

	if s.player.Rect().Intersects(s.obstacle) {
		s.gameOver()
	}
}

func (s *Sim) clamp() {
	r := s.player.Rect().ClampToBounds(s.bounds)
	s.player.OffsetX, s.player.OffsetY = r.X, r.Y
}

func (s *Sim) floor() float64 {
	return s.bounds.H - s.player.Height
}

func (s *Sim) onFloor() bool {
	return s.player.OffsetY == s.floor()
}

func (s *Sim) leftOfObstacle() bool {
	return s.player.Rect().Right() < s.obstacle.Left()
}

func (s *Sim) gameOver() {
	s.phase = PhaseOver
	s.sched.Cancel(KindMove)
	s.sched.Cancel(KindAscent)
	s.sched.Cancel(KindLanding)
	s.movingLeft, s.movingRight = false, false
	s.heading = core.DirNone

	s.logger.Info("game over", "score", s.score, "player", s.player.Rect())
	s.sink.Emit(events.GameOver{Score: s.score})
}

// Handle dispatches an input signal.
func (s *Sim) Handle(sig core.Signal) {
	switch sig {
	case core.SignalMoveLeftStart:
		s.StartMoveLeft()
	case core.SignalMoveLeftStop:
		s.StopMoveLeft()
	case core.SignalMoveRightStart:
		s.StartMoveRight()
	case core.SignalMoveRightStop:
		s.StopMoveRight()
	case core.SignalJump:
		s.Jump()
	case core.SignalRetry:
		s.Retry()
	}
}

// StartMoveLeft latches leftward movement.
func (s *Sim) StartMoveLeft() { s.startMove(core.DirLeft) }

// StopMoveLeft releases leftward movement.
func (s *Sim) StopMoveLeft() { s.stopMove(core.DirLeft) }

// StartMoveRight latches rightward movement.
func (s *Sim) StartMoveRight() { s.startMove(core.DirRight) }

// StopMoveRight releases rightward movement.
func (s *Sim) StopMoveRight() { s.stopMove(core.DirRight) }

func (s *Sim) latch(d core.Direction) *bool {
	if d == core.DirLeft {
		return &s.movingLeft
	}
	return &s.movingRight
}

// startMove sets the latch and makes d the heading. The movement task keeps
// its cadence across repeated presses so key auto-repeat cannot stall it.
func (s *Sim) startMove(d core.Direction) {
	if s.phase != PhaseRunning {
		return
	}
	*s.latch(d) = true
	s.heading = d
	if !s.sched.Active(KindMove) {
		s.sched.Every(KindMove, s.cfg.Timing.Move, s.move)
	}
}

func (s *Sim) stopMove(d core.Direction) {
	held := s.latch(d)
	if !*held {
		return
	}
	*held = false

	if s.heading == d {
		s.heading = core.DirNone
		if *s.latch(-d) {
			s.heading = -d
		}
	}
	if s.heading == core.DirNone {
		s.sched.Cancel(KindMove)
	}
}

func (s *Sim) move() {
	s.player.OffsetX += float64(s.heading) * s.player.RunSpeed
	// Only the horizontal edges; the vertical clamp belongs to Tick.
	s.player.OffsetX = s.player.Rect().ClampToBounds(s.bounds).X
}

// Jump starts a jump sequence if the player rests on the floor and no
// ascent is active. Returns false when the request is ignored.
func (s *Sim) Jump() bool {
	if s.phase != PhaseRunning || s.sched.Active(KindAscent) || !s.onFloor() {
		return false
	}
	if s.sched.Active(KindLanding) {
		// The previous jump came down between two polls.
		s.land()
	}

	s.wasLeftOfObstacle = s.leftOfObstacle()
	s.airborne = false
	s.sched.Every(KindAscent, s.cfg.Timing.Jump, s.ascend)
	s.sched.Every(KindLanding, s.cfg.Timing.Jump, s.pollLanding)

	s.logger.Debug("jump", "x", s.player.OffsetX, "leftOfObstacle", s.wasLeftOfObstacle)
	return true
}

func (s *Sim) ascend() {
	s.player.OffsetY -= s.phys.Gravity * s.player.JumpForce
	if s.player.OffsetY <= s.bounds.H-s.player.Height*(s.player.JumpForce/3) {
		s.sched.Cancel(KindAscent)
	}
}

func (s *Sim) pollLanding() {
	if s.phase != PhaseRunning {
		s.sched.Cancel(KindLanding)
		return
	}
	if !s.onFloor() {
		s.airborne = true
		return
	}
	if s.airborne {
		s.land()
	}
}

// land makes the single score determination for the current jump.
func (s *Sim) land() {
	s.sched.Cancel(KindLanding)
	s.airborne = false

	if s.leftOfObstacle() != s.wasLeftOfObstacle {
		s.score++
		s.logger.Info("obstacle cleared", "score", s.score)
		s.sink.Emit(events.ScoreChanged{Score: s.score})
	}
}

// Retry resets a finished game: score to zero, player to its initial
// constants. Returns false, doing nothing, unless the game is over.
func (s *Sim) Retry() bool {
	if s.phase != PhaseOver {
		return false
	}
	if s.pending != nil {
		s.apply(*s.pending)
		s.pending = nil
		s.logger.Info("applied new tuning")
	}

	s.score = 0
	s.player = NewPlayer(s.cfg.Player)
	s.obstacle = ObstacleFor(s.bounds, s.cfg.Obstacle)
	s.airborne = false
	s.phase = PhaseRunning

	s.logger.Info("retry")
	s.sink.Emit(events.RetryRequested{})
	s.sink.Emit(events.ScoreChanged{Score: 0})
	return true
}

// SetTuning replaces the player, obstacle, physics and movement settings.
// Before Setup they apply immediately; afterwards they wait for the next
// Retry so a running game keeps its geometry. Canvas bounds never change
// after Setup.
func (s *Sim) SetTuning(cfg config.RunnerConfig) {
	if s.phase == PhaseIdle {
		s.apply(cfg)
		s.player = NewPlayer(cfg.Player)
		return
	}
	s.pending = &cfg
}

// Phase returns the current phase.
func (s *Sim) Phase() Phase {
	return s.phase
}

// Over reports whether the game has ended.
func (s *Sim) Over() bool {
	return s.phase == PhaseOver
}

// Score returns the current score.
func (s *Sim) Score() int {
	return s.score
}

// Player returns a copy of the player.
func (s *Sim) Player() Player {
	return s.player
}

// Frame returns the state a renderer needs.
func (s *Sim) Frame() Frame {
	return Frame{
		Player:   s.player.Rect(),
		Obstacle: s.obstacle,
		Bounds:   s.bounds,
		Score:    s.score,
		Over:     s.phase == PhaseOver,
		OnFloor:  s.phase != PhaseIdle && s.onFloor(),
		Heading:  s.heading,
	}
}
