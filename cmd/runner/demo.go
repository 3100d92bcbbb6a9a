package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/autopilot"
	"github.com/vovakirdan/tui-runner/internal/engine"
	"github.com/vovakirdan/tui-runner/internal/events"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/sched"
)

var flagDuration time.Duration

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the autopilot play headless",
	Long: `Run the game in real time without a terminal UI. The autopilot runs
back and forth, jumping the obstacle from a standstill and retrying after
every game over. Lifecycle events are logged to stderr (or --log-file).

Examples:
  runner demo
  runner demo --duration 1m --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().DurationVar(&flagDuration, "duration", 15*time.Second, "How long to run, including the countdown")
}

// demoStats is only touched on the scheduler goroutine until Run returns.
type demoStats struct {
	best   int
	games  int
	clears int
}

func runDemo(_ *cobra.Command, _ []string) {
	if err := demo(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Error: demo stopped before the game started (is --duration long enough?)")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// demo runs the autopilot session. Deferred cleanup always runs before the
// caller decides the exit code.
func demo() error {
	cfg, source := loadConfig()

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", source)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagDuration)
	defer cancel()

	stats := &demoStats{}
	eventLog := logger.WithPrefix("events")
	sink := events.Fanout(
		func(e events.Event) { eventLog.Info(e.String()) },
		stats.record,
	)

	s := sched.New()
	sim := runner.New(cfg, s, sink, logger.WithPrefix("sim"))
	eng := engine.New(engine.ConfigFrom(cfg), sim, s, sink, logger.WithPrefix("engine"))
	pilot := autopilot.New(eng, s, autopilot.DefaultOptions())
	eng.AddRenderer(pilot)

	runErr := make(chan error, 1)
	go func() { runErr <- s.Run(ctx) }()

	// Same chain as a player would see: countdown, then set up, then start.
	var loaded <-chan struct{}
	if err := s.Call(ctx, func() { loaded = eng.Load() }); err != nil {
		return err
	}
	select {
	case <-loaded:
	case <-ctx.Done():
		return <-runErr
	}

	var setupErr error
	callErr := s.Call(ctx, func() {
		if setupErr = sim.Setup(cfg.Bounds()); setupErr == nil {
			eng.Start()
		}
	})
	if err := errors.Join(callErr, setupErr); err != nil {
		return err
	}

	if err := <-runErr; err != nil && !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Printf("demo finished: %d clears, best score %d, %d games over, %d jumps, %d ticks\n",
		stats.clears, stats.best, stats.games, pilot.Jumps(), eng.Ticks())
	return nil
}

func (st *demoStats) record(e events.Event) {
	switch e := e.(type) {
	case events.ScoreChanged:
		if e.Score > 0 {
			st.clears++
		}
		st.best = max(st.best, e.Score)
	case events.GameOver:
		st.games++
	}
}
