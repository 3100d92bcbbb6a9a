package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Canvas: CanvasConfig{
			Width:      720,
			Height:     360,
			Background: "default",
		},
		Physics: PhysicsConfig{
			Gravity: 1,
		},
		Player: PlayerConfig{
			X:         3,
			Y:         20,
			Width:     20,
			Height:    20,
			JumpForce: 16,
			RunSpeed:  5,
			Color:     "black",
		},
		Obstacle: ObstacleConfig{
			Width:  20,
			Height: 30,
			Color:  "red",
		},
		Timing: TimingConfig{
			Tick:          10 * time.Millisecond,
			Move:          33 * time.Millisecond,
			Jump:          15 * time.Millisecond,
			Countdown:     750 * time.Millisecond,
			CountdownFrom: 3,
		},
		Input: InputConfig{
			Scheme:     SchemeBoth,
			HoldWindow: 500 * time.Millisecond,
		},
	}
}
