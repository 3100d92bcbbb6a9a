// Package config provides YAML-based configuration loading for the runner.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Key binding schemes understood by the terminal frontend.
const (
	SchemeArrows = "arrows"
	SchemeWASD   = "wasd"
	SchemeBoth   = "both"
)

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Timing   TimingConfig   `yaml:"timing"`
	Input    InputConfig    `yaml:"input"`
}

// CanvasConfig defines the playable area in canvas units.
type CanvasConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"`
}

// PhysicsConfig defines world constants.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
}

// PlayerConfig defines the player's initial geometry and movement.
type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	JumpForce float64 `yaml:"jump_force"`
	RunSpeed  float64 `yaml:"run_speed"`
	Color     string  `yaml:"color"`
}

// ObstacleConfig defines the obstacle size. Its position is derived from
// the canvas.
type ObstacleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// TimingConfig defines the cadence of every periodic task.
type TimingConfig struct {
	Tick          time.Duration `yaml:"tick"`           // main physics/render tick
	Move          time.Duration `yaml:"move"`           // horizontal movement step
	Jump          time.Duration `yaml:"jump"`           // jump ascent and landing poll
	Countdown     time.Duration `yaml:"countdown"`      // startup countdown step
	CountdownFrom int           `yaml:"countdown_from"` // first countdown value
}

// InputConfig defines terminal input behaviour.
type InputConfig struct {
	Scheme string `yaml:"scheme"` // "arrows", "wasd" or "both"
	// HoldWindow is how long a direction stays latched after its last key
	// press. Terminals report no key releases, only auto-repeat.
	HoldWindow time.Duration `yaml:"hold_window"`
}

// Bounds returns the canvas as core bounds.
func (c RunnerConfig) Bounds() core.Bounds {
	return core.Bounds{W: c.Canvas.Width, H: c.Canvas.Height}
}

// Validate reports the first invalid setting.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("config: canvas must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("config: physics.gravity must be positive, got %v", c.Physics.Gravity)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	case c.Player.Width > c.Canvas.Width || c.Player.Height > c.Canvas.Height:
		return errors.New("config: player does not fit on the canvas")
	case c.Player.JumpForce <= 0:
		return fmt.Errorf("config: player.jump_force must be positive, got %v", c.Player.JumpForce)
	case c.Canvas.Height-c.Player.Height*c.Player.JumpForce/3+c.Physics.Gravity*c.Player.JumpForce <= 0:
		// A jump clamped at the ceiling must still reach its apex.
		return fmt.Errorf("config: jump apex %v is above the canvas top, lower player.jump_force or player.height",
			c.Canvas.Height-c.Player.Height*c.Player.JumpForce/3)
	case c.Player.RunSpeed <= 0:
		return fmt.Errorf("config: player.run_speed must be positive, got %v", c.Player.RunSpeed)
	case c.Obstacle.Width <= 0 || c.Obstacle.Height <= 0:
		return fmt.Errorf("config: obstacle size must be positive, got %vx%v", c.Obstacle.Width, c.Obstacle.Height)
	case c.Obstacle.Width > c.Canvas.Width || c.Obstacle.Height > c.Canvas.Height:
		return errors.New("config: obstacle does not fit on the canvas")
	case c.Timing.Tick <= 0 || c.Timing.Move <= 0 || c.Timing.Jump <= 0 || c.Timing.Countdown <= 0:
		return errors.New("config: timing intervals must be positive")
	case c.Timing.CountdownFrom < 0:
		return fmt.Errorf("config: timing.countdown_from must not be negative, got %d", c.Timing.CountdownFrom)
	case c.Input.HoldWindow <= 0:
		return errors.New("config: input.hold_window must be positive")
	}

	switch c.Input.Scheme {
	case SchemeArrows, SchemeWASD, SchemeBoth:
	default:
		return fmt.Errorf("config: unknown input.scheme %q", c.Input.Scheme)
	}

	for field, name := range map[string]string{
		"canvas.background": c.Canvas.Background,
		"player.color":      c.Player.Color,
		"obstacle.color":    c.Obstacle.Color,
	} {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("config: unknown color %q for %s", name, field)
		}
	}

	return nil
}
