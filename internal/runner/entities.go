package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the controllable rectangle. Offsets are the top-left corner in
// canvas units.
type Player struct {
	OffsetX   float64
	OffsetY   float64
	Width     float64
	Height    float64
	JumpForce float64 // multiplier on gravity during ascent
	RunSpeed  float64 // horizontal displacement per movement step
	Color     string
}

// NewPlayer creates a player at its initial constants.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		OffsetX:   cfg.X,
		OffsetY:   cfg.Y,
		Width:     cfg.Width,
		Height:    cfg.Height,
		JumpForce: cfg.JumpForce,
		RunSpeed:  cfg.RunSpeed,
		Color:     cfg.Color,
	}
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.OffsetX, p.OffsetY, p.Width, p.Height)
}

// ObstacleFor returns the obstacle rectangle for the given canvas:
// horizontally centred and resting on the floor.
func ObstacleFor(b core.Bounds, cfg config.ObstacleConfig) core.Rect {
	return core.NewRect(b.W/2-cfg.Width/2, b.H-cfg.Height, cfg.Width, cfg.Height)
}

// Frame is a read-only view of the simulation handed to renderers once
// per main tick.
type Frame struct {
	Player   core.Rect
	Obstacle core.Rect
	Bounds   core.Bounds
	Score    int
	Over     bool
	OnFloor  bool
	Heading  core.Direction // current movement direction, DirNone when idle
}
