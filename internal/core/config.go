package core

// RuntimeConfig contains terminal parameters passed to the platform layer.
type RuntimeConfig struct {
	ScreenW   int // Screen width in characters
	ScreenH   int // Screen height in characters
	FrameRate int // Terminal frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
	}
}

// GameState summarises the simulation for the platform layer.
type GameState struct {
	Score int  // Current score
	Best  int  // Best score this session
	Over  bool // Whether the game has ended
}
