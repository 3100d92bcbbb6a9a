package core

// Signal is a logical input delivered to the simulation, abstracted from
// physical key presses. Key bindings live in the platform layer.
type Signal int

const (
	SignalNone Signal = iota
	SignalMoveLeftStart
	SignalMoveLeftStop
	SignalMoveRightStart
	SignalMoveRightStop
	SignalJump
	SignalRetry
)

// String returns a human-readable name for the signal.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "None"
	case SignalMoveLeftStart:
		return "MoveLeftStart"
	case SignalMoveLeftStop:
		return "MoveLeftStop"
	case SignalMoveRightStart:
		return "MoveRightStart"
	case SignalMoveRightStop:
		return "MoveRightStop"
	case SignalJump:
		return "JumpRequested"
	case SignalRetry:
		return "RetryRequested"
	default:
		return "Unknown"
	}
}

// Direction is a horizontal movement direction.
type Direction int

const (
	DirNone  Direction = 0
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// String returns "left", "right" or "none".
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// StartSignal returns the signal that begins movement in d.
func (d Direction) StartSignal() Signal {
	switch d {
	case DirLeft:
		return SignalMoveLeftStart
	case DirRight:
		return SignalMoveRightStart
	default:
		return SignalNone
	}
}

// StopSignal returns the signal that ends movement in d.
func (d Direction) StopSignal() Signal {
	switch d {
	case DirLeft:
		return SignalMoveLeftStop
	case DirRight:
		return SignalMoveRightStop
	default:
		return SignalNone
	}
}
