// Package physics holds the world constants consumed by the simulation step.
package physics

// DefaultGravity is the downward displacement applied to the player on
// every main tick, in canvas units.
const DefaultGravity = 1.0

// Physics carries the constant downward acceleration.
type Physics struct {
	Gravity float64
}

// Default returns physics with DefaultGravity.
func Default() Physics {
	return Physics{Gravity: DefaultGravity}
}

// New returns physics with the given gravity, falling back to
// DefaultGravity for non-positive values.
func New(gravity float64) Physics {
	if gravity <= 0 {
		return Default()
	}
	return Physics{Gravity: gravity}
}
