// Package events defines the notifications the runner surfaces to the
// presentation layer: countdown progress, load completion, game over,
// retry and score changes.
package events

import "fmt"

// Event is a notification emitted by the engine or the simulation.
type Event interface {
	fmt.Stringer
	event()
}

// CountdownTick is emitted once per countdown step while loading.
type CountdownTick struct {
	Remaining int
}

func (CountdownTick) event() {}

func (e CountdownTick) String() string {
	return fmt.Sprintf("CountdownTick(%d)", e.Remaining)
}

// LoadComplete is emitted once, when the countdown reaches zero.
type LoadComplete struct{}

func (LoadComplete) event() {}

func (LoadComplete) String() string { return "LoadComplete" }

// GameOver is emitted when the player collides with the obstacle.
type GameOver struct {
	Score int
}

func (GameOver) event() {}

func (e GameOver) String() string {
	return fmt.Sprintf("GameOver(score=%d)", e.Score)
}

// RetryRequested is emitted when a finished game is reset.
type RetryRequested struct{}

func (RetryRequested) event() {}

func (RetryRequested) String() string { return "RetryRequested" }

// ScoreChanged carries the new score after a clearing jump or a reset.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) event() {}

func (e ScoreChanged) String() string {
	return fmt.Sprintf("ScoreChanged(%d)", e.Score)
}

// Sink receives events. A nil Sink discards them.
type Sink func(Event)

// Emit delivers e if the sink is set.
func (s Sink) Emit(e Event) {
	if s != nil {
		s(e)
	}
}

// Fanout returns a sink that forwards every event to each non-nil sink
// in order.
func Fanout(sinks ...Sink) Sink {
	return func(e Event) {
		for _, s := range sinks {
			s.Emit(e)
		}
	}
}

// Queue buffers events for consumers that process them between frames.
// It is not safe for concurrent use.
type Queue struct {
	pending []Event
}

// Sink returns a sink that appends to the queue.
func (q *Queue) Sink() Sink {
	return func(e Event) {
		q.pending = append(q.pending, e)
	}
}

// Drain returns the buffered events and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.pending)
}
