// Package sched multiplexes periodic and one-shot tasks onto a single
// logical thread. Every callback runs on the goroutine that drives the
// scheduler, either through Advance (virtual time, used by tests and the
// Bubble Tea frontend) or through Run (wall-clock loop). Callbacks may
// freely register and cancel tasks, so simulation state mutated only from
// callbacks needs no locking.
package sched

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// ErrRunning is returned by Run when another Run is already active.
var ErrRunning = errors.New("sched: already running")

// idleWait bounds how long Run sleeps when no task is scheduled.
const idleWait = time.Second

// Kind identifies a task slot. At most one task of each kind is scheduled;
// registering a kind replaces whatever was scheduled under it.
type Kind string

type task struct {
	kind     Kind
	fn       func()
	interval time.Duration // zero for one-shot tasks
	next     time.Duration
	seq      uint64
}

// Scheduler is a cooperative timer wheel over virtual time.
// It is not safe for concurrent use; only Post and Call may be used from
// other goroutines, and only while Run is active.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	tasks   map[Kind]*task
	posts   chan func()
	running atomic.Bool
}

// New creates an empty scheduler at virtual time zero.
func New() *Scheduler {
	return &Scheduler{
		tasks: make(map[Kind]*task),
		posts: make(chan func(), 64),
	}
}

// Every schedules fn to run every interval, first firing one interval from
// now. Any task of the same kind is cancelled first.
// Panics on a non-positive interval.
func (s *Scheduler) Every(kind Kind, interval time.Duration, fn func()) {
	if interval <= 0 {
		panic(fmt.Sprintf("sched: non-positive interval %v for %q", interval, kind))
	}
	s.add(kind, interval, interval, fn)
}

// After schedules fn to run once after delay. Any task of the same kind is
// cancelled first, so calling After repeatedly re-arms a single timer.
func (s *Scheduler) After(kind Kind, delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.add(kind, delay, 0, fn)
}

func (s *Scheduler) add(kind Kind, delay, interval time.Duration, fn func()) {
	s.seq++
	s.tasks[kind] = &task{
		kind:     kind,
		fn:       fn,
		interval: interval,
		next:     s.now + delay,
		seq:      s.seq,
	}
}

// Cancel removes the task of the given kind. Returns false if none was
// scheduled.
func (s *Scheduler) Cancel(kind Kind) bool {
	if _, ok := s.tasks[kind]; !ok {
		return false
	}
	delete(s.tasks, kind)
	return true
}

// Active reports whether a task of the given kind is scheduled.
func (s *Scheduler) Active(kind Kind) bool {
	_, ok := s.tasks[kind]
	return ok
}

// Len returns the number of scheduled tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Next returns the earliest pending deadline.
func (s *Scheduler) Next() (time.Duration, bool) {
	t := s.earliest(-1)
	if t == nil {
		return 0, false
	}
	return t.next, true
}

// earliest returns the task with the smallest (deadline, seq) pair whose
// deadline is at or before limit. A negative limit means no limit.
func (s *Scheduler) earliest(limit time.Duration) *task {
	var best *task
	for _, t := range s.tasks {
		if limit >= 0 && t.next > limit {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// Advance moves virtual time forward by d, firing every task that falls
// due in deadline order. Tasks due at the same instant fire in the order
// they were registered. Returns the number of callbacks fired.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	fired := 0

	for {
		t := s.earliest(target)
		if t == nil {
			break
		}
		s.now = t.next
		if t.interval > 0 {
			t.next += t.interval
		} else {
			delete(s.tasks, t.kind)
		}
		t.fn()
		fired++
	}

	s.now = target
	return fired
}

// Run drives the scheduler from the wall clock until ctx is done, which is
// the only way it returns besides ErrRunning. Functions handed to Call
// execute on the Run goroutine after due tasks have caught up.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer s.running.Store(false)

	origin := time.Now().Add(-s.now)
	catchUp := func() {
		s.Advance(time.Since(origin) - s.now)
	}

	timer := time.NewTimer(idleWait)
	defer timer.Stop()

	for {
		wait := idleWait
		if next, ok := s.Next(); ok {
			wait = max(next-time.Since(origin), 0)
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-s.posts:
			timer.Stop()
			catchUp()
			fn()
		case <-timer.C:
			catchUp()
		}
	}
}

// Running reports whether Run is active.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Call runs fn on the Run goroutine and waits for it to finish.
func (s *Scheduler) Call(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	wrapped := func() {
		defer close(done)
		fn()
	}

	select {
	case s.posts <- wrapped:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
