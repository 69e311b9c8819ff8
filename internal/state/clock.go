package state

import "sync/atomic"

// Clock is a monotonic logical clock stamping widget registrations within
// a run. Sequence numbers order app-testing ledger entries and harness
// traces the same way the script ordered its widget calls; no wall clock
// is involved, so replays order identically.
//
// Thread-safe via atomics, though registration is single-threaded per run.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
