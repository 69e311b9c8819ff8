package wire

import "sync"

// Queue is the thread-safe FIFO outgoing-message queue for one script run.
//
// Widget registration appends synchronously in script order, which is the
// tree order the client expects. The queue is unbounded: a script may
// construct arbitrarily many widgets without blocking.
//
// Thread-safety matters for the consumer side (the runtime drains the queue
// while a superseding rerun may still be appending a stale run's tail). In
// practice most usage is single-threaded.
type Queue struct {
	mu       sync.Mutex
	messages []Envelope
	closed   bool
}

// NewQueue creates an empty outgoing queue.
func NewQueue() *Queue {
	return &Queue{
		messages: make([]Envelope, 0, 32),
	}
}

// Enqueue appends an envelope to the back of the queue.
// Returns false if the queue is closed (the run was superseded and its
// partially built output is being discarded).
func (q *Queue) Enqueue(e Envelope) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.messages = append(q.messages, e)
	return true
}

// TryDequeue removes and returns the front envelope without blocking.
// Returns (Envelope{}, false) if the queue is empty.
func (q *Queue) TryDequeue() (Envelope, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.messages) == 0 {
		return Envelope{}, false
	}

	e := q.messages[0]

	// Nil out the slot so the envelope's pointers can be collected; the
	// underlying array otherwise retains them until reallocation.
	q.messages[0] = Envelope{}
	if len(q.messages) == 1 {
		q.messages = q.messages[:0]
	} else {
		q.messages = q.messages[1:]
	}

	return e, true
}

// Drain removes and returns every queued envelope in append order.
func (q *Queue) Drain() []Envelope {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.messages
	q.messages = make([]Envelope, 0, 32)
	return out
}

// Len returns the current queue length.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.messages)
}

// Close marks the queue closed; further Enqueue calls are dropped.
// Used when a rerun supersedes this run mid-script.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}
