package state

import "sync"

// Session is the cross-run key-value slot table backing forced widget
// writes. It is the only structure shared between script runs: everything
// else in this package is rebuilt per run.
//
// A forced write parks a wire payload under the widget's user key; the next
// registration of a widget with that key adopts the payload and reports
// value_changed. The owning runtime guarantees at most one mutator per key
// per run; the mutex here only keeps concurrent runs from corrupting the
// maps.
type Session struct {
	mu      sync.Mutex
	forced  map[string][]int64
	written map[string]bool
}

// NewSession creates an empty session store.
func NewSession() *Session {
	return &Session{
		forced:  make(map[string][]int64),
		written: make(map[string]bool),
	}
}

// ForceWrite parks a wire payload for the given user key and marks the key
// written for the current run. This is the "external write" entry point:
// session-state assignments and test-harness injections both land here.
func (s *Session) ForceWrite(key string, payload []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.forced[key] = payload
	s.written[key] = true
}

// PendingWrite returns the parked payload for key, if any. The payload
// stays parked for the rest of the run so a repeated registration of the
// same widget sees a consistent snapshot.
func (s *Session) PendingWrite(key string) ([]int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok := s.forced[key]
	return payload, ok
}

// WrittenThisRun reports whether key received a forced write during the
// current run. The policy gate consults this for the default/forced-write
// conflict rule.
func (s *Session) WrittenThisRun(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written[key]
}

// StartRun resets the per-run bookkeeping. Parked payloads are consumed:
// a forced write influences exactly the run it was made for.
func (s *Session) StartRun() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.forced = make(map[string][]int64)
	s.written = make(map[string]bool)
}
