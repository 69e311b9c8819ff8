package state

import (
	"log/slog"

	"github.com/roach88/rerun/internal/wire"
)

// Recorder receives (widget identity, representative label) pairs for the
// offline app-testing replay ledger. Implementations must tolerate being
// called once per widget registration in script order.
type Recorder interface {
	Record(runToken string, seq int64, widgetID, label string)
}

// Snapshot is the per-run record of one registered widget identity.
type Snapshot struct {
	// Wire is the serialized form of the registered value.
	Wire []int64
	// Changed reports whether the value differs from what the script-local
	// default computation would have produced.
	Changed bool
}

// Context is the explicit execution context threaded through every core
// operation. Nothing in this module looks context up from ambient state:
// the script runner constructs one Context per run and passes it down.
//
// A Context is single-run and single-threaded; only Session is shared
// across runs.
type Context struct {
	// RunToken correlates this run's ledger entries and diagnostics.
	RunToken string

	// PageHash is the active page identity. It feeds every widget identity
	// hash so the same widget call on two pages stores state separately.
	PageHash string

	// Session is the cross-run forced-write store.
	Session *Session

	// Queue receives outgoing messages in script order.
	Queue *wire.Queue

	// Log receives diagnostics. Defaults to slog.Default.
	Log *slog.Logger

	clock        *Clock
	clientValues map[string][]int64
	states       map[string]Snapshot
	recorder     Recorder

	fragmentReplay      bool
	cachedBlock         bool
	callbacksDisallowed bool
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithPage sets the active page hash.
func WithPage(pageHash string) ContextOption {
	return func(c *Context) { c.PageHash = pageHash }
}

// WithClientValue injects an incoming wire payload for a widget identity,
// representing the client interaction that triggered this run.
func WithClientValue(widgetID string, payload []int64) ContextOption {
	return func(c *Context) { c.clientValues[widgetID] = payload }
}

// WithRecorder activates app-testing recording for this run.
func WithRecorder(r Recorder) ContextOption {
	return func(c *Context) { c.recorder = r }
}

// WithFragmentReplay marks the context as a non-reactive fragment replay,
// in which widget construction is rejected.
func WithFragmentReplay() ContextOption {
	return func(c *Context) { c.fragmentReplay = true }
}

// WithCachedBlock marks the context as inside a memoized execution.
func WithCachedBlock() ContextOption {
	return func(c *Context) { c.cachedBlock = true }
}

// WithCallbacksDisallowed forbids change callbacks for this context.
func WithCallbacksDisallowed() ContextOption {
	return func(c *Context) { c.callbacksDisallowed = true }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *slog.Logger) ContextOption {
	return func(c *Context) { c.Log = log }
}

// NewContext creates the context for one script run.
func NewContext(runToken string, session *Session, queue *wire.Queue, opts ...ContextOption) *Context {
	c := &Context{
		RunToken:     runToken,
		Session:      session,
		Queue:        queue,
		Log:          slog.Default(),
		clock:        NewClock(),
		clientValues: make(map[string][]int64),
		states:       make(map[string]Snapshot),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// InFragmentReplay implements the policy gate's context view.
func (c *Context) InFragmentReplay() bool { return c.fragmentReplay }

// InCachedBlock implements the policy gate's context view.
func (c *Context) InCachedBlock() bool { return c.cachedBlock }

// CallbacksAllowed implements the policy gate's context view.
func (c *Context) CallbacksAllowed() bool { return !c.callbacksDisallowed }

// SessionWrittenThisRun implements the policy gate's context view.
func (c *Context) SessionWrittenThisRun(key string) bool {
	if c.Session == nil {
		return false
	}
	return c.Session.WrittenThisRun(key)
}

// State returns the snapshot registered for a widget identity this run.
func (c *Context) State(widgetID string) (Snapshot, bool) {
	s, ok := c.states[widgetID]
	return s, ok
}

// SaveForAppTesting records the widget's representative label into the
// app-testing ledger. No-op when no recorder is active.
func (c *Context) SaveForAppTesting(widgetID, label string) {
	if c.recorder == nil {
		return
	}
	c.recorder.Record(c.RunToken, c.clock.Next(), widgetID, label)
}

// externalWrite resolves the pending external payload for a widget: the
// incoming client interaction wins, then a forced session write under the
// widget's user key.
func (c *Context) externalWrite(widgetID, userKey string) ([]int64, bool) {
	if payload, ok := c.clientValues[widgetID]; ok {
		return payload, true
	}
	if userKey != "" && c.Session != nil {
		if payload, ok := c.Session.PendingWrite(userKey); ok {
			return payload, true
		}
	}
	return nil, false
}
