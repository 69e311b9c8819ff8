// Package policy gates widget registration.
//
// Four independent, short-circuiting checks run before any identity-based
// state lookup. Each failing check is a distinct *Error naming the violated
// rule, and the gate aborts before any state mutation happens.
package policy

// Context is the slice of the run context the gate needs. The concrete
// run context implements it; the gate never reaches into ambient state.
type Context interface {
	// InFragmentReplay reports whether execution is inside a non-reactive
	// fragment-isolated replay of a cached subtree.
	InFragmentReplay() bool

	// InCachedBlock reports whether the surrounding call is within a
	// memoized execution that disallows side-effecting registration.
	InCachedBlock() bool

	// CallbacksAllowed reports whether change callbacks may fire in the
	// current context.
	CallbacksAllowed() bool

	// SessionWrittenThisRun reports whether the given user key received a
	// forced session-state write during the current run.
	SessionWrittenThisRun(key string) bool
}

// Check runs the full policy gate for one widget construction call.
//
// hasCallback is whether the caller supplied a change handler; hasDefault
// is whether the caller supplied a non-empty default value. userKey may be
// empty for keyless widgets, in which case the state-conflict rule cannot
// trigger.
func Check(ctx Context, userKey string, hasCallback, hasDefault bool) error {
	if err := CheckFragmentReplay(ctx); err != nil {
		return err
	}
	if err := CheckCacheReplay(ctx); err != nil {
		return err
	}
	if err := CheckCallback(ctx, hasCallback); err != nil {
		return err
	}
	return CheckStateConflict(ctx, userKey, hasDefault)
}

// CheckFragmentReplay rejects widget creation inside a non-reactive
// fragment replay.
func CheckFragmentReplay(ctx Context) error {
	if ctx.InFragmentReplay() {
		return newFragmentReplayError()
	}
	return nil
}

// CheckCacheReplay rejects widget creation inside a cached execution.
func CheckCacheReplay(ctx Context) error {
	if ctx.InCachedBlock() {
		return newCacheReplayError()
	}
	return nil
}

// CheckCallback rejects a callback handler where callbacks are disallowed.
func CheckCallback(ctx Context, hasCallback bool) error {
	if hasCallback && !ctx.CallbacksAllowed() {
		return newCallbackError()
	}
	return nil
}

// CheckStateConflict rejects a widget that supplies a default value while
// a forced session-state write to the same key is pending this run. Both
// would claim authority over the initial value, so they are mutually
// exclusive.
func CheckStateConflict(ctx Context, userKey string, hasDefault bool) error {
	if userKey == "" || !hasDefault {
		return nil
	}
	if ctx.SessionWrittenThisRun(userKey) {
		return newStateConflictError(userKey)
	}
	return nil
}
