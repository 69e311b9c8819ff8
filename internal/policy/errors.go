package policy

import (
	"errors"
	"fmt"
)

// Error represents a widget-construction policy violation.
//
// Policy violations are synchronous, user-facing, non-retryable: the
// construction call fails before any state mutation, and the violated rule
// is named in the message.
type Error struct {
	// Code identifies the violated rule.
	Code Code

	// Message is a human-readable description.
	Message string

	// UserKey identifies the widget's backing key where relevant
	// (the default/forced-write conflict).
	UserKey string
}

// Code categorizes policy violations.
type Code string

const (
	// CodeFragmentReplay indicates a widget was constructed inside a
	// non-reactive fragment-isolated replay.
	CodeFragmentReplay Code = "FRAGMENT_REPLAY"

	// CodeCacheReplay indicates a widget was constructed inside a cached
	// (memoized) execution that disallows side-effecting registration.
	CodeCacheReplay Code = "CACHE_REPLAY"

	// CodeCallbackDisallowed indicates a change callback was supplied in a
	// context where callbacks cannot fire.
	CodeCallbackDisallowed Code = "CALLBACK_DISALLOWED"

	// CodeStateConflict indicates both a default value and a forced
	// session-state write claimed authority over the widget's initial value.
	CodeStateConflict Code = "STATE_CONFLICT"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.UserKey != "" {
		return fmt.Sprintf("%s: %s (key=%s)", e.Code, e.Message, e.UserKey)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsPolicyError reports whether err is any policy violation.
// Uses errors.As to handle wrapped errors.
func IsPolicyError(err error) bool {
	var pe *Error
	return errors.As(err, &pe)
}

// IsViolation reports whether err is a policy violation with the given code.
func IsViolation(err error, code Code) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

func newFragmentReplayError() *Error {
	return &Error{
		Code:    CodeFragmentReplay,
		Message: "widgets cannot be used inside cached or fragment-isolated replay",
	}
}

func newCacheReplayError() *Error {
	return &Error{
		Code:    CodeCacheReplay,
		Message: "widgets cannot be registered from inside a cached block",
	}
}

func newCallbackError() *Error {
	return &Error{
		Code:    CodeCallbackDisallowed,
		Message: "change callbacks are not allowed in this context",
	}
}

func newStateConflictError(userKey string) *Error {
	return &Error{
		Code: CodeStateConflict,
		Message: "the widget was created with a default value but also had its value " +
			"set via session state; only one of the two may claim the initial value",
		UserKey: userKey,
	}
}
