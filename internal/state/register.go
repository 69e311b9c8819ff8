package state

import (
	"fmt"

	"github.com/roach88/rerun/internal/options"
)

// Deserializer translates an incoming wire payload into the
// application-facing value domain. A nil payload means "use the widget's
// default".
type Deserializer[T any] func(payload []int64) (T, error)

// Serializer translates an application-facing value back into wire form.
type Serializer[T any] func(value T) ([]int64, error)

// Result is the outcome of registering one widget identity.
type Result[T any] struct {
	// Value is the application-facing value for this run.
	Value T

	// ValueChanged reports whether Value differs from the script-local
	// default: true when an external write (client interaction or forced
	// session write) decided the value. It is computed before coercion and
	// constraint validation so both know whether the value was freshly
	// user-set.
	ValueChanged bool
}

// RegisterValueList registers a multi-valued widget identity and returns
// its value list for this run. This is the list-shaped counterpart of
// RegisterSingleValue; the two are separate named operations rather than
// one entry point switching on argument shape.
func RegisterValueList(
	ctx *Context,
	widgetID, userKey string,
	des Deserializer[[]options.Value],
	ser Serializer[[]options.Value],
) (Result[[]options.Value], error) {
	return register(ctx, widgetID, userKey, des, ser)
}

// RegisterSingleValue registers a single-valued widget identity. The value
// is a nullable index: nil when no option is selected.
func RegisterSingleValue(
	ctx *Context,
	widgetID, userKey string,
	des Deserializer[*int64],
	ser Serializer[*int64],
) (Result[*int64], error) {
	return register(ctx, widgetID, userKey, des, ser)
}

// register is the shared state-retrieval contract.
//
// First registration of an identity in a run with no external write
// pending yields the deserialized default and ValueChanged=false. A
// pending external write yields its deserialized payload and
// ValueChanged=true. Either way the identity's snapshot is written to the
// run table, so an unusual repeated registration within one run observes a
// consistent state.
func register[T any](
	ctx *Context,
	widgetID, userKey string,
	des Deserializer[T],
	ser Serializer[T],
) (Result[T], error) {
	var res Result[T]

	payload, external := ctx.externalWrite(widgetID, userKey)

	var err error
	if external {
		res.Value, err = des(payload)
		res.ValueChanged = true
	} else {
		res.Value, err = des(nil)
	}
	if err != nil {
		return Result[T]{}, fmt.Errorf("register widget %s: %w", widgetID, err)
	}

	wireForm, err := ser(res.Value)
	if err != nil {
		return Result[T]{}, fmt.Errorf("register widget %s: serialize: %w", widgetID, err)
	}

	ctx.states[widgetID] = Snapshot{
		Wire:    wireForm,
		Changed: res.ValueChanged,
	}

	return res, nil
}
