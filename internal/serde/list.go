// Package serde translates between wire indices and application-facing
// option values.
//
// A serde instance is bound to one option-set snapshot; its round-trip
// guarantee (Deserialize(Serialize(v)) == v) holds only for values drawn
// from that snapshot. Values surviving from an older snapshot are handled
// separately by the coercion step, not by the serde.
package serde

import (
	"fmt"
	"slices"

	"github.com/roach88/rerun/internal/options"
)

// List is the serde for multi-valued widgets: application value lists on
// one side, option indices on the other.
type List struct {
	Options        options.Set
	DefaultIndices []int64
}

// NewList binds a serde to an option-set snapshot and its default indices.
func NewList(set options.Set, defaultIndices []int64) List {
	return List{Options: set, DefaultIndices: defaultIndices}
}

// Serialize maps application values back to option positions. The returned
// indices follow the order the values appear in the option set, not the
// caller's selection order: [c, a] over options [a, b, c] serializes to
// [0, 2].
func (s List) Serialize(value []options.Value) ([]int64, error) {
	indices := make([]int64, 0, len(value))
	for _, v := range value {
		idx := s.Options.IndexOf(v)
		if idx < 0 {
			return nil, &options.InvalidDefaultError{Value: v}
		}
		indices = append(indices, int64(idx))
	}
	slices.Sort(indices)
	return indices, nil
}

// Deserialize returns the option values at the given positions. A nil
// payload means "use the widget's default indices". An index outside the
// bound snapshot is an error: the client referenced an option that no
// longer exists.
func (s List) Deserialize(payload []int64) ([]options.Value, error) {
	current := payload
	if current == nil {
		current = s.DefaultIndices
	}

	value := make([]options.Value, 0, len(current))
	for _, idx := range current {
		if idx < 0 || idx >= int64(len(s.Options)) {
			return nil, fmt.Errorf("option index %d out of range [0, %d)", idx, len(s.Options))
		}
		value = append(value, s.Options[idx])
	}
	return value, nil
}
