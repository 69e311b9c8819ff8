package serde

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/rerun/internal/options"
)

func TestCoerceListRewritesEqualRefs(t *testing.T) {
	// Previous run's objects.
	oldRed := options.NewRef("RED", "old-payload")
	oldBlue := options.NewRef("BLUE", "old-payload")

	// Current run rebuilt the set with fresh objects.
	newRed := options.NewRef("RED", "new-payload")
	newBlue := options.NewRef("BLUE", "new-payload")
	set := options.Set{newRed, newBlue}

	coerced := CoerceList([]options.Value{oldBlue, oldRed}, set)

	assert.Same(t, newBlue, coerced[0].(*options.Ref),
		"stored ref must be rewritten to the current run's object")
	assert.Same(t, newRed, coerced[1].(*options.Ref))
}

func TestCoerceListLeavesUnmatchedValues(t *testing.T) {
	ghost := options.NewRef("GONE", nil)
	set := options.Set{options.NewRef("RED", nil)}

	coerced := CoerceList([]options.Value{ghost}, set)
	assert.Same(t, ghost, coerced[0].(*options.Ref),
		"values absent from the current set are left for constraint validation")
}

func TestCoerceSingleValue(t *testing.T) {
	current := options.NewRef("X", 42)
	set := options.Set{current}

	got := Coerce(options.NewRef("X", nil), set)
	assert.Same(t, current, got.(*options.Ref))
}

func TestCoercePlainValuesStable(t *testing.T) {
	set := options.Set{options.Str("a"), options.Str("b")}

	got := CoerceList([]options.Value{options.Str("b")}, set)
	assert.Equal(t, []options.Value{options.Str("b")}, got)
}
