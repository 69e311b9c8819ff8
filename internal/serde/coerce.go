package serde

import "github.com/roach88/rerun/internal/options"

// CoerceList rewrites stored values to reference the current run's option
// objects.
//
// After a script edit the option set may be rebuilt from scratch: a stored
// *Ref is then Equal to its current-run counterpart but is not the same
// object. Leaving the stale object in place would leak the previous run's
// payloads into application code, so each element that has an Equal match
// in the current set is replaced by that match. Elements with no match are
// left untouched; the caller's constraint validation deals with them.
//
// Runs after the value_changed flag is computed: coercion preserves
// semantic continuity and must not look like a user interaction.
func CoerceList(stored []options.Value, set options.Set) []options.Value {
	coerced := make([]options.Value, len(stored))
	for i, v := range stored {
		coerced[i] = coerceValue(v, set)
	}
	return coerced
}

// Coerce is the single-value form of CoerceList.
func Coerce(stored options.Value, set options.Set) options.Value {
	return coerceValue(stored, set)
}

func coerceValue(v options.Value, set options.Set) options.Value {
	if idx := set.IndexOf(v); idx >= 0 {
		return set[idx]
	}
	return v
}
