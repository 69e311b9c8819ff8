package options

// Normalized is the output of Transform: the canonical option sequence,
// its rendered labels, and the default positions within it.
type Normalized struct {
	Set            Set
	Labels         []string
	DefaultIndices []int64
}

// Transform compiles a caller's option source and default input into the
// canonical form every widget registers with.
//
// Validation order:
//  1. comparability: all elements must share one variant kind, checked
//     before any index mapping
//  2. unordered sources are sorted so set-shaped input is deterministic
//  3. each default value must be Equal to some option, else
//     InvalidDefaultError; surviving defaults map to their first matching
//     index
//
// The labels come from format (or the identity-string fallback) and feed
// both rendering and the identity hash. Raw values still decide index
// mapping, so two options that format identically but compare unequal stay
// distinct.
func Transform(src Source, def Default, format FormatFunc) (Normalized, error) {
	set := src.sequence()

	if err := checkComparable(set); err != nil {
		return Normalized{}, err
	}

	if _, unordered := src.(Unordered); unordered {
		sortSet(set)
	}

	indices, err := defaultIndices(set, def)
	if err != nil {
		return Normalized{}, err
	}

	return Normalized{
		Set:            set,
		Labels:         set.Labels(format),
		DefaultIndices: indices,
	}, nil
}

// checkComparable fails fast when option values do not share a single
// variant kind. Runs before index mapping.
func checkComparable(set Set) error {
	if len(set) == 0 {
		return nil
	}
	first := KindOf(set[0])
	for _, v := range set[1:] {
		if KindOf(v) != first {
			return &InvalidOptionsError{Kinds: distinctKinds(set)}
		}
	}
	return nil
}

func distinctKinds(set Set) []Kind {
	seen := make(map[Kind]bool)
	var kinds []Kind
	for _, v := range set {
		k := KindOf(v)
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// defaultIndices maps default values onto option positions. NoDefault is
// the empty sentinel. Every default must exist in the set; ties between
// duplicate equal options resolve to the first matching index.
func defaultIndices(set Set, def Default) ([]int64, error) {
	if def == nil || def.IsNone() {
		return []int64{}, nil
	}

	values := def.Values()
	indices := make([]int64, 0, len(values))
	for _, v := range values {
		idx := set.IndexOf(v)
		if idx < 0 {
			return nil, &InvalidDefaultError{Value: v}
		}
		indices = append(indices, int64(idx))
	}
	return indices, nil
}
