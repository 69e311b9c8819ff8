package options

import "slices"

// Source is the tagged-variant form of a caller's option input. The
// original call sites accept list-likes, sets, array-like structures, and
// scalars interchangeably; here every accepted shape is one explicit
// variant, compiled once into a canonical ordered Set by Transform.
type Source interface {
	sequence() Set
}

// Values is an ordered list of option values, used as-is.
type Values []Value

func (v Values) sequence() Set { return Set(v) }

// Strings is an ordered list of string options.
type Strings []string

func (v Strings) sequence() Set {
	s := make(Set, len(v))
	for i, str := range v {
		s[i] = Str(str)
	}
	return s
}

// Ints is an ordered list of integer options.
type Ints []int64

func (v Ints) sequence() Set {
	s := make(Set, len(v))
	for i, n := range v {
		s[i] = Int(n)
	}
	return s
}

// Refs is an ordered list of named reference options.
type Refs []*Ref

func (v Refs) sequence() Set {
	s := make(Set, len(v))
	for i, r := range v {
		s[i] = r
	}
	return s
}

// Unordered is a set-shaped input with no meaningful order. Elements are
// sorted during normalization so two runs constructed from the same set
// contents produce the same Set, and therefore the same widget identity.
// Sorting requires comparability, which Transform validates first.
type Unordered []Value

func (v Unordered) sequence() Set {
	s := make(Set, len(v))
	copy(s, v)
	return s
}

// Range is the half-open integer sequence [0, N).
type Range struct{ N int }

func (r Range) sequence() Set {
	s := make(Set, 0, max(r.N, 0))
	for i := 0; i < r.N; i++ {
		s = append(s, Int(int64(i)))
	}
	return s
}

// Single is a scalar treated as a one-element option sequence.
type Single struct{ V Value }

func (o Single) sequence() Set { return Set{o.V} }

// Default is the tagged-variant form of a caller's default input:
// nothing, one scalar, or a list.
type Default interface {
	// Values returns the default values as a list; a scalar default is a
	// one-element list.
	Values() []Value
	// IsNone reports whether the caller supplied no default at all.
	IsNone() bool
}

// NoDefault means the caller supplied no default. It maps to the empty
// default-index sentinel, not to "index of nothing".
type NoDefault struct{}

func (NoDefault) Values() []Value { return nil }
func (NoDefault) IsNone() bool    { return true }

// DefaultOf is a single scalar default, coerced to a one-element list.
func DefaultOf(v Value) Default { return defaultList{v} }

// DefaultList is an ordered list of default values.
func DefaultList(vs ...Value) Default { return defaultList(vs) }

type defaultList []Value

func (d defaultList) Values() []Value { return d }
func (d defaultList) IsNone() bool    { return false }

func sortSet(s Set) {
	slices.SortStableFunc(s, func(a, b Value) int {
		if Less(a, b) {
			return -1
		}
		if Less(b, a) {
			return 1
		}
		return 0
	})
}
