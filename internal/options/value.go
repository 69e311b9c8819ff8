package options

import (
	"fmt"
	"strconv"
)

// Value is a sealed interface over the option value domain.
// Only Str, Int, Bool, and *Ref implement it. There is no float variant:
// floats break deterministic identity hashing and are excluded from the
// domain entirely.
type Value interface {
	optionValue()
}

// Str is a string option value.
type Str string

func (Str) optionValue() {}

// Int is an integer option value. Always int64.
type Int int64

func (Int) optionValue() {}

// Bool is a boolean option value. Ordered false < true.
type Bool bool

func (Bool) optionValue() {}

// Ref is a named reference option value: a value whose equality is decided
// by its name but whose identity is the pointer. This models option objects
// that are rebuilt on every script run (an enum member re-declared after a
// script edit, a reconstructed record): two *Ref values with the same name
// are Equal but not identical, which is exactly the situation the coercion
// step resolves.
type Ref struct {
	Name string
	// Obj carries the application payload. It never participates in
	// equality, ordering, or identity hashing.
	Obj any
}

func (*Ref) optionValue() {}

// NewRef creates a named reference option value.
func NewRef(name string, obj any) *Ref {
	return &Ref{Name: name, Obj: obj}
}

// Kind tags the concrete variant of a Value.
type Kind int

const (
	KindStr Kind = iota + 1
	KindInt
	KindBool
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindStr:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindRef:
		return "ref"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// KindOf returns the variant tag for v.
func KindOf(v Value) Kind {
	switch v.(type) {
	case Str:
		return KindStr
	case Int:
		return KindInt
	case Bool:
		return KindBool
	case *Ref:
		return KindRef
	default:
		panic(fmt.Sprintf("options: unknown Value type %T", v))
	}
}

// Equal reports structural equality. *Ref compares by name only, so a
// rebuilt reference is Equal to its previous-run counterpart even though
// the pointers differ.
func Equal(a, b Value) bool {
	if KindOf(a) != KindOf(b) {
		return false
	}
	switch av := a.(type) {
	case Str:
		return av == b.(Str)
	case Int:
		return av == b.(Int)
	case Bool:
		return av == b.(Bool)
	case *Ref:
		return av.Name == b.(*Ref).Name
	default:
		return false
	}
}

// Less orders two values of the same kind. Callers must have established
// comparability first; mixed kinds panic.
func Less(a, b Value) bool {
	if KindOf(a) != KindOf(b) {
		panic(fmt.Sprintf("options: ordering %s against %s", KindOf(a), KindOf(b)))
	}
	switch av := a.(type) {
	case Str:
		return av < b.(Str)
	case Int:
		return av < b.(Int)
	case Bool:
		return !bool(av) && bool(b.(Bool))
	case *Ref:
		return av.Name < b.(*Ref).Name
	default:
		return false
	}
}

// Format renders the default human-visible label for v. Widget callers may
// override it with their own FormatFunc; this is the identity-string
// fallback.
func Format(v Value) string {
	switch val := v.(type) {
	case Str:
		return string(val)
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Bool:
		return strconv.FormatBool(bool(val))
	case *Ref:
		return val.Name
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatFunc produces the display label for an option value. The label is
// used both for rendering and as an input to the identity hash.
type FormatFunc func(Value) string
