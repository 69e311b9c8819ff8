package options

// Set is the canonical ordered option sequence a widget is constructed
// over. It is derived once per widget construction and never persisted:
// the next script run derives a fresh one.
type Set []Value

// IndexOf returns the first index whose element is Equal to v, or -1.
// Duplicate equal options resolve to the first match.
func (s Set) IndexOf(v Value) int {
	for i, elem := range s {
		if Equal(elem, v) {
			return i
		}
	}
	return -1
}

// Contains reports whether v is Equal to some element of s.
func (s Set) Contains(v Value) bool {
	return s.IndexOf(v) >= 0
}

// Labels renders every element through format, in order.
func (s Set) Labels(format FormatFunc) []string {
	if format == nil {
		format = Format
	}
	labels := make([]string, len(s))
	for i, v := range s {
		labels[i] = format(v)
	}
	return labels
}
