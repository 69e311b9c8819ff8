package serde

import "github.com/roach88/rerun/internal/options"

// Feedback is the serde for sentiment widgets. The application-facing
// value is a nullable option index (nil = nothing selected yet), layered
// over a List serde whose option set is the widget's index domain.
type Feedback struct {
	list List
}

// NewFeedback binds a feedback serde to an index domain, usually 0..n-1.
func NewFeedback(indexDomain []int64) Feedback {
	set := make(options.Set, len(indexDomain))
	for i, n := range indexDomain {
		set[i] = options.Int(n)
	}
	return Feedback{list: NewList(set, []int64{})}
}

// Serialize maps the selected sentiment to wire form; nil serializes to
// the empty selection.
func (s Feedback) Serialize(value *int64) ([]int64, error) {
	if value == nil {
		return []int64{}, nil
	}
	return s.list.Serialize([]options.Value{options.Int(*value)})
}

// Deserialize returns the selected sentiment, or nil when the payload is
// empty (no selection).
func (s Feedback) Deserialize(payload []int64) (*int64, error) {
	values, err := s.list.Deserialize(payload)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}
	selected := int64(values[0].(options.Int))
	return &selected, nil
}
