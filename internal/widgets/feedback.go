package widgets

import (
	"github.com/roach88/rerun/internal/ident"
	"github.com/roach88/rerun/internal/policy"
	"github.com/roach88/rerun/internal/serde"
	"github.com/roach88/rerun/internal/state"
	"github.com/roach88/rerun/internal/wire"
)

// Feedback kind names.
const (
	FeedbackThumbs = "thumbs"
	FeedbackFaces  = "faces"
	FeedbackStars  = "stars"
)

// FeedbackConfig carries the optional knobs of a feedback construction
// call; the kind is positional because it defines the widget.
type FeedbackConfig struct {
	// Key is the user-supplied widget key; empty for keyless widgets.
	Key      string
	Disabled bool
	OnChange func()
}

// feedbackSpec is the per-kind rendering and value-domain table. Icons are
// material icon references resolved by the client. Values holds the
// application value behind each rendered position; every kind uses the
// option index itself.
type feedbackSpec struct {
	options       []wire.Option
	values        []int64
	visualization wire.SelectionVisualization
}

func feedbackSpecFor(kind string) (feedbackSpec, error) {
	switch kind {
	case FeedbackThumbs:
		return feedbackSpec{
			options: []wire.Option{
				{Label: ":material/thumb_up:"},
				{Label: ":material/thumb_down:"},
			},
			values:        []int64{0, 1},
			visualization: wire.OnlySelected,
		}, nil
	case FeedbackFaces:
		return feedbackSpec{
			options: []wire.Option{
				{Label: ":material/sentiment_sad:"},
				{Label: ":material/sentiment_dissatisfied:"},
				{Label: ":material/sentiment_neutral:"},
				{Label: ":material/sentiment_satisfied:"},
				{Label: ":material/sentiment_very_satisfied:"},
			},
			values:        []int64{0, 1, 2, 3, 4},
			visualization: wire.OnlySelected,
		}, nil
	case FeedbackStars:
		star := wire.Option{
			Label:         ":material/star:",
			SelectedLabel: ":material/star_rate:",
		}
		return feedbackSpec{
			options:       []wire.Option{star, star, star, star, star},
			values:        []int64{0, 1, 2, 3, 4},
			visualization: wire.AllUpToSelected,
		}, nil
	default:
		return feedbackSpec{}, &InvalidFeedbackOptionError{Got: kind}
	}
}

// Feedback registers a sentiment widget and returns the selected option
// index, or nil while nothing is selected.
func Feedback(ctx *state.Context, kind string, cfg FeedbackConfig) (*int64, error) {
	spec, err := feedbackSpecFor(kind)
	if err != nil {
		return nil, err
	}

	if err := policy.Check(ctx, cfg.Key, cfg.OnChange != nil, false); err != nil {
		return nil, err
	}

	labels := make([]string, len(spec.options))
	for i, o := range spec.options {
		labels[i] = o.Label
	}

	id, err := ident.WidgetID(string(wire.KindButtonGroup), map[string]any{
		"user_key":                cfg.Key,
		"feedback_kind":           kind,
		"options":                 labels,
		"disabled":                cfg.Disabled,
		"click_mode":              wire.SingleSelect.String(),
		"selection_visualization": spec.visualization.String(),
		"page":                    ctx.PageHash,
	})
	if err != nil {
		return nil, err
	}

	msg := &wire.Message{
		ID:                     id,
		Kind:                   wire.KindButtonGroup,
		Options:                spec.options,
		Default:                []int64{},
		Disabled:               cfg.Disabled,
		ClickMode:              wire.SingleSelect,
		SelectionVisualization: spec.visualization,
	}

	s := serde.NewFeedback(spec.values)
	res, err := state.RegisterSingleValue(ctx, id, cfg.Key, s.Deserialize, s.Serialize)
	if err != nil {
		return nil, err
	}

	if res.ValueChanged {
		override, err := s.Serialize(res.Value)
		if err != nil {
			return nil, err
		}
		msg.Value = override
		msg.SetValue = true
	}

	ctx.SaveForAppTesting(id, "feedback:"+kind)
	ctx.Queue.Enqueue(wire.Envelope{Type: wire.EnvelopeWidget, Widget: msg})

	return res.Value, nil
}
