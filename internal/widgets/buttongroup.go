package widgets

import (
	"github.com/roach88/rerun/internal/ident"
	"github.com/roach88/rerun/internal/options"
	"github.com/roach88/rerun/internal/policy"
	"github.com/roach88/rerun/internal/serde"
	"github.com/roach88/rerun/internal/state"
	"github.com/roach88/rerun/internal/wire"
)

// ButtonGroupConfig describes one button-group construction call. A button
// group is the segmented-control family: pills, segments, and the sentiment
// widgets are all rendered from this one message shape.
type ButtonGroupConfig struct {
	Label   string
	Options options.Source
	// Default selects the initially-chosen options. Nil means none.
	Default options.Default
	// Format renders option labels; nil uses the identity stringer.
	Format options.FormatFunc
	// SelectedFormat, when non-nil, renders the alternate label shown while
	// an option is selected.
	SelectedFormat options.FormatFunc
	// Key is the user-supplied widget key; empty for keyless widgets.
	Key  string
	Help string
	// ClickMode picks single- or multi-select behavior. The zero value
	// means single select.
	ClickMode wire.ClickMode
	// SelectionVisualization picks how the client decorates a selection.
	// The zero value means only the selected option.
	SelectionVisualization wire.SelectionVisualization
	Disabled               bool
	OnChange               func()
}

// ButtonGroupResult is a button group's registered value for this run.
type ButtonGroupResult struct {
	// Values holds the selected options in option-set order. Single click
	// mode yields at most one element.
	Values []options.Value
	// Changed reports whether an external write overrode the default.
	Changed bool
}

// ButtonGroup registers a button-group widget and returns its value for
// this run. The pipeline matches Multiselect; click mode and selection
// visualization additionally feed the identity hash, so flipping either
// produces a fresh widget.
func ButtonGroup(ctx *state.Context, cfg ButtonGroupConfig) (ButtonGroupResult, error) {
	def := cfg.Default
	if def == nil {
		def = options.NoDefault{}
	}
	clickMode := cfg.ClickMode
	if clickMode == 0 {
		clickMode = wire.SingleSelect
	}
	visualization := cfg.SelectionVisualization
	if visualization == 0 {
		visualization = wire.OnlySelected
	}
	hasDefault := len(defaultValues(def)) > 0

	if err := policy.Check(ctx, cfg.Key, cfg.OnChange != nil, hasDefault); err != nil {
		return ButtonGroupResult{}, err
	}

	norm, err := options.Transform(cfg.Options, def, cfg.Format)
	if err != nil {
		return ButtonGroupResult{}, err
	}

	id, err := ident.WidgetID(string(wire.KindButtonGroup), map[string]any{
		"user_key":                cfg.Key,
		"label":                   cfg.Label,
		"options":                 norm.Labels,
		"default":                 norm.DefaultIndices,
		"disabled":                cfg.Disabled,
		"help":                    cfg.Help,
		"click_mode":              clickMode.String(),
		"selection_visualization": visualization.String(),
		"page":                    ctx.PageHash,
	})
	if err != nil {
		return ButtonGroupResult{}, err
	}

	msg := &wire.Message{
		ID:                     id,
		Kind:                   wire.KindButtonGroup,
		Label:                  cfg.Label,
		Options:                groupOptions(norm, cfg.SelectedFormat),
		Default:                norm.DefaultIndices,
		Disabled:               cfg.Disabled,
		Help:                   cfg.Help,
		ClickMode:              clickMode,
		SelectionVisualization: visualization,
	}

	s := serde.NewList(norm.Set, norm.DefaultIndices)
	res, err := state.RegisterValueList(ctx, id, cfg.Key, s.Deserialize, s.Serialize)
	if err != nil {
		return ButtonGroupResult{}, err
	}

	values := serde.CoerceList(res.Value, norm.Set)

	if res.ValueChanged {
		override, err := s.Serialize(values)
		if err != nil {
			return ButtonGroupResult{}, err
		}
		msg.Value = override
		msg.SetValue = true
	}

	ctx.SaveForAppTesting(id, cfg.Label)
	ctx.Queue.Enqueue(wire.Envelope{Type: wire.EnvelopeWidget, Widget: msg})

	return ButtonGroupResult{Values: values, Changed: res.ValueChanged}, nil
}

// groupOptions renders the wire options, attaching selected-state labels
// when a selected formatter is configured.
func groupOptions(norm options.Normalized, selected options.FormatFunc) []wire.Option {
	opts := make([]wire.Option, len(norm.Set))
	for i, label := range norm.Labels {
		opts[i] = wire.Option{Label: label}
		if selected != nil {
			opts[i].SelectedLabel = selected(norm.Set[i])
		}
	}
	return opts
}
