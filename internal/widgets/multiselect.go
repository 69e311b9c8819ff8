package widgets

import (
	"github.com/roach88/rerun/internal/ident"
	"github.com/roach88/rerun/internal/options"
	"github.com/roach88/rerun/internal/policy"
	"github.com/roach88/rerun/internal/serde"
	"github.com/roach88/rerun/internal/state"
	"github.com/roach88/rerun/internal/wire"
)

// MultiselectConfig describes one multiselect construction call.
type MultiselectConfig struct {
	Label   string
	Options options.Source
	// Default selects the initially-chosen options. Nil means none.
	Default options.Default
	// Format renders option labels; nil uses the identity stringer.
	Format options.FormatFunc
	// Key is the user-supplied widget key; empty for keyless widgets.
	Key  string
	Help string
	// MaxSelections caps the selection cardinality; 0 means unlimited.
	MaxSelections int
	Placeholder   string
	Disabled      bool
	// OnChange is the caller's change handler. The core only validates it
	// against the callback policy; invocation belongs to the runtime.
	OnChange func()
}

// Multiselect registers a multiselect widget and returns its value for
// this run.
//
// The pipeline per construction call: policy gate, option normalization,
// identity hash, state registration, selection-limit check, coercion,
// conditional value override, emission. It mirrors the order the client
// depends on: the outgoing message is appended exactly once, after the
// value is final.
func Multiselect(ctx *state.Context, cfg MultiselectConfig) ([]options.Value, error) {
	def := cfg.Default
	if def == nil {
		def = options.NoDefault{}
	}
	hasDefault := len(defaultValues(def)) > 0

	if err := policy.Check(ctx, cfg.Key, cfg.OnChange != nil, hasDefault); err != nil {
		return nil, err
	}

	norm, err := options.Transform(cfg.Options, def, cfg.Format)
	if err != nil {
		return nil, err
	}

	id, err := ident.WidgetID(string(wire.KindMultiselect), map[string]any{
		"user_key":       cfg.Key,
		"label":          cfg.Label,
		"options":        norm.Labels,
		"default":        norm.DefaultIndices,
		"disabled":       cfg.Disabled,
		"help":           cfg.Help,
		"max_selections": int64(cfg.MaxSelections),
		"placeholder":    cfg.Placeholder,
		"page":           ctx.PageHash,
	})
	if err != nil {
		return nil, err
	}

	msg := &wire.Message{
		ID:            id,
		Kind:          wire.KindMultiselect,
		Label:         cfg.Label,
		Options:       labelOptions(norm.Labels),
		Default:       norm.DefaultIndices,
		Disabled:      cfg.Disabled,
		MaxSelections: int64(cfg.MaxSelections),
		Placeholder:   cfg.Placeholder,
		Help:          cfg.Help,
	}

	s := serde.NewList(norm.Set, norm.DefaultIndices)
	res, err := state.RegisterValueList(ctx, id, cfg.Key, s.Deserialize, s.Serialize)
	if err != nil {
		return nil, err
	}

	value := serde.CoerceList(res.Value, norm.Set)
	if err := checkMaxSelections(len(value), cfg.MaxSelections); err != nil {
		return nil, err
	}

	if res.ValueChanged {
		override, err := s.Serialize(value)
		if err != nil {
			return nil, err
		}
		msg.Value = override
		msg.SetValue = true
	}

	ctx.SaveForAppTesting(id, cfg.Label)
	ctx.Queue.Enqueue(wire.Envelope{Type: wire.EnvelopeWidget, Widget: msg})

	return value, nil
}

// labelOptions wraps plain labels into wire options.
func labelOptions(labels []string) []wire.Option {
	opts := make([]wire.Option, len(labels))
	for i, l := range labels {
		opts[i] = wire.Option{Label: l}
	}
	return opts
}

// defaultValues unwraps a Default into its value list for the policy
// gate's "non-empty default" question.
func defaultValues(def options.Default) []options.Value {
	if def == nil || def.IsNone() {
		return nil
	}
	return def.Values()
}
