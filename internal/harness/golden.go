package harness

import (
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/rerun/internal/ident"
	"github.com/roach88/rerun/internal/wire"
)

// RunWithGolden executes a scenario and compares its canonical-JSON trace
// with the golden file testdata/golden/<name>.golden.
//
// Returns error if scenario execution or trace marshaling fails. Test
// failure (via goldie) occurs if the trace doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	traceJSON, err := MarshalTrace(result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)

	return nil
}

// MarshalTrace renders a result as canonical JSON. The canonical form is
// the same one identity hashing uses, so a trace byte-compares across
// platforms and Go versions.
func MarshalTrace(r *Result) ([]byte, error) {
	return ident.MarshalCanonical(traceObject(r))
}

func traceObject(r *Result) map[string]any {
	messages := make([]any, len(r.Messages))
	for i, env := range r.Messages {
		messages[i] = envelopeObject(env)
	}
	return map[string]any{
		"run_token": r.RunToken,
		"messages":  messages,
	}
}

func envelopeObject(env wire.Envelope) map[string]any {
	switch env.Type {
	case wire.EnvelopeWidget:
		return map[string]any{"type": "widget", "widget": messageObject(env.Widget)}
	case wire.EnvelopeNav:
		return map[string]any{"type": "nav", "nav": navObject(env.Nav)}
	default:
		return map[string]any{"type": fmt.Sprintf("unknown(%d)", env.Type)}
	}
}

// messageObject mirrors the message's wire shape: optional fields are
// omitted at their zero values, never emitted as null.
func messageObject(m *wire.Message) map[string]any {
	obj := map[string]any{
		"id":       m.ID,
		"kind":     string(m.Kind),
		"options":  optionObjects(m.Options),
		"default":  m.Default,
		"disabled": m.Disabled,
	}
	if m.Label != "" {
		obj["label"] = m.Label
	}
	if m.MaxSelections != 0 {
		obj["max_selections"] = m.MaxSelections
	}
	if m.Placeholder != "" {
		obj["placeholder"] = m.Placeholder
	}
	if m.Help != "" {
		obj["help"] = m.Help
	}
	if m.ClickMode != 0 {
		obj["click_mode"] = m.ClickMode.String()
	}
	if m.SelectionVisualization != 0 {
		obj["selection_visualization"] = m.SelectionVisualization.String()
	}
	if m.SetValue {
		obj["set_value"] = true
		obj["value"] = m.Value
	}
	return obj
}

func optionObjects(opts []wire.Option) []any {
	arr := make([]any, len(opts))
	for i, o := range opts {
		obj := map[string]any{"label": o.Label}
		if o.SelectedLabel != "" {
			obj["selected_label"] = o.SelectedLabel
		}
		arr[i] = obj
	}
	return arr
}

func navObject(n *wire.NavMessage) map[string]any {
	entries := make([]any, len(n.Entries))
	for i, e := range n.Entries {
		obj := map[string]any{
			"page_hash": e.PageHash,
			"title":     e.Title,
		}
		if e.Icon != "" {
			obj["icon"] = e.Icon
		}
		entries[i] = obj
	}
	return map[string]any{"entries": entries}
}
