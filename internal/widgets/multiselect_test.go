package widgets

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rerun/internal/options"
	"github.com/roach88/rerun/internal/policy"
	"github.com/roach88/rerun/internal/state"
	"github.com/roach88/rerun/internal/wire"
)

type run struct {
	ctx   *state.Context
	queue *wire.Queue
}

func newRun(opts ...state.ContextOption) run {
	q := wire.NewQueue()
	return run{
		ctx:   state.NewContext("run-1", state.NewSession(), q, opts...),
		queue: q,
	}
}

func lastWidgetMessage(t *testing.T, q *wire.Queue) *wire.Message {
	t.Helper()
	envs := q.Drain()
	require.NotEmpty(t, envs, "a successful registration appends exactly one message")
	last := envs[len(envs)-1]
	require.Equal(t, wire.EnvelopeWidget, last.Type)
	return last.Widget
}

func colorsConfig() MultiselectConfig {
	return MultiselectConfig{
		Label:   "Favorite colors",
		Options: options.Strings{"red", "green", "blue"},
		Default: options.DefaultOf(options.Str("green")),
	}
}

func TestMultiselectDefaultValue(t *testing.T) {
	r := newRun()

	value, err := Multiselect(r.ctx, colorsConfig())
	require.NoError(t, err)
	assert.Equal(t, []options.Value{options.Str("green")}, value)

	msg := lastWidgetMessage(t, r.queue)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, wire.KindMultiselect, msg.Kind)
	assert.Equal(t, []int64{1}, msg.Default)
	assert.False(t, msg.SetValue, "an unchanged widget never forces the client")
	assert.Equal(t, []wire.Option{{Label: "red"}, {Label: "green"}, {Label: "blue"}}, msg.Options)
}

func TestMultiselectClientOverride(t *testing.T) {
	first := newRun()
	_, err := Multiselect(first.ctx, colorsConfig())
	require.NoError(t, err)
	id := lastWidgetMessage(t, first.queue).ID

	second := newRun(state.WithClientValue(id, []int64{0, 2}))
	value, err := Multiselect(second.ctx, colorsConfig())
	require.NoError(t, err)

	assert.Equal(t, []options.Value{options.Str("red"), options.Str("blue")}, value)
	msg := lastWidgetMessage(t, second.queue)
	assert.True(t, msg.SetValue)
	assert.Equal(t, []int64{0, 2}, msg.Value)
}

func TestMultiselectIdentityDeterministic(t *testing.T) {
	a := newRun()
	b := newRun()
	_, err := Multiselect(a.ctx, colorsConfig())
	require.NoError(t, err)
	_, err = Multiselect(b.ctx, colorsConfig())
	require.NoError(t, err)

	assert.Equal(t, lastWidgetMessage(t, a.queue).ID, lastWidgetMessage(t, b.queue).ID)
}

func TestMultiselectIdentitySensitivity(t *testing.T) {
	base := newRun()
	_, err := Multiselect(base.ctx, colorsConfig())
	require.NoError(t, err)
	baseID := lastWidgetMessage(t, base.queue).ID

	t.Run("label", func(t *testing.T) {
		r := newRun()
		cfg := colorsConfig()
		cfg.Label = "Least favorite colors"
		_, err := Multiselect(r.ctx, cfg)
		require.NoError(t, err)
		assert.NotEqual(t, baseID, lastWidgetMessage(t, r.queue).ID)
	})

	t.Run("page", func(t *testing.T) {
		r := newRun(state.WithPage("page-2"))
		_, err := Multiselect(r.ctx, colorsConfig())
		require.NoError(t, err)
		assert.NotEqual(t, baseID, lastWidgetMessage(t, r.queue).ID,
			"the same call on another page is a distinct widget")
	})

	t.Run("user key", func(t *testing.T) {
		r := newRun()
		cfg := colorsConfig()
		cfg.Key = "colors"
		_, err := Multiselect(r.ctx, cfg)
		require.NoError(t, err)
		assert.NotEqual(t, baseID, lastWidgetMessage(t, r.queue).ID)
	})
}

func TestMultiselectMixedKindsRejected(t *testing.T) {
	r := newRun()
	_, err := Multiselect(r.ctx, MultiselectConfig{
		Label:   "Mixed",
		Options: options.Values{options.Int(1), options.Str("a")},
	})
	require.Error(t, err)
	assert.True(t, options.IsInvalidOptions(err))
	assert.Empty(t, r.queue.Drain(), "rejected widgets emit nothing")
}

func TestMultiselectDefaultNotInOptions(t *testing.T) {
	r := newRun()
	cfg := colorsConfig()
	cfg.Default = options.DefaultOf(options.Str("purple"))

	_, err := Multiselect(r.ctx, cfg)
	require.Error(t, err)
	assert.True(t, options.IsInvalidDefault(err))
	assert.Contains(t, err.Error(), "purple")
}

func TestMultiselectMaxSelectionsMessage(t *testing.T) {
	r := newRun()
	_, err := Multiselect(r.ctx, MultiselectConfig{
		Label:         "Too many",
		Options:       options.Strings{"a", "b", "c"},
		Default:       options.DefaultList(options.Str("a"), options.Str("b"), options.Str("c")),
		MaxSelections: 2,
	})
	require.Error(t, err)
	assert.True(t, IsSelectionLimit(err))

	g := goldie.New(t)
	g.Assert(t, "max_selections_message", []byte(err.Error()))
}

func TestMultiselectDefaultConflictsWithForcedWrite(t *testing.T) {
	r := newRun()
	r.ctx.Session.ForceWrite("colors", []int64{0})

	cfg := colorsConfig()
	cfg.Key = "colors"
	_, err := Multiselect(r.ctx, cfg)
	require.Error(t, err)
	assert.True(t, policy.IsViolation(err, policy.CodeStateConflict))
}

func TestMultiselectForcedWriteWithoutDefault(t *testing.T) {
	first := newRun()
	cfg := MultiselectConfig{
		Label:   "Favorite colors",
		Options: options.Strings{"red", "green", "blue"},
		Key:     "colors",
	}
	_, err := Multiselect(first.ctx, cfg)
	require.NoError(t, err)
	id := lastWidgetMessage(t, first.queue).ID

	r := newRun()
	r.ctx.Session.ForceWrite("colors", []int64{2})
	value, err := Multiselect(r.ctx, cfg)
	require.NoError(t, err)

	assert.Equal(t, []options.Value{options.Str("blue")}, value)
	msg := lastWidgetMessage(t, r.queue)
	assert.Equal(t, id, msg.ID)
	assert.True(t, msg.SetValue)
	assert.Equal(t, []int64{2}, msg.Value)
}

func TestMultiselectCoercionReturnsCurrentRunObjects(t *testing.T) {
	build := func() ([]*options.Ref, MultiselectConfig) {
		refs := []*options.Ref{
			options.NewRef("alpha", 1),
			options.NewRef("beta", 2),
		}
		return refs, MultiselectConfig{
			Label:   "Models",
			Options: options.Refs(refs),
		}
	}

	_, cfg := build()
	first := newRun()
	_, err := Multiselect(first.ctx, cfg)
	require.NoError(t, err)
	id := lastWidgetMessage(t, first.queue).ID

	freshRefs, freshCfg := build()
	r := newRun(state.WithClientValue(id, []int64{0}))
	value, err := Multiselect(r.ctx, freshCfg)
	require.NoError(t, err)

	require.Len(t, value, 1)
	assert.Same(t, freshRefs[0], value[0],
		"stored selections resolve to this run's option objects")
}

func TestMultiselectFragmentReplayRejected(t *testing.T) {
	r := newRun(state.WithFragmentReplay())
	_, err := Multiselect(r.ctx, colorsConfig())
	require.Error(t, err)
	assert.True(t, policy.IsViolation(err, policy.CodeFragmentReplay))
}

func TestMultiselectCallbackDisallowed(t *testing.T) {
	r := newRun(state.WithCallbacksDisallowed())
	cfg := colorsConfig()
	cfg.OnChange = func() {}
	_, err := Multiselect(r.ctx, cfg)
	require.Error(t, err)
	assert.True(t, policy.IsViolation(err, policy.CodeCallbackDisallowed))
}
