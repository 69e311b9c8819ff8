package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformStrings(t *testing.T) {
	got, err := Transform(Strings{"a", "b", "c"}, NoDefault{}, nil)
	require.NoError(t, err)

	want := Normalized{
		Set:            Set{Str("a"), Str("b"), Str("c")},
		Labels:         []string{"a", "b", "c"},
		DefaultIndices: []int64{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Transform mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformSingleScalar(t *testing.T) {
	got, err := Transform(Single{V: Str("only")}, DefaultOf(Str("only")), nil)
	require.NoError(t, err)

	assert.Equal(t, Set{Str("only")}, got.Set)
	assert.Equal(t, []int64{0}, got.DefaultIndices)
}

func TestTransformRange(t *testing.T) {
	got, err := Transform(Range{N: 3}, NoDefault{}, nil)
	require.NoError(t, err)

	assert.Equal(t, Set{Int(0), Int(1), Int(2)}, got.Set)
	assert.Equal(t, []string{"0", "1", "2"}, got.Labels)
}

func TestTransformUnorderedIsSorted(t *testing.T) {
	got, err := Transform(Unordered{Str("c"), Str("a"), Str("b")}, NoDefault{}, nil)
	require.NoError(t, err)

	assert.Equal(t, Set{Str("a"), Str("b"), Str("c")}, got.Set,
		"set-shaped input must normalize deterministically")
}

func TestTransformScalarDefault(t *testing.T) {
	got, err := Transform(Strings{"a", "b"}, DefaultOf(Str("a")), nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, got.DefaultIndices)
}

func TestTransformListDefault(t *testing.T) {
	got, err := Transform(Strings{"a", "b", "c"}, DefaultList(Str("c"), Str("a")), nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 0}, got.DefaultIndices,
		"default indices preserve the caller's default order")
}

func TestTransformDuplicateOptionsFirstIndexWins(t *testing.T) {
	got, err := Transform(Strings{"a", "b", "a"}, DefaultOf(Str("a")), nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, got.DefaultIndices)
}

func TestTransformDefaultNotInOptions(t *testing.T) {
	_, err := Transform(Ints{1, 2, 3}, DefaultOf(Int(5)), nil)
	require.Error(t, err)
	assert.True(t, IsInvalidDefault(err))
	assert.Contains(t, err.Error(), "'5'", "error must name the offending default")
}

func TestTransformMixedKindsNotComparable(t *testing.T) {
	_, err := Transform(Values{Int(1), Str("a")}, NoDefault{}, nil)
	require.Error(t, err)
	assert.True(t, IsInvalidOptions(err))
	assert.Contains(t, err.Error(), "not mutually comparable")
}

func TestTransformComparabilityCheckedBeforeDefaults(t *testing.T) {
	// The bogus default would also fail, but comparability must win.
	_, err := Transform(Values{Int(1), Str("a")}, DefaultOf(Str("zzz")), nil)
	require.Error(t, err)
	assert.True(t, IsInvalidOptions(err))
	assert.False(t, IsInvalidDefault(err))
}

func TestTransformCustomFormatFunc(t *testing.T) {
	upper := func(v Value) string { return "opt:" + Format(v) }
	got, err := Transform(Strings{"a", "b"}, NoDefault{}, upper)
	require.NoError(t, err)
	assert.Equal(t, []string{"opt:a", "opt:b"}, got.Labels)
}

func TestTransformRefs(t *testing.T) {
	red := NewRef("RED", 0xff0000)
	blue := NewRef("BLUE", 0x0000ff)

	got, err := Transform(Refs{red, blue}, DefaultOf(NewRef("BLUE", nil)), nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, got.DefaultIndices,
		"ref defaults match by name, not pointer identity")
	assert.Equal(t, []string{"RED", "BLUE"}, got.Labels)
}

func TestSetIndexOf(t *testing.T) {
	s := Set{Str("a"), Str("b"), Str("a")}
	assert.Equal(t, 0, s.IndexOf(Str("a")))
	assert.Equal(t, 1, s.IndexOf(Str("b")))
	assert.Equal(t, -1, s.IndexOf(Str("z")))
}

func TestEqualAcrossKinds(t *testing.T) {
	assert.False(t, Equal(Int(1), Str("1")))
	assert.True(t, Equal(NewRef("X", 1), NewRef("X", 2)),
		"refs compare by name only")
}

func TestLessBools(t *testing.T) {
	assert.True(t, Less(Bool(false), Bool(true)))
	assert.False(t, Less(Bool(true), Bool(false)))
}
