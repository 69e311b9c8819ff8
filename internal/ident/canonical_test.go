package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalSortsKeysUTF16(t *testing.T) {
	obj := map[string]any{
		"b": int64(2),
		"a": int64(1),
		"c": int64(3),
	}

	out, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2,"c":3}`, string(out))
}

func TestMarshalCanonicalNoHTMLEscaping(t *testing.T) {
	out, err := MarshalCanonical("<a> & </a>")
	require.NoError(t, err)
	assert.Equal(t, `"<a> & </a>"`, string(out))
}

func TestMarshalCanonicalRejectsFloats(t *testing.T) {
	_, err := MarshalCanonical(map[string]any{"score": 0.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floats are forbidden")
}

func TestMarshalCanonicalRejectsNull(t *testing.T) {
	_, err := MarshalCanonical(map[string]any{"missing": nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null is forbidden")
}

func TestMarshalCanonicalStringSlices(t *testing.T) {
	out, err := MarshalCanonical([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(out))
}

func TestMarshalCanonicalIntSlices(t *testing.T) {
	out, err := MarshalCanonical([]int64{0, 2})
	require.NoError(t, err)
	assert.Equal(t, `[0,2]`, string(out))
}

func TestMarshalCanonicalNFCNormalization(t *testing.T) {
	// "e" + COMBINING ACUTE ACCENT normalizes to the precomposed form
	decomposed := "e\u0301"
	precomposed := "\u00e9"

	out1, err := MarshalCanonical(decomposed)
	require.NoError(t, err)
	out2, err := MarshalCanonical(precomposed)
	require.NoError(t, err)

	assert.Equal(t, out2, out1, "NFC-equivalent strings must serialize identically")
}

func TestMarshalCanonicalLineSeparatorsLiteral(t *testing.T) {
	out, err := MarshalCanonical("a\u2028b\u2029c")
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\u2029c\"", string(out))
}

func TestMarshalCanonicalLiteralBackslashU2028Preserved(t *testing.T) {
	// A literal backslash followed by the text u2028 is not an escape and
	// must survive as escaped backslash + text.
	out, err := MarshalCanonical(`\u2028`)
	require.NoError(t, err)
	assert.Equal(t, `"\\u2028"`, string(out))
}

func TestMarshalCanonicalNestedObject(t *testing.T) {
	obj := map[string]any{
		"outer": map[string]any{
			"z": "last",
			"a": "first",
		},
		"list": []any{int64(1), "two", true},
	}

	out, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"list":[1,"two",true],"outer":{"a":"first","z":"last"}}`, string(out))
}
