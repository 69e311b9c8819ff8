package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widgetFields() map[string]any {
	return map[string]any{
		"user_key": "colors",
		"label":    "Favorite colors",
		"options":  []string{"Green", "Yellow", "Red"},
		"default":  []int64{1},
		"disabled": false,
		"page":     PageHash("pages/home"),
	}
}

func TestWidgetIDDeterminism(t *testing.T) {
	id1, err := WidgetID("multiselect", widgetFields())
	require.NoError(t, err)

	id2, err := WidgetID("multiselect", widgetFields())
	require.NoError(t, err)

	assert.Equal(t, id1, id2, "WidgetID must be deterministic")
	assert.Len(t, id1, 64, "SHA-256 hex is 64 characters")
}

func TestWidgetIDChangesWithAnyField(t *testing.T) {
	base := MustWidgetID("multiselect", widgetFields())

	mutations := map[string]func(map[string]any){
		"user_key": func(f map[string]any) { f["user_key"] = "colours" },
		"label":    func(f map[string]any) { f["label"] = "Least favorite colors" },
		"options":  func(f map[string]any) { f["options"] = []string{"Green", "Yellow", "Blue"} },
		"default":  func(f map[string]any) { f["default"] = []int64{2} },
		"disabled": func(f map[string]any) { f["disabled"] = true },
		"page":     func(f map[string]any) { f["page"] = PageHash("pages/settings") },
	}

	for field, mutate := range mutations {
		fields := widgetFields()
		mutate(fields)
		id := MustWidgetID("multiselect", fields)
		assert.NotEqual(t, base, id, "changing %s must change the identity", field)
	}
}

func TestWidgetIDChangesWithKind(t *testing.T) {
	id1 := MustWidgetID("multiselect", widgetFields())
	id2 := MustWidgetID("button_group", widgetFields())

	assert.NotEqual(t, id1, id2, "widget kind must feed the identity")
}

func TestWidgetIDOptionOrderSensitive(t *testing.T) {
	fields := widgetFields()
	fields["options"] = []string{"Yellow", "Green", "Red"}

	assert.NotEqual(t, MustWidgetID("multiselect", widgetFields()), MustWidgetID("multiselect", fields),
		"formatted options are hashed positionally")
}

func TestWidgetIDNilFieldMatchesAbsentField(t *testing.T) {
	withNil := widgetFields()
	withNil["help"] = nil

	assert.Equal(t, MustWidgetID("multiselect", widgetFields()), MustWidgetID("multiselect", withNil))
}

func TestWidgetIDRejectsReservedField(t *testing.T) {
	fields := widgetFields()
	fields["widget_kind"] = "sneaky"

	_, err := WidgetID("multiselect", fields)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widget_kind")
}

func TestPageHashDistinguishesPages(t *testing.T) {
	h1 := PageHash("pages/home")
	h2 := PageHash("pages/settings")

	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, h1, PageHash("pages/home"))
}
