package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOverridePrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		override Tree
		path     []string
		want     any
	}{
		{
			name:     "top level scalar",
			override: Tree{"miscellaneous": Tree{"spacing": 4}},
			path:     []string{"miscellaneous", "spacing"},
			want:     4.0,
		},
		{
			name:     "swatch color",
			override: Tree{"palette": Tree{"primary": Tree{"500": "#000000"}}},
			path:     []string{"palette", "primary", "500"},
			want:     "#000000",
		},
		{
			name:     "breakpoint",
			override: Tree{"screenSizes": Tree{"xs": int64(320)}},
			path:     []string{"screenSizes", "xs"},
			want:     320.0,
		},
		{
			name:     "scalar replaces mapping",
			override: Tree{"components": Tree{"banner": "none"}},
			path:     []string{"components", "banner"},
			want:     "none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Lookup(Merge(DefaultTheme(), tt.override), tt.path...)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeListsAreAtomic(t *testing.T) {
	t.Parallel()

	base := DefaultTheme()
	require.Len(t, base["miscellaneous"].(Tree)["fontFamily"], 4)

	merged := Merge(base, Tree{"miscellaneous": Tree{"fontFamily": []string{"Inter"}}})
	assert.Equal(t, []any{"Inter"}, merged["miscellaneous"].(Tree)["fontFamily"])

	variants := []any{Tree{"backgroundColor": "dark"}}
	merged = Merge(base, Tree{"components": Tree{"cards": Tree{"variants": variants}}})
	got := Variants(merged, "cards")
	require.Len(t, got, 1)
	assert.Equal(t, Tree{"backgroundColor": "dark"}, got[0], "elements must not be merged with default elements")
}

func TestMergeDeepLeafKeepsSiblings(t *testing.T) {
	t.Parallel()

	base := DefaultTheme()
	merged := Merge(base, Tree{"components": Tree{"cards": Tree{"default": Tree{"color": "primary"}}}})

	def := merged["components"].(Tree)["cards"].(Tree)["default"].(Tree)
	assert.Equal(t, "primary", def["color"])
	assert.Equal(t, "dark", def["backgroundColor"])
	assert.Equal(t, "light", def["backBackgroundColor"])
	assert.Equal(t, "dark", def["backColor"])

	cards := merged["components"].(Tree)["cards"].(Tree)
	assert.Equal(t, 470.0, cards["height"])
	assert.Len(t, cards["variants"], 5)
}

func TestMergeNullMeansNotProvided(t *testing.T) {
	t.Parallel()

	merged := Merge(DefaultTheme(), Tree{
		"miscellaneous": Tree{"spacing": nil},
		"palette":       nil,
		"newKey":        nil,
	})

	assert.Equal(t, 8.0, merged["miscellaneous"].(Tree)["spacing"])
	assert.Equal(t, DefaultTheme()["palette"], merged["palette"])
	assert.NotContains(t, merged, "newKey")
}

func TestMergeCarriesUnknownKeys(t *testing.T) {
	t.Parallel()

	merged := Merge(DefaultTheme(), Tree{
		"extra":   Tree{"nested": Tree{"deep": true}},
		"palette": Tree{"brand": Tree{"500": "#123456"}},
	})

	v, ok := Lookup(merged, "extra", "nested", "deep")
	require.True(t, ok)
	assert.Equal(t, true, v)
	assert.Equal(t, Tree{"500": "#123456"}, merged["palette"].(Tree)["brand"])
}

func TestMergeDoesNotMutateOrAlias(t *testing.T) {
	t.Parallel()

	base := DefaultTheme()
	override := Tree{
		"miscellaneous": Tree{"fontFamily": []any{"Inter"}},
		"palette":       Tree{"primary": Tree{"500": "#000"}},
	}
	baseBefore := Clone(base)
	overrideBefore := Clone(override)

	merged := Merge(base, override)
	assert.Equal(t, baseBefore, base)
	assert.Equal(t, overrideBefore, override)

	merged["miscellaneous"].(Tree)["fontFamily"].([]any)[0] = "changed"
	merged["palette"].(Tree)["dark"].(Tree)["500"] = "#changed"
	merged["components"].(Tree)["cards"].(Tree)["variants"].([]any)[0].(Tree)["color"] = "changed"

	assert.Equal(t, baseBefore, base)
	assert.Equal(t, overrideBefore, override)
}

func TestMergeEmptyOverrideCopiesBase(t *testing.T) {
	t.Parallel()

	base := DefaultTheme()
	assert.Equal(t, base, Merge(base, nil))
	assert.Equal(t, base, Merge(base, Tree{}))
}

func TestMergeRuleTable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "new", mergeNode("old", "new"))
	assert.Equal(t, "old", mergeNode("old", nil))
	assert.Equal(t, []any{1.0}, mergeNode([]any{2.0, 3.0}, []any{1.0}))
	assert.Equal(t, Tree{"a": 1.0, "b": 2.0}, mergeNode(Tree{"a": 1.0}, Tree{"b": 2.0}))
	assert.Equal(t, Tree{"b": 2.0}, mergeNode([]any{"x"}, Tree{"b": 2.0}))
	assert.Len(t, mergeRules, 4)
}
