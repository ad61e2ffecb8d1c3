package theme

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickVariantBounds(t *testing.T) {
	t.Parallel()

	th := Resolve(nil)
	n := len(Variants(th, "cards"))
	require.Equal(t, 5, n)

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		idx, err := PickCardVariant(th)
		require.NoError(t, err)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, n)
		seen[idx] = true
	}
	assert.Len(t, seen, n, "every variant should be picked over repeated sampling")
}

func TestPickVariantWithIsDeterministic(t *testing.T) {
	t.Parallel()

	th := DefaultTheme()
	a := rand.New(rand.NewPCG(1, 2))
	b := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 50; i++ {
		x, err := PickVariantWith(a, th, "cards")
		require.NoError(t, err)
		y, err := PickVariantWith(b, th, "cards")
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestPickVariantEmptySet(t *testing.T) {
	t.Parallel()

	emptied := Merge(DefaultTheme(), Tree{"components": Tree{"cards": Tree{"variants": []any{}}}})
	notList := Merge(DefaultTheme(), Tree{"components": Tree{"cards": Tree{"variants": "none"}}})

	tests := []struct {
		name      string
		theme     Tree
		component string
	}{
		{name: "missing component", theme: DefaultTheme(), component: "chips"},
		{name: "component without variants", theme: DefaultTheme(), component: "banner"},
		{name: "empty list", theme: emptied, component: "cards"},
		{name: "not a list", theme: notList, component: "cards"},
		{name: "nil theme", theme: nil, component: "cards"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := PickVariant(tt.theme, tt.component)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrEmptyVariantSet))
			assert.Contains(t, err.Error(), tt.component)
		})
	}
}

func TestEmptyVariantListIsValid(t *testing.T) {
	t.Parallel()

	r, rep := newTestResolver()
	got := r.Resolve(Tree{"components": Tree{"cards": Tree{"variants": []any{}}}})

	assert.Zero(t, rep.count())
	assert.Empty(t, Variants(got, "cards"))
}
