package theme

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrEmptyVariantSet is returned when a component has no variants to pick
// from: the component is absent, has no "variants" list, or the list is
// empty.
var ErrEmptyVariantSet = errors.New("empty variant set")

// Variants returns the variants list of component in t, or nil.
func Variants(t Tree, component string) []any {
	v, _ := Lookup(t, "components", component, "variants")
	list, _ := v.([]any)
	return list
}

// PickVariant returns a uniformly random index into component's variants.
func PickVariant(t Tree, component string) (int, error) {
	return pickVariant(t, component, rand.IntN)
}

// PickVariantWith is PickVariant drawing from r.
func PickVariantWith(r *rand.Rand, t Tree, component string) (int, error) {
	return pickVariant(t, component, r.IntN)
}

// PickCardVariant picks a random card variant index.
func PickCardVariant(t Tree) (int, error) {
	return PickVariant(t, "cards")
}

func pickVariant(t Tree, component string, intN func(int) int) (int, error) {
	n := len(Variants(t, component))
	if n == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmptyVariantSet, component)
	}
	return intN(n), nil
}
