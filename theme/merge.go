package theme

// mergeRule combines a base node with an override node of a given kind.
// The override handed to a rule is already a private copy.
type mergeRule func(base, override any) any

// mergeRules selects the rule by the override's kind. Sequences are atomic:
// an override list replaces the base list, elements are never spliced.
var mergeRules map[Kind]mergeRule

func init() {
	mergeRules = map[Kind]mergeRule{
		KindMapping:  mergeMapping,
		KindSequence: replaceNode,
		KindScalar:   replaceNode,
		KindNull:     keepBase,
	}
}

// Merge overlays override onto base and returns a new tree. Neither input
// is modified and the result shares no maps or slices with them.
//
// Mappings merge key by key, recursively; keys missing from override keep
// the base value and keys only in override are carried over. Lists and
// scalars in override replace the base value. A nil override value means
// "not provided".
func Merge(base, override Tree) Tree {
	return mergeMapping(base, Clone(override)).(Tree)
}

func mergeNode(base, override any) any {
	return mergeRules[KindOf(override)](base, override)
}

func mergeMapping(base, override any) any {
	b, _ := base.(Tree)
	o, _ := override.(Tree)
	out := make(Tree, len(b)+len(o))
	for k, v := range b {
		out[k] = normalize(v)
	}
	for k, v := range o {
		baseVal, inBase := b[k]
		if !inBase && KindOf(v) == KindNull {
			continue
		}
		out[k] = mergeNode(baseVal, v)
	}
	return out
}

func replaceNode(_, override any) any {
	return override
}

func keepBase(base, _ any) any {
	return normalize(base)
}
