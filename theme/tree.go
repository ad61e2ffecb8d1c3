package theme

import (
	"fmt"
	"reflect"
	"time"
)

// Tree is a theme, or any mapping node inside one. Values are Tree, []any,
// string, float64 or bool once normalized.
type Tree = map[string]any

// Kind classifies a tree node for merging.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindOf reports the kind of a normalized node.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case Tree:
		return KindMapping
	case []any:
		return KindSequence
	default:
		return KindScalar
	}
}

// Clone returns a deep, normalized copy of t. The copy shares no maps or
// slices with t.
func Clone(t Tree) Tree {
	if t == nil {
		return nil
	}
	return normalize(t).(Tree)
}

// Normalize converts a decoded value (from encoding/json, TOML, YAML or Go
// literals) into a freshly allocated tree: every mapping becomes a Tree,
// every list a []any and every number a float64.
func Normalize(v any) any {
	return normalize(v)
}

func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case Tree:
		out := make(Tree, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case string, bool, float64:
		return x
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case []string:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = e
		}
		return out
	case []Tree:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(Tree, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case time.Time:
		return x.Format(time.RFC3339)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(Tree, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = normalize(iter.Value().Interface())
		}
		return out
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem().Interface())
	}
	return v
}

// Lookup walks t along path and returns the node found there.
func Lookup(t Tree, path ...string) (any, bool) {
	var cur any = t
	for _, key := range path {
		m, ok := cur.(Tree)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// LookupString is Lookup for string leaves.
func LookupString(t Tree, path ...string) (string, bool) {
	v, ok := Lookup(t, path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
