// Package schema validates loosely typed configuration trees (the
// map[string]any / []any / scalar shapes produced by JSON, TOML and YAML
// decoders) against a declared structure.
//
// A Spec is built from the constructors in this package and applied with
// Validate. Every violation is collected; the returned error joins one
// *FieldError per problem so callers can list them all.
package schema

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"slices"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Context carries auxiliary values that cross-field rules (see Ref) read
// during validation.
type Context map[string]any

// Options controls a single Validate call.
type Options struct {
	Context Context
	// Strict rejects mapping keys that an Object does not declare.
	Strict bool
}

// Spec describes the expected shape of one node.
type Spec interface {
	check(v any, path string, opts *Options, errs *[]error)
}

// Validate checks value against spec. It returns nil when the value conforms,
// otherwise the errors.Join of every *FieldError found.
func Validate(value any, spec Spec, opts Options) error {
	var errs []error
	spec.check(value, "", &opts, &errs)
	return errors.Join(errs...)
}

func fail(errs *[]error, path, format string, args ...any) {
	*errs = append(*errs, &FieldError{Path: path, Message: fmt.Sprintf(format, args...)})
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "mapping"
	case []any:
		return "list"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Field declares one key of an Object.
type Field struct {
	Name     string
	Spec     Spec
	Required bool
}

// Required declares a key that must be present and non-null.
func Required(name string, spec Spec) Field {
	return Field{Name: name, Spec: spec, Required: true}
}

// Optional declares a key that may be absent.
func Optional(name string, spec Spec) Field {
	return Field{Name: name, Spec: spec}
}

// ObjectSpec is a mapping with a fixed set of declared keys.
type ObjectSpec struct {
	fields []Field
}

// Object returns a spec for a mapping with the given declared fields.
func Object(fields ...Field) *ObjectSpec {
	return &ObjectSpec{fields: fields}
}

// Fields returns the declared field names in declaration order.
func (o *ObjectSpec) Fields() []string {
	names := make([]string, len(o.fields))
	for i, f := range o.fields {
		names[i] = f.Name
	}
	return names
}

func (o *ObjectSpec) check(v any, path string, opts *Options, errs *[]error) {
	m, ok := v.(map[string]any)
	if !ok {
		fail(errs, path, "must be a mapping, got %s", typeName(v))
		return
	}
	declared := make(map[string]struct{}, len(o.fields))
	for _, f := range o.fields {
		declared[f.Name] = struct{}{}
		val, present := m[f.Name]
		if !present || val == nil {
			if f.Required {
				fail(errs, join(path, f.Name), "is required")
			}
			continue
		}
		f.Spec.check(val, join(path, f.Name), opts, errs)
	}
	if !opts.Strict {
		return
	}
	var unknown []string
	for k := range m {
		if _, ok := declared[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		fail(errs, join(path, k), "unknown field")
	}
}

type mapSpec struct {
	values   Spec
	nonEmpty bool
}

// MapOf returns a spec for a mapping with arbitrary keys whose values all
// satisfy values.
func MapOf(values Spec) Spec {
	return &mapSpec{values: values}
}

// NonEmptyMapOf is MapOf that also rejects an empty mapping.
func NonEmptyMapOf(values Spec) Spec {
	return &mapSpec{values: values, nonEmpty: true}
}

func (s *mapSpec) check(v any, path string, opts *Options, errs *[]error) {
	m, ok := v.(map[string]any)
	if !ok {
		fail(errs, path, "must be a mapping, got %s", typeName(v))
		return
	}
	if s.nonEmpty && len(m) == 0 {
		fail(errs, path, "must not be empty")
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			fail(errs, path, "must not have an empty key")
			continue
		}
		if m[k] == nil {
			fail(errs, join(path, k), "must not be null")
			continue
		}
		s.values.check(m[k], join(path, k), opts, errs)
	}
}

type listSpec struct {
	elem Spec
	min  int
}

// ListOf returns a spec for an ordered list of at least min elements, each
// satisfying elem.
func ListOf(elem Spec, min int) Spec {
	return &listSpec{elem: elem, min: min}
}

func (s *listSpec) check(v any, path string, opts *Options, errs *[]error) {
	list, ok := v.([]any)
	if !ok {
		fail(errs, path, "must be a list, got %s", typeName(v))
		return
	}
	if len(list) < s.min {
		fail(errs, path, "must have at least %d element(s), got %d", s.min, len(list))
	}
	for i, item := range list {
		s.elem.check(item, fmt.Sprintf("%s[%d]", path, i), opts, errs)
	}
}

type stringSpec struct {
	nonEmpty bool
}

// String accepts any string.
func String() Spec { return stringSpec{} }

// NonEmptyString accepts any string with at least one non-space character.
func NonEmptyString() Spec { return stringSpec{nonEmpty: true} }

func (s stringSpec) check(v any, path string, _ *Options, errs *[]error) {
	str, ok := v.(string)
	if !ok {
		fail(errs, path, "must be a string, got %s", typeName(v))
		return
	}
	if s.nonEmpty && strings.TrimSpace(str) == "" {
		fail(errs, path, "must not be empty")
	}
}

// NumberSpec accepts float64 values, optionally bounded.
type NumberSpec struct {
	min, max       float64
	hasMin, hasMax bool
	integer        bool
}

// Number returns an unbounded number spec.
func Number() *NumberSpec { return &NumberSpec{} }

// Min returns a copy of s with an inclusive lower bound.
func (s *NumberSpec) Min(min float64) *NumberSpec {
	c := *s
	c.min, c.hasMin = min, true
	return &c
}

// Max returns a copy of s with an inclusive upper bound.
func (s *NumberSpec) Max(max float64) *NumberSpec {
	c := *s
	c.max, c.hasMax = max, true
	return &c
}

// Integer returns a copy of s that rejects fractional values.
func (s *NumberSpec) Integer() *NumberSpec {
	c := *s
	c.integer = true
	return &c
}

func (s *NumberSpec) check(v any, path string, _ *Options, errs *[]error) {
	n, ok := v.(float64)
	if !ok {
		fail(errs, path, "must be a number, got %s", typeName(v))
		return
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		fail(errs, path, "must be a finite number, got %g", n)
		return
	}
	if s.hasMin && n < s.min {
		fail(errs, path, "must be >= %g, got %g", s.min, n)
	}
	if s.hasMax && n > s.max {
		fail(errs, path, "must be <= %g, got %g", s.max, n)
	}
	if s.integer && n != float64(int64(n)) {
		fail(errs, path, "must be an integer, got %g", n)
	}
}

type boolSpec struct{}

// Bool accepts true or false.
func Bool() Spec { return boolSpec{} }

func (boolSpec) check(v any, path string, _ *Options, errs *[]error) {
	if _, ok := v.(bool); !ok {
		fail(errs, path, "must be a boolean, got %s", typeName(v))
	}
}

type enumSpec struct {
	values []string
}

// OneOf accepts exactly one of the listed strings.
func OneOf(values ...string) Spec {
	return enumSpec{values: values}
}

func (s enumSpec) check(v any, path string, _ *Options, errs *[]error) {
	str, ok := v.(string)
	if !ok {
		fail(errs, path, "must be a string, got %s", typeName(v))
		return
	}
	if !slices.Contains(s.values, str) {
		fail(errs, path, "must be one of %s, got %q", strings.Join(s.values, ", "), str)
	}
}

type colorSpec struct{}

// Color accepts "#rgb" and "#rrggbb" hex colors.
func Color() Spec { return colorSpec{} }

func (colorSpec) check(v any, path string, _ *Options, errs *[]error) {
	str, ok := v.(string)
	if !ok {
		fail(errs, path, "must be a color string, got %s", typeName(v))
		return
	}
	if _, err := ParseColor(str); err != nil {
		fail(errs, path, "%v", err)
	}
}

// ParseColor parses a "#rgb" or "#rrggbb" hex color.
func ParseColor(s string) (colorful.Color, error) {
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return c, nil
}

type urlSpec struct{}

// URL accepts absolute http(s) URLs.
func URL() Spec { return urlSpec{} }

func (urlSpec) check(v any, path string, _ *Options, errs *[]error) {
	str, ok := v.(string)
	if !ok {
		fail(errs, path, "must be a URL string, got %s", typeName(v))
		return
	}
	u, err := url.Parse(str)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		fail(errs, path, "must be an absolute http(s) URL, got %q", str)
	}
}

type refSpec struct {
	key string
}

// Ref accepts a string naming a key of the mapping stored under key in the
// validation Context. It is how a node refers to a sibling section, e.g. a
// component color naming a palette role.
func Ref(key string) Spec {
	return refSpec{key: key}
}

func (s refSpec) check(v any, path string, opts *Options, errs *[]error) {
	str, ok := v.(string)
	if !ok {
		fail(errs, path, "must be a %s reference, got %s", s.key, typeName(v))
		return
	}
	target, ok := opts.Context[s.key].(map[string]any)
	if !ok {
		fail(errs, path, "cannot resolve %q: no %s in context", str, s.key)
		return
	}
	if _, ok := target[str]; !ok {
		fail(errs, path, "references unknown %s entry %q", s.key, str)
	}
}
