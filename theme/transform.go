package theme

import (
	"fmt"
	"strings"

	"themekit/schema"
)

// Transformer maps a validated theme to its consumption-ready form. It must
// not modify its input.
type Transformer interface {
	Transform(t Tree) Tree
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(t Tree) Tree

func (f TransformerFunc) Transform(t Tree) Tree { return f(t) }

// Identity returns a copy of its input untouched.
var Identity = TransformerFunc(Clone)

// Keys added by CSSTransformer.
const (
	ContrastTextKey = "contrastText"
	FontStackKey    = "fontStack"
	SpacingUnitKey  = "spacingUnit"
)

// CSSTransformer expands a theme into CSS-ready values:
//   - swatch colors and misc colors become lowercase "#rrggbb";
//   - every swatch gains contrastText, the foreground matching its
//     contrastDefaultColor;
//   - miscellaneous gains fontStack (a CSS font-family value) and
//     spacingUnit (spacing in px).
//
// Values it cannot interpret are left as they are.
type CSSTransformer struct{}

func (CSSTransformer) Transform(t Tree) Tree {
	out := Clone(t)
	if palette, ok := out["palette"].(Tree); ok {
		for _, v := range palette {
			if sw, ok := v.(Tree); ok {
				transformSwatch(sw)
			}
		}
	}
	if misc, ok := out["miscellaneous"].(Tree); ok {
		transformMisc(misc)
	}
	return out
}

func transformSwatch(sw Tree) {
	for k, v := range sw {
		if k == ContrastKey {
			continue
		}
		if s, ok := v.(string); ok {
			sw[k] = cssColor(s)
		}
	}
	switch sw[ContrastKey] {
	case ContrastLight:
		sw[ContrastTextKey] = "#ffffff"
	case ContrastDark:
		sw[ContrastTextKey] = "#000000"
	}
}

func transformMisc(misc Tree) {
	for _, k := range []string{"backgroundColor", "color"} {
		if s, ok := misc[k].(string); ok {
			misc[k] = cssColor(s)
		}
	}
	if fonts, ok := misc["fontFamily"].([]any); ok {
		misc[FontStackKey] = fontStack(fonts)
	}
	if n, ok := misc["spacing"].(float64); ok {
		misc[SpacingUnitKey] = fmt.Sprintf("%gpx", n)
	}
}

func cssColor(s string) string {
	c, err := schema.ParseColor(s)
	if err != nil {
		return s
	}
	return c.Hex()
}

// fontStack quotes family names containing spaces, as CSS requires.
func fontStack(fonts []any) string {
	parts := make([]string, 0, len(fonts))
	for _, f := range fonts {
		name, ok := f.(string)
		if !ok {
			continue
		}
		if strings.ContainsAny(name, " \t") {
			name = "'" + name + "'"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}
