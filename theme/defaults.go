package theme

// Registry holds an immutable baseline theme. The stored tree is never
// handed out; every accessor returns an independent copy, so a Registry is
// safe for concurrent use without locking.
type Registry struct {
	theme Tree
}

// NewRegistry freezes a deep copy of t as the baseline.
func NewRegistry(t Tree) *Registry {
	return &Registry{theme: Clone(t)}
}

// Default returns a fresh copy of the baseline theme.
func (r *Registry) Default() Tree {
	return Clone(r.theme)
}

// DefaultRegistry holds the built-in theme.
var DefaultRegistry = NewRegistry(DefaultTheme())

// DefaultTheme builds the built-in theme. Each call returns a new tree.
func DefaultTheme() Tree {
	palette := defaultPalette()
	return Tree{
		"palette": palette,
		"miscellaneous": Tree{
			"backgroundColor": palette["dark"].(Tree)["50"],
			"color":           palette["dark"].(Tree)["500"],
			"fontFamily":      []any{"Avenir Next", "Open Sans", "Roboto", "Arial"},
			"spacing":         8.0,
		},
		"screenSizes": Tree{
			"xs":     400.0,
			"small":  500.0,
			"medium": 900.0,
		},
		"components": Tree{
			"banner": Tree{
				"overlayColor": "primary",
				"imageSource":  "https://cdn.filestackcontent.com/8I2wVnCRTFxypXRYLRsp",
			},
			"cards": Tree{
				"height":       470.0,
				"width":        470.0,
				"borderRadius": 20.0,
				"default":      cardVariant("dark", "light", "light", "dark"),
				"variants": []any{
					cardVariant("primary", "light", "light", "primary"),
					cardVariant("tertiary", "primary", "light", "primary"),
					cardVariant("light", "secondary", "light", "secondary"),
					cardVariant("secondary", "light", "light", "secondary"),
					cardVariant("light", "primary", "light", "primary"),
				},
			},
		},
	}
}

func cardVariant(background, color, backBackground, backColor string) Tree {
	return Tree{
		"backgroundColor":     background,
		"color":               color,
		"backBackgroundColor": backBackground,
		"backColor":           backColor,
	}
}
