package theme

import "themekit/schema"

// ComponentSpec declares the configuration shape of one component under the
// theme's "components" section.
type ComponentSpec struct {
	Name   string
	Schema schema.Spec
}

var (
	components     = map[string]ComponentSpec{}
	componentOrder []string
)

// RegisterComponent adds a component spec if not already present. Subsequent
// registrations with the same name overwrite the spec but preserve original
// ordering. It must be called during initialization, before any resolution.
func RegisterComponent(spec ComponentSpec) {
	if _, exists := components[spec.Name]; !exists {
		componentOrder = append(componentOrder, spec.Name)
	}
	components[spec.Name] = spec
}

// Components returns the registered component names in registration order.
func Components() []string {
	out := make([]string, len(componentOrder))
	copy(out, componentOrder)
	return out
}

func init() {
	RegisterComponent(ComponentSpec{
		Name: "banner",
		Schema: schema.Object(
			schema.Required("overlayColor", roleRef),
			schema.Required("imageSource", schema.URL()),
		),
	})
	RegisterComponent(ComponentSpec{
		Name: "cards",
		Schema: schema.Object(
			schema.Required("height", schema.Number().Min(0)),
			schema.Required("width", schema.Number().Min(0)),
			schema.Required("borderRadius", schema.Number().Min(0)),
			schema.Required("default", cardVariantSpec),
			schema.Required("variants", schema.ListOf(cardVariantSpec, 0)),
		),
	})
}
