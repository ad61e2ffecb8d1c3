package theme

import "themekit/schema"

// PaletteContextKey is the schema.Context key under which the candidate's
// palette is exposed to role references.
const PaletteContextKey = "palette"

var (
	roleRef = schema.Ref(PaletteContextKey)

	cardVariantSpec = schema.Object(
		schema.Required("backgroundColor", roleRef),
		schema.Required("color", roleRef),
		schema.Required("backBackgroundColor", roleRef),
		schema.Required("backColor", roleRef),
	)
)

func swatchSpec() schema.Spec {
	fields := []schema.Field{schema.Required(ContrastKey, schema.OneOf(ContrastLight, ContrastDark))}
	for _, key := range IntensityKeys {
		if key == "500" {
			fields = append(fields, schema.Required(key, schema.Color()))
			continue
		}
		fields = append(fields, schema.Optional(key, schema.Color()))
	}
	return schema.Object(fields...)
}

// Schema returns the structure a resolved theme must satisfy. The
// "components" section declares every registered component; each is
// optional so that a component registered without defaults only needs
// configuration when a caller supplies it.
func Schema() schema.Spec {
	var fields []schema.Field
	for _, name := range componentOrder {
		fields = append(fields, schema.Optional(name, components[name].Schema))
	}
	return schema.Object(
		schema.Required("palette", schema.NonEmptyMapOf(swatchSpec())),
		schema.Required("miscellaneous", schema.Object(
			schema.Required("backgroundColor", schema.Color()),
			schema.Required("color", schema.Color()),
			schema.Required("fontFamily", schema.ListOf(schema.NonEmptyString(), 1)),
			schema.Required("spacing", schema.Number().Min(0)),
		)),
		schema.Required("screenSizes", schema.MapOf(schema.Number().Min(0))),
		schema.Required("components", schema.Object(fields...)),
	)
}
