// Package theme resolves partial theme overrides into complete, validated
// themes.
//
// A caller hands Resolve an arbitrarily shaped partial tree. It is merged
// over a fresh copy of the default theme, validated against Schema with the
// merged palette as context, and transformed for consumption. When the merged
// tree is invalid the override is discarded wholesale and the default theme
// is returned instead; Resolve never fails for caller-supplied data.
//
//	resolved := theme.Resolve(theme.Tree{
//		"miscellaneous": theme.Tree{"fontFamily": []any{"Inter"}},
//	})
package theme

// Severity selects the palette role used to flag abnormal states.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarn
	SeverityDanger
)

// ColorFor returns the base (500) color of the palette role matching sev and
// true, or false when sev is normal or t lacks that role.
func ColorFor(t Tree, sev Severity) (string, bool) {
	var role string
	switch sev {
	case SeverityWarn:
		role = "warn"
	case SeverityDanger:
		role = "danger"
	default:
		return "", false
	}
	return LookupString(t, "palette", role, "500")
}
