package theme

import (
	"themekit/schema"
)

// Validator checks a merged candidate theme. On success it returns the
// candidate unchanged; on failure it returns a nil tree and an error and
// never repairs the candidate.
type Validator interface {
	Validate(candidate Tree) (Tree, error)
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(candidate Tree) (Tree, error)

func (f ValidatorFunc) Validate(candidate Tree) (Tree, error) { return f(candidate) }

// SchemaValidator validates against Schema, exposing the candidate's own
// palette as context so component color roles must exist in it.
type SchemaValidator struct {
	// Strict rejects fields the schema does not declare.
	Strict bool
}

func (v SchemaValidator) Validate(candidate Tree) (Tree, error) {
	palette, _ := candidate["palette"].(Tree)
	err := schema.Validate(candidate, Schema(), schema.Options{
		Context: schema.Context{PaletteContextKey: palette},
		Strict:  v.Strict,
	})
	if err != nil {
		return nil, &ValidationError{Cause: err}
	}
	return candidate, nil
}

// ValidationError reports why a candidate theme was rejected.
type ValidationError struct {
	Cause error
}

func (e *ValidationError) Error() string {
	return "invalid theme: " + e.Cause.Error()
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// Issues lists the individual problems behind err, one line per field, or
// a single line holding err's message when it carries no field detail.
func Issues(err error) []string {
	if err == nil {
		return nil
	}
	fes := schema.FieldErrors(err)
	if len(fes) == 0 {
		return []string{err.Error()}
	}
	out := make([]string, len(fes))
	for i, fe := range fes {
		out[i] = fe.Error()
	}
	return out
}
