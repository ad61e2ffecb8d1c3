package theme

// FallbackMessage is reported when an override is rejected.
const FallbackMessage = "Invalid theme! Using default theme instead."

// Resolver runs the merge, validate, transform pipeline against a fixed set
// of collaborators. It holds no mutable state and is safe for concurrent
// use.
type Resolver struct {
	registry    *Registry
	validator   Validator
	transformer Transformer
	reporter    Reporter
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRegistry substitutes the baseline theme.
func WithRegistry(r *Registry) Option {
	return func(res *Resolver) { res.registry = r }
}

// WithValidator substitutes the validation gate.
func WithValidator(v Validator) Option {
	return func(res *Resolver) { res.validator = v }
}

// WithTransformer substitutes the post-validation transform.
func WithTransformer(t Transformer) Option {
	return func(res *Resolver) { res.transformer = t }
}

// WithReporter substitutes the sink that receives fallback reports.
func WithReporter(r Reporter) Option {
	return func(res *Resolver) { res.reporter = r }
}

// NewResolver returns a resolver using DefaultRegistry, a strict
// SchemaValidator, CSSTransformer and a SlogReporter on slog.Default, each
// replaceable through opts.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		registry:    DefaultRegistry,
		validator:   SchemaValidator{Strict: true},
		transformer: CSSTransformer{},
		reporter:    SlogReporter{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve merges partial over a fresh copy of the default theme, validates
// the result and returns it transformed. If validation fails the cause is
// reported, partial is discarded entirely and the transformed default theme
// is returned instead.
func (r *Resolver) Resolve(partial Tree) Tree {
	merged := Merge(r.registry.Default(), partial)
	valid, err := r.validator.Validate(merged)
	if err != nil {
		r.reporter.Report(FallbackMessage, err)
		return r.Default()
	}
	return r.transformer.Transform(valid)
}

// Check merges and validates partial without falling back, returning the
// validation error, if any. Nothing is reported.
func (r *Resolver) Check(partial Tree) error {
	_, err := r.validator.Validate(Merge(r.registry.Default(), partial))
	return err
}

// Default returns the transformed default theme.
func (r *Resolver) Default() Tree {
	return r.transformer.Transform(r.registry.Default())
}

var defaultResolver = NewResolver()

// Resolve resolves partial with the default resolver.
func Resolve(partial Tree) Tree {
	return defaultResolver.Resolve(partial)
}
