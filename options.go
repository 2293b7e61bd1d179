package scan

// settings collects the optional matching knobs. The zero value compares
// with == and projects nothing.
type settings[E any] struct {
	cmp         func(a, b E) bool
	proj        func(E) E
	patternProj func(E) E
}

// Option adjusts how a single call decides that elements match. Options
// apply to the per-call settings by value; taking the settings' address
// would force them onto the heap, and the primitives allocate nothing.
type Option[E any] func(settings[E]) settings[E]

// WithComparison replaces the default == comparison. The comparison is
// called as cmp(projected source element, value); for Prefix and NotPrefix
// the second argument is the projected pattern element. If and IfNot ignore
// this option.
func WithComparison[E any](cmp func(a, b E) bool) Option[E] {
	return func(s settings[E]) settings[E] {
		s.cmp = cmp
		return s
	}
}

// WithProjection transforms each source element before the comparison or
// predicate sees it. The value argument of Value and NotValue is never
// projected.
func WithProjection[E any](proj func(E) E) Option[E] {
	return func(s settings[E]) settings[E] {
		s.proj = proj
		return s
	}
}

// WithPatternProjection transforms each pattern element before comparison.
// Only Prefix and NotPrefix read it; the source side keeps its own
// projection, so the two sides can be normalized independently.
func WithPatternProjection[E any](proj func(E) E) Option[E] {
	return func(s settings[E]) settings[E] {
		s.patternProj = proj
		return s
	}
}

func newSettings[E any](opts []Option[E]) settings[E] {
	var s settings[E]
	for _, opt := range opts {
		s = opt(s)
	}
	return s
}

func (s *settings[E]) project(e E) E {
	if s.proj == nil {
		return e
	}
	return s.proj(e)
}

func (s *settings[E]) projectPattern(e E) E {
	if s.patternProj == nil {
		return e
	}
	return s.patternProj(e)
}

// comparison returns the configured comparison, or == when none was set.
// A method could not require E to be comparable, hence the free function.
func comparison[E comparable](s *settings[E]) func(a, b E) bool {
	if s.cmp != nil {
		return s.cmp
	}
	return func(a, b E) bool { return a == b }
}
