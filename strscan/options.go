package strscan

// settings collects the optional matching knobs. The zero value compares
// with == and projects nothing.
type settings struct {
	cmp         func(a, b byte) bool
	proj        func(byte) byte
	patternProj func(byte) byte
}

// Option adjusts how a single call decides that bytes match. Options apply
// to the per-call settings by value; taking the settings' address would
// force them onto the heap, and the primitives allocate nothing.
type Option func(settings) settings

// WithComparison replaces the default == comparison. The comparison is
// called as cmp(projected source byte, value); for Prefix and NotPrefix the
// second argument is the projected pattern byte. If and IfNot ignore this
// option.
func WithComparison(cmp func(a, b byte) bool) Option {
	return func(s settings) settings {
		s.cmp = cmp
		return s
	}
}

// WithProjection transforms each source byte before the comparison or
// predicate sees it. The value argument of Value and NotValue is never
// projected.
func WithProjection(proj func(byte) byte) Option {
	return func(s settings) settings {
		s.proj = proj
		return s
	}
}

// WithPatternProjection transforms each pattern byte before comparison.
// Only Prefix and NotPrefix read it.
func WithPatternProjection(proj func(byte) byte) Option {
	return func(s settings) settings {
		s.patternProj = proj
		return s
	}
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		s = opt(s)
	}
	return s
}

func (s *settings) equal(a, b byte) bool {
	if s.cmp != nil {
		return s.cmp(a, b)
	}
	return a == b
}

func (s *settings) project(c byte) byte {
	if s.proj == nil {
		return c
	}
	return s.proj(c)
}

func (s *settings) projectPattern(c byte) byte {
	if s.patternProj == nil {
		return c
	}
	return s.patternProj(c)
}
