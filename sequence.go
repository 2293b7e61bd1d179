package scan

// Prefix matches pattern against the elements of src starting at pos. When
// every pattern element matches the corresponding source element in order,
// it returns pos advanced by the pattern's length; on any mismatch, or when
// src ends before the pattern does, it returns pos unchanged. An empty
// pattern trivially matches and consumes nothing.
//
// Source and pattern elements are projected independently before each
// comparison; see WithProjection and WithPatternProjection.
func Prefix[E comparable](src []E, pos int, pattern []E, opts ...Option[E]) int {
	s := newSettings(opts)
	end, ok := matchPrefix(src, pos, pattern, &s)
	if !ok {
		return pos
	}
	return end
}

// NotPrefix returns pos+1 when pattern does NOT fully match at pos, and pos
// unchanged when it does. The advance is always exactly one element, no
// matter how far into the pattern the mismatch occurred. At the end of src
// it returns pos unchanged even though no pattern could match there, and an
// empty pattern always matches, so NotPrefix never advances past it.
func NotPrefix[E comparable](src []E, pos int, pattern []E, opts ...Option[E]) int {
	if pos >= len(src) {
		return pos
	}
	s := newSettings(opts)
	if _, ok := matchPrefix(src, pos, pattern, &s); ok {
		return pos
	}
	return pos + 1
}

// matchPrefix walks src and pattern in lockstep from pos, stopping at the
// first failed comparison or when either side runs out. ok reports whether
// the pattern was exhausted; end is the source position one past the
// matched prefix.
func matchPrefix[E comparable](src []E, pos int, pattern []E, s *settings[E]) (end int, ok bool) {
	cmp := comparison(s)
	i, j := pos, 0
	for j < len(pattern) && i < len(src) && cmp(s.project(src[i]), s.projectPattern(pattern[j])) {
		i++
		j++
	}
	return i, j == len(pattern)
}
