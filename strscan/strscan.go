package strscan

// Value matches the byte at pos against want. It returns pos+1 when the
// byte matches and pos unchanged when it does not or when pos is at or past
// the end of src.
func Value(src string, pos int, want byte, opts ...Option) int {
	s := newSettings(opts)
	if pos >= len(src) || !s.equal(s.project(src[pos]), want) {
		return pos
	}
	return pos + 1
}

// NotValue is the exact complement of Value: it returns pos+1 when the byte
// at pos does NOT match want, and pos unchanged when it matches or when pos
// is at or past the end of src.
func NotValue(src string, pos int, want byte, opts ...Option) int {
	s := newSettings(opts)
	if pos >= len(src) || s.equal(s.project(src[pos]), want) {
		return pos
	}
	return pos + 1
}

// If matches the byte at pos against a predicate, advancing by one when
// pred is true of the (projected) byte.
func If(src string, pos int, pred func(byte) bool, opts ...Option) int {
	s := newSettings(opts)
	if pos >= len(src) || !pred(s.project(src[pos])) {
		return pos
	}
	return pos + 1
}

// IfNot is the exact complement of If: it advances by one when pred is
// false of the (projected) byte.
func IfNot(src string, pos int, pred func(byte) bool, opts ...Option) int {
	s := newSettings(opts)
	if pos >= len(src) || pred(s.project(src[pos])) {
		return pos
	}
	return pos + 1
}

// Prefix matches pattern against src starting at pos, returning pos
// advanced by len(pattern) on a full match and pos unchanged otherwise.
// An empty pattern trivially matches and consumes nothing.
func Prefix(src string, pos int, pattern string, opts ...Option) int {
	s := newSettings(opts)
	end, ok := matchPrefix(src, pos, pattern, &s)
	if !ok {
		return pos
	}
	return end
}

// NotPrefix returns pos+1 when pattern does NOT fully match at pos, and pos
// unchanged when it does. The advance is always exactly one byte. At the
// end of src it returns pos unchanged, and an empty pattern always matches.
func NotPrefix(src string, pos int, pattern string, opts ...Option) int {
	if pos >= len(src) {
		return pos
	}
	s := newSettings(opts)
	if _, ok := matchPrefix(src, pos, pattern, &s); ok {
		return pos
	}
	return pos + 1
}

func matchPrefix(src string, pos int, pattern string, s *settings) (end int, ok bool) {
	i, j := pos, 0
	for j < len(pattern) && i < len(src) && s.equal(s.project(src[i]), s.projectPattern(pattern[j])) {
		i++
		j++
	}
	return i, j == len(pattern)
}
