package scan

// Value matches the single element at pos against want. It returns pos+1
// when the element matches and pos unchanged when it does not or when pos
// is at or past the end of src.
func Value[E comparable](src []E, pos int, want E, opts ...Option[E]) int {
	s := newSettings(opts)
	if pos >= len(src) || !comparison(&s)(s.project(src[pos]), want) {
		return pos
	}
	return pos + 1
}

// NotValue is the exact complement of Value: it returns pos+1 when the
// element at pos does NOT match want, and pos unchanged when it matches or
// when pos is at or past the end of src.
func NotValue[E comparable](src []E, pos int, want E, opts ...Option[E]) int {
	s := newSettings(opts)
	if pos >= len(src) || comparison(&s)(s.project(src[pos]), want) {
		return pos
	}
	return pos + 1
}
