package scan

// If matches the single element at pos against a predicate. It returns
// pos+1 when pred is true of the (projected) element and pos unchanged when
// it is false or when pos is at or past the end of src. Only WithProjection
// applies here; comparison options are ignored.
func If[E any](src []E, pos int, pred func(E) bool, opts ...Option[E]) int {
	s := newSettings(opts)
	if pos >= len(src) || !pred(s.project(src[pos])) {
		return pos
	}
	return pos + 1
}

// IfNot is the exact complement of If: it returns pos+1 when pred is false
// of the (projected) element, and pos unchanged when it is true or when pos
// is at or past the end of src.
func IfNot[E any](src []E, pos int, pred func(E) bool, opts ...Option[E]) int {
	s := newSettings(opts)
	if pos >= len(src) || pred(s.project(src[pos])) {
		return pos
	}
	return pos + 1
}
