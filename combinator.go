package scan

// Scanner is the shape every scanning primitive reduces to once its extra
// arguments are bound: inspect src at pos, return the position past a match,
// or pos unchanged on no match. A Scanner must never retreat and must never
// return a position past len(src); every function in this package follows
// that contract, and closures over them do too.
type Scanner[E any] func(src []E, pos int) int

// Excluding advances past exactly one element when scanner does NOT match
// at pos, and returns pos unchanged when it does (or when pos is at or past
// the end of src). It inverts "does scanner match here" into "consume one
// element of filler", which pairs with a delimiter scanner to eat anything
// up to, but not including, the delimiter.
func Excluding[E any](src []E, pos int, scanner Scanner[E]) int {
	if pos >= len(src) || scanner(src, pos) != pos {
		return pos
	}
	return pos + 1
}

// WhileExcluding repeats the Excluding step greedily: it advances one
// element at a time while scanner keeps failing to match, and stops at the
// first position where scanner matches or at the end of src. The result is
// always within [pos, len(src)], and the loop terminates because every
// iteration moves forward by one.
func WhileExcluding[E any](src []E, pos int, scanner Scanner[E]) int {
	for pos < len(src) && scanner(src, pos) == pos {
		pos++
	}
	return pos
}
