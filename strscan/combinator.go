package strscan

// Scanner is any scanning step over a string: inspect src at pos, return
// the position past a match, or pos unchanged on no match. A Scanner must
// never retreat and must never return a position past len(src).
type Scanner func(src string, pos int) int

// Excluding advances past exactly one byte when scanner does NOT match at
// pos, and returns pos unchanged when it does (or when pos is at or past
// the end of src).
func Excluding(src string, pos int, scanner Scanner) int {
	if pos >= len(src) || scanner(src, pos) != pos {
		return pos
	}
	return pos + 1
}

// WhileExcluding advances one byte at a time while scanner keeps failing to
// match, stopping at the first position where it matches or at the end of
// src. It is the "consume everything up to the delimiter" operation.
func WhileExcluding(src string, pos int, scanner Scanner) int {
	for pos < len(src) && scanner(src, pos) == pos {
		pos++
	}
	return pos
}
