// Package scan provides composable scanning primitives: small pure functions
// that inspect the element(s) at a position in a slice and either return the
// position advanced past a verified match, or return it unchanged.
//
// The primitives are building blocks for hand-written lexers and parsers
// that consume input one token-worth at a time. They carry no state, own no
// input, and allocate nothing, so a scanner built from them is just a chain
// of function calls over a position.
//
// # Positions and Boundaries
//
// Every primitive takes the sequence as a slice and the current position as
// an int offset into it. The slice itself is the boundary: a position at or
// past len(src) means the input is exhausted. Positions are plain ints, so
// saving one for lookahead is a copy and nothing invalidates it. To scan a
// window of a larger sequence, pass a sub-slice.
//
// # The No-Match Convention
//
// No primitive returns an error, and none panics on exhausted input.
// "No match" is reported by returning the input position unchanged, and
// every primitive returns the position unchanged when it is already at the
// end of the input. The combinators depend on this: Excluding and
// WhileExcluding detect a failed inner match by position equality alone, so
// introducing an error path would break composition.
//
// # Matching
//
// The primitives come in complementary pairs:
//
//   - Value / NotValue match a single element against a value.
//   - If / IfNot match a single element against a predicate.
//   - Prefix / NotPrefix match a sequence of elements ahead of the position.
//
// Value, If, and Prefix advance past what they matched (one element, or the
// pattern's length). NotValue, IfNot, and NotPrefix advance by exactly one
// element when the corresponding match fails, which is the shape a lexer
// wants for "consume filler":
//
//	pos := scan.Value(line, 0, byte('#'))     // past a leading '#', or 0
//	pos = scan.Prefix(line, pos, []byte("!/")) // past a shebang marker
//
// # Comparisons and Projections
//
// The value and prefix matchers compare with == by default. Options swap in
// a different comparison or transform elements before the comparison runs:
//
//	// Case-insensitive match of one byte.
//	pos := scan.Value(src, pos, byte('h'), scan.WithProjection(lower))
//
// Prefix and NotPrefix project each side independently; WithProjection
// applies to source elements and WithPatternProjection to pattern elements.
// The comparison is always called as cmp(projected source element, value).
//
// # Composing Scanners
//
// A Scanner is any function with the shape func(src []E, pos int) int that
// follows the no-match convention. The combinators take one and build new
// behavior from it. Excluding advances past a single element only where the
// inner scanner does not match; WhileExcluding repeats that greedily, which
// makes it "consume everything up to the next occurrence":
//
//	closer := func(src []byte, pos int) int {
//		return scan.Prefix(src, pos, []byte("*/"))
//	}
//	end := scan.WhileExcluding(src, pos, closer) // first position of "*/", or len(src)
//
// Any closure over the primitives, or over another combinator, satisfies
// Scanner, so scanners nest without the combinators knowing anything about
// the inner scanner's kind.
//
// # Strings
//
// The strscan subpackage mirrors this package over string sources with byte
// elements, the way the standard library pairs bytes with strings. Use it
// to scan a string without converting it to a byte slice.
//
// # Concurrency
//
// Every function here is pure. Calls are safe from any number of goroutines
// as long as no goroutine mutates the slice being scanned.
package scan
