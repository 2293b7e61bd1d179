// Package strscan mirrors the scan package over string sources: the same
// eight primitives, the same no-match convention (an unchanged position),
// with byte elements and string patterns. It exists so string input can be
// scanned directly, without converting to a byte slice, the way the
// standard library pairs strings with bytes.
//
// Positions index bytes, not runes. Multi-byte characters are matched the
// way Prefix matches anything else: byte by byte.
package strscan
