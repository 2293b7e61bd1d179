package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefix(t *testing.T) {
	src := []byte("Hello, world!")

	tests := []struct {
		name    string
		pos     int
		pattern string
		opts    []Option[byte]
		next    int
	}{
		{name: "full pattern match advances by the pattern length", pos: 0, pattern: "Hello", next: 5},
		{name: "mismatched pattern stays put", pos: 0, pattern: "Bye", next: 0},
		{name: "match in the middle of the input", pos: 7, pattern: "world!", next: 13},
		{name: "source ending before the pattern stays put", pos: 7, pattern: "world!?", next: 7},
		{name: "empty pattern trivially matches and consumes nothing", pos: 3, pattern: "", next: 3},
		{name: "position at the end stays put", pos: len(src), pattern: "H", next: len(src)},
		{
			name: "constant-true comparison advances by the pattern length even on unequal elements",
			pos:  0, pattern: "Bye",
			opts: []Option[byte]{WithComparison(alwaysEqual)},
			next: 3,
		},
		{
			name: "constant-false comparison stays put even on equal elements",
			pos:  0, pattern: "Hello",
			opts: []Option[byte]{WithComparison(neverEqual)},
			next: 0,
		},
		{
			name: "matching projections applied to both sides",
			pos:  0, pattern: "hello",
			opts: []Option[byte]{WithProjection(upperByte), WithPatternProjection(upperByte)},
			next: 5,
		},
		{
			name: "sides projected apart stay put",
			pos:  0, pattern: "HELLO",
			opts: []Option[byte]{WithProjection(upperByte), WithPatternProjection(lowerByte)},
			next: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Prefix(src, tt.pos, []byte(tt.pattern), tt.opts...)
			assert.Equal(t, tt.next, got)
		})
	}

	t.Run("empty input stays put", func(t *testing.T) {
		assert.Equal(t, 0, Prefix(nil, 0, []byte("Hello")))
		assert.Equal(t, 0, Prefix[byte](nil, 0, nil), "an empty pattern on empty input should still consume nothing")
	})
}

func TestNotPrefix(t *testing.T) {
	src := []byte("Hello, world!")

	tests := []struct {
		name    string
		pos     int
		pattern string
		opts    []Option[byte]
		next    int
	}{
		{name: "full pattern match stays put", pos: 0, pattern: "Hello", next: 0},
		{name: "mismatched pattern advances by one", pos: 0, pattern: "Bye", next: 1},
		{name: "partial pattern match still advances by exactly one", pos: 0, pattern: "Help", next: 1},
		{name: "empty pattern trivially matches and stays put", pos: 3, pattern: "", next: 3},
		{name: "position at the end stays put", pos: len(src), pattern: "Bye", next: len(src)},
		{
			name: "constant-true comparison stays put even on unequal elements",
			pos:  0, pattern: "Bye",
			opts: []Option[byte]{WithComparison(alwaysEqual)},
			next: 0,
		},
		{
			name: "constant-false comparison advances even on equal elements",
			pos:  0, pattern: "Hello",
			opts: []Option[byte]{WithComparison(neverEqual)},
			next: 1,
		},
		{
			name: "matching projections applied to both sides stay put",
			pos:  0, pattern: "hello",
			opts: []Option[byte]{WithProjection(upperByte), WithPatternProjection(upperByte)},
			next: 0,
		},
		{
			name: "sides projected apart advance",
			pos:  0, pattern: "HELLO",
			opts: []Option[byte]{WithProjection(upperByte), WithPatternProjection(lowerByte)},
			next: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NotPrefix(src, tt.pos, []byte(tt.pattern), tt.opts...)
			assert.Equal(t, tt.next, got)
		})
	}

	t.Run("empty input stays put even though no pattern could match", func(t *testing.T) {
		assert.Equal(t, 0, NotPrefix(nil, 0, []byte("Bye")))
	})
}

// NotPrefix advances exactly where Prefix does not, and never by more than
// one element. An empty pattern is excluded: it matches everywhere while
// consuming nothing, so both sides stay put.
func TestPrefixNotPrefixComplement(t *testing.T) {
	src := []byte("Hello, world!")
	patterns := [][]byte{[]byte("Hello"), []byte("world"), []byte("l"), []byte("Bye")}

	for pos := 0; pos < len(src); pos++ {
		for _, pattern := range patterns {
			p := Prefix(src, pos, pattern)
			n := NotPrefix(src, pos, pattern)
			assert.NotEqual(t, p == pos, n == pos,
				"exactly one of Prefix() and NotPrefix() should advance at pos %d for %q", pos, pattern)
			assert.LessOrEqual(t, n, pos+1, "NotPrefix() should advance by at most one")
		}
	}
}

func TestPrefixGenericElements(t *testing.T) {
	tokens := []int{1, 2, 3, 4}

	assert.Equal(t, 2, Prefix(tokens, 0, []int{1, 2}), "Prefix() should work over int slices")
	assert.Equal(t, 0, Prefix(tokens, 0, []int{1, 3}))
	assert.Equal(t, 1, NotPrefix(tokens, 0, []int{2}), "NotPrefix() should work over int slices")
}
