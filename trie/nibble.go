// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package trie

// Nibble is a 4-bit value in the range 0-F, the unit of navigation used to
// address positions in an MPT.
type Nibble byte

// Rune converts a Nibble into its hexadecimal rune (0-9a-f).
func (n Nibble) Rune() rune {
	switch {
	case n < 10:
		return rune('0' + n)
	case n < 16:
		return rune('a' + n - 10)
	default:
		return '?'
	}
}

// String converts a Nibble into its hexadecimal string (0-9a-f).
func (n Nibble) String() string {
	return string(n.Rune())
}

// BytesToNibbles splits a byte string into its high/low nibble sequence,
// high nibble first.
func BytesToNibbles(data []byte) []Nibble {
	res := make([]Nibble, len(data)*2)
	for i, b := range data {
		res[2*i] = Nibble(b >> 4)
		res[2*i+1] = Nibble(b & 0xF)
	}
	return res
}

// NibblesToBytes re-assembles a byte string from a nibble path of even
// length. The result is undefined if len(path) is odd.
func NibblesToBytes(path []Nibble) []byte {
	res := make([]byte, len(path)/2)
	for i := range res {
		res[i] = byte(path[2*i]<<4 | path[2*i+1])
	}
	return res
}

// commonPrefixLength computes the length of the common prefix of a and b.
func commonPrefixLength(a, b []Nibble) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// isPrefixOf reports whether a is a prefix of b.
func isPrefixOf(a, b []Nibble) bool {
	return len(a) <= len(b) && commonPrefixLength(a, b) == len(a)
}

// equalNibbles reports whether a and b contain the same nibbles.
func equalNibbles(a, b []Nibble) bool {
	return len(a) == len(b) && commonPrefixLength(a, b) == len(a)
}

// concatNibbles concatenates any number of nibble paths into a fresh slice,
// never aliasing any of the inputs.
func concatNibbles(parts ...[]Nibble) []Nibble {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	res := make([]Nibble, 0, n)
	for _, p := range parts {
		res = append(res, p...)
	}
	return res
}
