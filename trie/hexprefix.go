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

import "fmt"

// EncodeHexPrefix implements the hex-prefix (HP) encoding used to pack a
// nibble path into a byte string while tagging it with a leaf/extension
// flag and its parity. See Appendix C of the Ethereum yellow paper.
//
// The high nibble of the first output byte carries the flag:
//
//	0b00 even-length extension path
//	0b01 odd-length extension path (the path's first nibble follows in the low bits)
//	0b10 even-length leaf path
//	0b11 odd-length leaf path (the path's first nibble follows in the low bits)
func EncodeHexPrefix(path []Nibble, isLeaf bool) []byte {
	odd := len(path) % 2
	flag := byte(0)
	if isLeaf {
		flag |= 0b10
	}
	flag |= byte(odd)

	out := make([]byte, len(path)/2+1)
	out[0] = flag << 4
	rest := path
	if odd == 1 {
		out[0] |= byte(path[0])
		rest = path[1:]
	}
	for i := 0; i < len(rest); i += 2 {
		out[1+i/2] = byte(rest[i]<<4) | byte(rest[i+1])
	}
	return out
}

// DecodeHexPrefix inverts EncodeHexPrefix, recovering the nibble path and
// the leaf/extension flag it was tagged with.
func DecodeHexPrefix(data []byte) (path []Nibble, isLeaf bool, err error) {
	if len(data) == 0 {
		return nil, false, fmt.Errorf("%w: hex-prefix input is empty", ErrMalformedEncoding)
	}

	flag := data[0] >> 4
	if flag > 3 {
		return nil, false, fmt.Errorf("%w: invalid hex-prefix flag nibble %x", ErrMalformedEncoding, flag)
	}
	isLeaf = flag >= 2
	odd := flag&0b01 != 0

	path = make([]Nibble, 0, len(data)*2)
	if odd {
		path = append(path, Nibble(data[0]&0xF))
	} else if data[0]&0xF != 0 {
		return nil, false, fmt.Errorf("%w: non-zero padding nibble in even-length hex-prefix", ErrMalformedEncoding)
	}
	for _, b := range data[1:] {
		path = append(path, Nibble(b>>4), Nibble(b&0xF))
	}
	return path, isLeaf, nil
}
