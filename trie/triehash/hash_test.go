// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package triehash

import "testing"

func TestKeccak256_EmptyInput(t *testing.T) {
	got := Keccak256(nil).String()
	want := "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"
	if got != want {
		t.Errorf("unexpected empty-input Keccak256, got %s, want %s", got, want)
	}
}

func TestKeccak256_Deterministic(t *testing.T) {
	a := Keccak256([]byte("do"))
	b := Keccak256([]byte("do"))
	if a != b {
		t.Errorf("Keccak256 is not deterministic: %v != %v", a, b)
	}
	if c := Keccak256([]byte("dog")); c == a {
		t.Errorf("distinct inputs produced the same hash")
	}
}

func TestHash_IsZero(t *testing.T) {
	var h Hash
	if !h.IsZero() {
		t.Errorf("zero-valued Hash reports non-zero")
	}
	h[0] = 1
	if h.IsZero() {
		t.Errorf("non-zero Hash reports zero")
	}
}
