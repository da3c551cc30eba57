// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package triehash provides the Keccak-256 hashing primitive used to
// compute node and root hashes throughout the trie package.
package triehash

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"
)

// Size is the length in bytes of a Hash.
const Size = 32

// Hash is a 32-byte Keccak-256 digest.
type Hash [Size]byte

// IsZero reports whether h is the all-zero hash.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

var hasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

// Keccak256 computes the Keccak-256 digest of data. This is the
// pre-standardization Keccak used by Ethereum (padding byte 0x01), not
// NIST SHA3-256.
func Keccak256(data []byte) Hash {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()
	h.Write(data)
	var out Hash
	h.Sum(out[:0])
	hasherPool.Put(h)
	return out
}
