// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package triedb defines the content-addressed key/value store contract the
// trie engine writes node blobs into, plus the adapters shipped with this
// module: an in-memory map, a LevelDB-backed store, and a decorator adding a
// bounded cache of raw node blobs around either.
package triedb

import "github.com/fantom-foundation/go-mpt-core/trie/triehash"

//go:generate mockgen -source store.go -destination ../triemock/store_mocks.go -package triemock

// Store is the storage adapter contract required by the trie engine. Keys
// are always the 32-byte Keccak-256 digest of the value stored under them.
// Implementations must support concurrent callers of Get; Put calls are
// serialized by the engine's single-writer discipline (see package trie).
//
// Puts are idempotent: the same key is always associated with the same
// bytes, by construction of the engine that calls Put. The store never
// deletes entries; pruning of unreachable nodes is the responsibility of an
// external collaborator, not this package.
type Store interface {
	// Get retrieves the bytes stored under hash. found is false if no
	// entry exists.
	Get(hash triehash.Hash) (data []byte, found bool, err error)

	// Put stores data under hash. Calling Put twice with the same hash
	// and the same data must succeed both times.
	Put(hash triehash.Hash, data []byte) error

	// Has reports whether an entry exists under hash, without fetching
	// its bytes.
	Has(hash triehash.Hash) (bool, error)
}
