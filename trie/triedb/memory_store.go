// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package triedb

import (
	"sync"

	"github.com/fantom-foundation/go-mpt-core/trie/triehash"
)

// MemoryStore is a Store backed by an in-memory map, intended for tests and
// for embedding a trie into a process without a persistent backing store.
// It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[triehash.Hash][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[triehash.Hash][]byte{}}
}

func (s *MemoryStore) Get(hash triehash.Hash) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, found := s.data[hash]
	if !found {
		return nil, false, nil
	}
	// return a copy so callers cannot mutate stored content
	res := make([]byte, len(data))
	copy(res, data)
	return res, true, nil
}

func (s *MemoryStore) Put(hash triehash.Hash, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.data[hash] = cp
	return nil
}

func (s *MemoryStore) Has(hash triehash.Hash) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, found := s.data[hash]
	return found, nil
}

// Len returns the number of entries currently held in the store. Intended
// for tests and diagnostics.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
