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
	lru "github.com/hashicorp/golang-lru"

	"github.com/fantom-foundation/go-mpt-core/trie/triehash"
)

// CachedStore wraps another Store with a bounded in-memory LRU cache of raw
// node blobs keyed by hash. It never changes which bytes are visible for a
// given hash, only how often the wrapped Store is actually consulted; the
// root hashes produced by a trie built on top of it are identical to one
// built directly on the wrapped Store.
type CachedStore struct {
	inner Store
	cache *lru.Cache
}

// NewCachedStore wraps inner with an LRU cache holding up to capacity node
// blobs.
func NewCachedStore(inner Store, capacity int) (*CachedStore, error) {
	cache, err := lru.New(capacity)
	if err != nil {
		return nil, err
	}
	return &CachedStore{inner: inner, cache: cache}, nil
}

func (s *CachedStore) Get(hash triehash.Hash) ([]byte, bool, error) {
	if v, ok := s.cache.Get(hash); ok {
		return v.([]byte), true, nil
	}
	data, found, err := s.inner.Get(hash)
	if err != nil || !found {
		return data, found, err
	}
	s.cache.Add(hash, data)
	return data, true, nil
}

func (s *CachedStore) Put(hash triehash.Hash, data []byte) error {
	if err := s.inner.Put(hash, data); err != nil {
		return err
	}
	s.cache.Add(hash, data)
	return nil
}

func (s *CachedStore) Has(hash triehash.Hash) (bool, error) {
	if s.cache.Contains(hash) {
		return true, nil
	}
	return s.inner.Has(hash)
}
