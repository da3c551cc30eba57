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
	"bytes"
	"testing"

	"github.com/fantom-foundation/go-mpt-core/trie/triehash"
)

// countingStore counts Get and Has calls forwarded from the cache, so tests
// can assert that the cache actually avoids round-trips to the wrapped store.
type countingStore struct {
	Store
	gets int
	hass int
}

func (s *countingStore) Get(hash triehash.Hash) ([]byte, bool, error) {
	s.gets++
	return s.Store.Get(hash)
}

func (s *countingStore) Has(hash triehash.Hash) (bool, error) {
	s.hass++
	return s.Store.Has(hash)
}

func TestCachedStore_HitAvoidsInnerLookup(t *testing.T) {
	inner := &countingStore{Store: NewMemoryStore()}
	cached, err := NewCachedStore(inner, 16)
	if err != nil {
		t.Fatalf("NewCachedStore failed: %v", err)
	}

	hash := triehash.Keccak256([]byte("node"))
	if err := cached.Put(hash, []byte("payload")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		data, found, err := cached.Get(hash)
		if err != nil || !found || !bytes.Equal(data, []byte("payload")) {
			t.Fatalf("Get() = (%q, %v, %v), want (payload, true, nil)", data, found, err)
		}
	}
	if inner.gets != 0 {
		t.Fatalf("inner store saw %d Get calls, want 0 since Put should have populated the cache", inner.gets)
	}
}

func TestCachedStore_MissFallsThroughAndPopulates(t *testing.T) {
	inner := NewMemoryStore()
	hash := triehash.Keccak256([]byte("node"))
	if err := inner.Put(hash, []byte("payload")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	counted := &countingStore{Store: inner}
	cached, err := NewCachedStore(counted, 16)
	if err != nil {
		t.Fatalf("NewCachedStore failed: %v", err)
	}

	if _, found, err := cached.Get(hash); err != nil || !found {
		t.Fatalf("first Get() = (_, %v, %v), want (true, nil)", found, err)
	}
	if _, found, err := cached.Get(hash); err != nil || !found {
		t.Fatalf("second Get() = (_, %v, %v), want (true, nil)", found, err)
	}
	if counted.gets != 1 {
		t.Fatalf("inner store saw %d Get calls, want exactly 1", counted.gets)
	}
}

func TestCachedStore_HasChecksCacheFirst(t *testing.T) {
	inner := &countingStore{Store: NewMemoryStore()}
	cached, err := NewCachedStore(inner, 16)
	if err != nil {
		t.Fatalf("NewCachedStore failed: %v", err)
	}
	hash := triehash.Keccak256([]byte("node"))
	if err := cached.Put(hash, []byte("payload")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if found, err := cached.Has(hash); err != nil || !found {
		t.Fatalf("Has() = (%v, %v), want (true, nil)", found, err)
	}
	if inner.hass != 0 {
		t.Fatalf("inner store saw %d Has calls, want 0 since the entry is cached", inner.hass)
	}
}
