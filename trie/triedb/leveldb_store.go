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
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/fantom-foundation/go-mpt-core/trie/triehash"
)

// LevelDBStore is a Store backed by a LevelDB database, one row per node
// hash. Node blobs are immutable once written, so no write buffering or
// batching is attempted beyond what LevelDB itself provides.
type LevelDBStore struct {
	db *leveldb.DB
}

// OpenLevelDBStore opens (creating if necessary) a LevelDB database at dir
// and wraps it as a Store.
func OpenLevelDBStore(dir string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open LevelDB store at %s: %w", dir, err)
	}
	return &LevelDBStore{db: db}, nil
}

// NewLevelDBStore wraps an already-open LevelDB handle as a Store. The
// caller retains ownership of db and must close it.
func NewLevelDBStore(db *leveldb.DB) *LevelDBStore {
	return &LevelDBStore{db: db}
}

func (s *LevelDBStore) Get(hash triehash.Hash) ([]byte, bool, error) {
	data, err := s.db.Get(hash[:], nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read node %v from LevelDB: %w", hash, err)
	}
	return data, true, nil
}

func (s *LevelDBStore) Put(hash triehash.Hash, data []byte) error {
	if err := s.db.Put(hash[:], data, nil); err != nil {
		return fmt.Errorf("failed to write node %v to LevelDB: %w", hash, err)
	}
	return nil
}

func (s *LevelDBStore) Has(hash triehash.Hash) (bool, error) {
	found, err := s.db.Has(hash[:], nil)
	if err != nil {
		return false, fmt.Errorf("failed to probe node %v in LevelDB: %w", hash, err)
	}
	return found, nil
}

// Close releases the underlying LevelDB handle opened by OpenLevelDBStore.
func (s *LevelDBStore) Close() error {
	return s.db.Close()
}
