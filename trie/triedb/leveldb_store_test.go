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
	"os"
	"testing"

	"github.com/fantom-foundation/go-mpt-core/trie/triehash"
)

func TestLevelDBStore_MissingKey(t *testing.T) {
	dir, err := os.MkdirTemp("", "mpt-leveldb-store-test")
	if err != nil {
		t.Fatalf("unable to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	s, err := OpenLevelDBStore(dir)
	if err != nil {
		t.Fatalf("OpenLevelDBStore failed: %v", err)
	}
	defer s.Close()

	hash := triehash.Keccak256([]byte("nope"))
	if _, found, err := s.Get(hash); err != nil || found {
		t.Fatalf("got found=%v, err=%v, want found=false, err=nil", found, err)
	}
}

func TestLevelDBStore_PutGetHas(t *testing.T) {
	dir, err := os.MkdirTemp("", "mpt-leveldb-store-test")
	if err != nil {
		t.Fatalf("unable to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	s, err := OpenLevelDBStore(dir)
	if err != nil {
		t.Fatalf("OpenLevelDBStore failed: %v", err)
	}
	defer s.Close()

	hash := triehash.Keccak256([]byte("node"))
	if err := s.Put(hash, []byte("payload")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	data, found, err := s.Get(hash)
	if err != nil || !found || !bytes.Equal(data, []byte("payload")) {
		t.Fatalf("got (%q, %v, %v), want (payload, true, nil)", data, found, err)
	}
	if found, err := s.Has(hash); err != nil || !found {
		t.Fatalf("Has got (%v, %v), want (true, nil)", found, err)
	}
}

func TestLevelDBStore_DataPersistsAcrossReopen(t *testing.T) {
	dir, err := os.MkdirTemp("", "mpt-leveldb-store-test")
	if err != nil {
		t.Fatalf("unable to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	hash := triehash.Keccak256([]byte("node"))

	s, err := OpenLevelDBStore(dir)
	if err != nil {
		t.Fatalf("OpenLevelDBStore failed: %v", err)
	}
	if err := s.Put(hash, []byte("payload")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2, err := OpenLevelDBStore(dir)
	if err != nil {
		t.Fatalf("re-opening OpenLevelDBStore failed: %v", err)
	}
	defer s2.Close()

	data, found, err := s2.Get(hash)
	if err != nil || !found || !bytes.Equal(data, []byte("payload")) {
		t.Fatalf("got (%q, %v, %v), want (payload, true, nil)", data, found, err)
	}
}
