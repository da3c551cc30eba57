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

import (
	"errors"
	"testing"

	gomock "github.com/golang/mock/gomock"

	"github.com/fantom-foundation/go-mpt-core/trie/triehash"
	"github.com/fantom-foundation/go-mpt-core/trie/triemock"
)

func TestGet_PropagatesStoreReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := triemock.NewMockStore(ctrl)
	root := triehash.Keccak256([]byte("root"))
	wantErr := errors.New("disk on fire")
	store.EXPECT().Get(root).Return(nil, false, wantErr)

	_, _, err := Get(store, root, []byte("key"))
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want an error wrapping %v", err, wantErr)
	}
}

func TestGet_MissingRootIsStoreMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := triemock.NewMockStore(ctrl)
	root := triehash.Keccak256([]byte("root"))
	store.EXPECT().Get(root).Return(nil, false, nil)

	_, _, err := Get(store, root, []byte("key"))
	if !errors.Is(err, ErrStoreMissing) {
		t.Fatalf("got %v, want ErrStoreMissing", err)
	}
}

func TestPut_PropagatesStoreWriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := triemock.NewMockStore(ctrl)
	wantErr := errors.New("disk full")
	// a single-leaf trie writes exactly one node: the root, which is always
	// hashed and stored regardless of its size.
	store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(wantErr)

	longValue := make([]byte, 64)
	_, err := Put(store, EmptyRootHash, []byte("key"), longValue)
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want an error wrapping %v", err, wantErr)
	}
}
