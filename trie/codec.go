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
	"bytes"
	"fmt"

	"github.com/fantom-foundation/go-mpt-core/trie/rlp"
	"github.com/fantom-foundation/go-mpt-core/trie/triedb"
	"github.com/fantom-foundation/go-mpt-core/trie/triehash"
)

// emptyStringRLP is the canonical RLP encoding of the empty byte string,
// the wire form of EmptyNode.
var emptyStringRLP = rlp.Encode(rlp.String{})

// EmptyRootHash is the well-known root hash of the empty trie: the
// Keccak-256 digest of the RLP encoding of the empty byte string.
var EmptyRootHash = triehash.Keccak256(emptyStringRLP)

// rlpItemForNode constructs the RLP item describing node's own encoding, as
// defined in the node-codec rules: Empty maps to the empty byte string,
// Leaf and Extension to 2-element lists, Branch to a 17-element list.
func rlpItemForNode(node Node) (rlp.Item, error) {
	switch n := node.(type) {
	case EmptyNode:
		return rlp.String{}, nil

	case *LeafNode:
		return rlp.List{Items: []rlp.Item{
			rlp.String{Str: EncodeHexPrefix(n.Path, true)},
			rlp.String{Str: n.Value},
		}}, nil

	case *ExtensionNode:
		return rlp.List{Items: []rlp.Item{
			rlp.String{Str: EncodeHexPrefix(n.Path, false)},
			childRefToItem(n.Child),
		}}, nil

	case *BranchNode:
		items := make([]rlp.Item, 17)
		for i := 0; i < 16; i++ {
			items[i] = childRefToItem(n.Children[i])
		}
		items[16] = rlp.String{Str: n.Value}
		return rlp.List{Items: items}, nil

	default:
		return nil, fmt.Errorf("%w: unsupported node type %T", ErrInvariantViolation, node)
	}
}

// childRefToItem renders an already-resolved ChildRef as the RLP item to be
// placed at its position in the parent's own item list.
func childRefToItem(ref ChildRef) rlp.Item {
	switch {
	case ref.IsEmpty():
		return rlp.String{}
	case ref.IsHash():
		h := ref.Hash()
		return rlp.String{Str: h[:]}
	default: // inline
		return rlp.Encoded{Data: ref.Inline()}
	}
}

// encodeNodeRLP computes the canonical RLP encoding of node.
func encodeNodeRLP(node Node) ([]byte, error) {
	item, err := rlpItemForNode(node)
	if err != nil {
		return nil, err
	}
	return rlp.Encode(item), nil
}

// embed encodes node and returns the child reference other nodes should use
// to point at it: the raw RLP bytes inlined if shorter than 32 bytes,
// otherwise the Keccak-256 hash of those bytes with the bytes written into
// store under that hash.
func embed(node Node, store triedb.Store) (ChildRef, error) {
	data, err := encodeNodeRLP(node)
	if err != nil {
		return ChildRef{}, err
	}
	if len(data) < 32 {
		return InlineChildRef(data), nil
	}
	hash := triehash.Keccak256(data)
	if err := store.Put(hash, data); err != nil {
		return ChildRef{}, fmt.Errorf("failed to store node %v: %w", hash, err)
	}
	return HashChildRef(hash), nil
}

// resolveChild decodes the node addressed by a non-root ChildRef, fetching
// its bytes from store when the reference is a hash.
func resolveChild(ref ChildRef, store triedb.Store) (Node, error) {
	if ref.IsEmpty() {
		return EmptyNode{}, nil
	}
	var data []byte
	if ref.IsInline() {
		data = ref.Inline()
	} else {
		hash := ref.Hash()
		found, err := fetch(store, hash)
		if err != nil {
			return nil, err
		}
		data = found
	}
	return decodeNodeRLP(data)
}

// fetch retrieves the bytes stored under hash, translating a missing entry
// into ErrStoreMissing.
func fetch(store triedb.Store, hash triehash.Hash) ([]byte, error) {
	data, found, err := store.Get(hash)
	if err != nil {
		return nil, fmt.Errorf("failed to read node %v: %w", hash, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: node %v", ErrStoreMissing, hash)
	}
	return data, nil
}

// loadRoot decodes the trie rooted at root. A root equal to EmptyRootHash
// denotes the empty trie and never triggers a store lookup; any other
// value must resolve in store or ErrStoreMissing is returned.
func loadRoot(root triehash.Hash, store triedb.Store) (Node, error) {
	if root == EmptyRootHash {
		return EmptyNode{}, nil
	}
	data, err := fetch(store, root)
	if err != nil {
		return nil, err
	}
	return decodeNodeRLP(data)
}

// decodeNodeRLP parses the RLP encoding produced by encodeNodeRLP back into
// a Node, per the node-codec decoding rules: the empty byte string decodes
// to EmptyNode, a 2-element list to Leaf or Extension (disambiguated by the
// hex-prefix flag), and a 17-element list to Branch.
func decodeNodeRLP(data []byte) (Node, error) {
	if bytes.Equal(data, emptyStringRLP) {
		return EmptyNode{}, nil
	}

	item, err := rlp.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEncoding, err)
	}
	list, ok := item.(rlp.List)
	if !ok {
		return nil, fmt.Errorf("%w: node encoding is not a list: %T", ErrMalformedEncoding, item)
	}

	switch len(list.Items) {
	case 2:
		pathItem, ok := list.Items[0].(rlp.String)
		if !ok {
			return nil, fmt.Errorf("%w: node path is not a string: %T", ErrMalformedEncoding, list.Items[0])
		}
		path, isLeaf, err := DecodeHexPrefix(pathItem.Str)
		if err != nil {
			return nil, err
		}
		if isLeaf {
			valueItem, ok := list.Items[1].(rlp.String)
			if !ok {
				return nil, fmt.Errorf("%w: leaf value is not a string: %T", ErrMalformedEncoding, list.Items[1])
			}
			return &LeafNode{Path: path, Value: nonEmptyOrNil(valueItem.Str)}, nil
		}
		child, err := itemToChildRef(list.Items[1])
		if err != nil {
			return nil, err
		}
		if len(path) == 0 || child.IsEmpty() {
			return nil, fmt.Errorf("%w: extension node with empty path or child", ErrInvariantViolation)
		}
		return &ExtensionNode{Path: path, Child: child}, nil

	case 17:
		branch := &BranchNode{}
		for i := 0; i < 16; i++ {
			child, err := itemToChildRef(list.Items[i])
			if err != nil {
				return nil, err
			}
			branch.Children[i] = child
		}
		valueItem, ok := list.Items[16].(rlp.String)
		if !ok {
			return nil, fmt.Errorf("%w: branch terminator is not a string: %T", ErrMalformedEncoding, list.Items[16])
		}
		branch.Value = nonEmptyOrNil(valueItem.Str)
		return branch, nil

	default:
		return nil, fmt.Errorf("%w: node list has %d items, wanted 2 or 17", ErrMalformedEncoding, len(list.Items))
	}
}

// nonEmptyOrNil normalizes a decoded RLP string back to the nil-means-absent
// convention the engine uses for leaf/branch values: rlp.String slices data
// out of the decode buffer, so an absent terminator (encoded as the RLP
// empty string) comes back as a non-nil, zero-length slice rather than nil.
func nonEmptyOrNil(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}

// itemToChildRef interprets a decoded RLP item sitting in a child position:
// the empty string is the empty reference, a 32-byte string is a hash
// reference (per the decoder policy of spec §9, any 32-byte child string is
// treated as a hash unconditionally), and a list is an inlined child,
// re-serialized into its canonical bytes.
func itemToChildRef(item rlp.Item) (ChildRef, error) {
	switch it := item.(type) {
	case rlp.String:
		switch len(it.Str) {
		case 0:
			return EmptyChildRef(), nil
		case triehash.Size:
			var h triehash.Hash
			copy(h[:], it.Str)
			return HashChildRef(h), nil
		default:
			return ChildRef{}, fmt.Errorf("%w: invalid child reference length %d", ErrMalformedEncoding, len(it.Str))
		}
	case rlp.List:
		return InlineChildRef(rlp.Encode(it)), nil
	default:
		return ChildRef{}, fmt.Errorf("%w: unsupported child reference item %T", ErrMalformedEncoding, item)
	}
}
