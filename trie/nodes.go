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
	"fmt"

	"github.com/fantom-foundation/go-mpt-core/trie/triehash"
)

// Node is the tagged variant of all node shapes making up an MPT. There are
// exactly four constructors: EmptyNode, LeafNode, ExtensionNode, and
// BranchNode. A type switch over these four is the only supported way to
// inspect a Node; no fifth shape is ever introduced.
type Node interface {
	isNode()
}

// EmptyNode represents the absence of a subtree.
type EmptyNode struct{}

func (EmptyNode) isNode() {}

// LeafNode is a terminal node mapping the path reaching it, extended by
// Path, to Value.
type LeafNode struct {
	Path  []Nibble
	Value []byte
}

func (*LeafNode) isNode() {}

// ExtensionNode compresses a chain of single-child branches by storing the
// shared nibble path once. Path must be non-empty and Child must not be the
// empty reference; both are invariants restored by every mutation.
type ExtensionNode struct {
	Path  []Nibble
	Child ChildRef
}

func (*ExtensionNode) isNode() {}

// BranchNode is the radix-16 fan-out node. Value holds the value stored at
// this node's own path, if any key terminates exactly here.
type BranchNode struct {
	Children [16]ChildRef
	Value    []byte
}

func (*BranchNode) isNode() {}

// childKind discriminates the two ways a non-root node reference can be
// represented, plus the absence of a child.
type childKind uint8

const (
	childEmpty childKind = iota
	childInline
	childHash
)

// ChildRef is a reference to a child node: either absent, inlined as raw RLP
// bytes (when that encoding is strictly shorter than 32 bytes), or a
// 32-byte Keccak-256 hash of the RLP encoding stored under that key in the
// backing store.
type ChildRef struct {
	kind   childKind
	inline []byte
	hash   triehash.Hash
}

// EmptyChildRef returns the reference denoting an absent child.
func EmptyChildRef() ChildRef {
	return ChildRef{kind: childEmpty}
}

// InlineChildRef wraps raw RLP bytes shorter than 32 bytes as a child
// reference embedded directly in the parent's encoding.
func InlineChildRef(rlpBytes []byte) ChildRef {
	return ChildRef{kind: childInline, inline: rlpBytes}
}

// HashChildRef wraps a 32-byte digest as a child reference resolved through
// the backing store.
func HashChildRef(hash triehash.Hash) ChildRef {
	return ChildRef{kind: childHash, hash: hash}
}

// IsEmpty reports whether the reference denotes an absent child.
func (c ChildRef) IsEmpty() bool { return c.kind == childEmpty }

// IsInline reports whether the reference embeds raw RLP bytes.
func (c ChildRef) IsInline() bool { return c.kind == childInline }

// IsHash reports whether the reference is a 32-byte store key.
func (c ChildRef) IsHash() bool { return c.kind == childHash }

// Hash returns the wrapped hash. The result is undefined unless IsHash().
func (c ChildRef) Hash() triehash.Hash { return c.hash }

// Inline returns the wrapped RLP bytes. The result is undefined unless
// IsInline().
func (c ChildRef) Inline() []byte { return c.inline }

func (c ChildRef) String() string {
	switch c.kind {
	case childEmpty:
		return "<empty>"
	case childInline:
		return fmt.Sprintf("<inline %d bytes>", len(c.inline))
	default:
		return c.hash.String()
	}
}
