// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package trie implements a Merkle Patricia Trie: a radix-16 key/value map
// whose content is authenticated by a single 32-byte Keccak-256 root hash.
// The engine is purely functional — every mutation reads a root, builds the
// new nodes it needs, writes them to a triedb.Store, and returns the new
// root hash, without rewriting any node already in the store. Trie is a
// thin, stateful convenience wrapper around that functional core.
package trie

import (
	"fmt"

	"github.com/fantom-foundation/go-mpt-core/trie/triedb"
	"github.com/fantom-foundation/go-mpt-core/trie/triehash"
)

// Get looks up key in the trie rooted at root, returning its value and true
// if present.
func Get(store triedb.Store, root triehash.Hash, key []byte) ([]byte, bool, error) {
	node, err := loadRoot(root, store)
	if err != nil {
		return nil, false, err
	}
	return get(node, BytesToNibbles(key), store)
}

func get(node Node, path []Nibble, store triedb.Store) ([]byte, bool, error) {
	switch n := node.(type) {
	case EmptyNode:
		return nil, false, nil

	case *LeafNode:
		if equalNibbles(n.Path, path) {
			return n.Value, true, nil
		}
		return nil, false, nil

	case *ExtensionNode:
		if !isPrefixOf(n.Path, path) {
			return nil, false, nil
		}
		child, err := resolveChild(n.Child, store)
		if err != nil {
			return nil, false, err
		}
		return get(child, path[len(n.Path):], store)

	case *BranchNode:
		if len(path) == 0 {
			return n.Value, n.Value != nil, nil
		}
		child, err := resolveChild(n.Children[path[0]], store)
		if err != nil {
			return nil, false, err
		}
		return get(child, path[1:], store)

	default:
		return nil, false, fmt.Errorf("%w: unsupported node type %T", ErrInvariantViolation, node)
	}
}

// Put inserts or overwrites key with value in the trie rooted at root,
// returning the new root hash. A zero-length value is equivalent to
// Delete(store, root, key).
func Put(store triedb.Store, root triehash.Hash, key, value []byte) (triehash.Hash, error) {
	if len(value) == 0 {
		return Delete(store, root, key)
	}
	node, err := loadRoot(root, store)
	if err != nil {
		return triehash.Hash{}, err
	}
	newNode, err := put(node, BytesToNibbles(key), value, store)
	if err != nil {
		return triehash.Hash{}, err
	}
	return embedRoot(newNode, store)
}

func put(node Node, path []Nibble, value []byte, store triedb.Store) (Node, error) {
	switch n := node.(type) {
	case EmptyNode:
		return &LeafNode{Path: path, Value: value}, nil

	case *LeafNode:
		if equalNibbles(n.Path, path) {
			return &LeafNode{Path: path, Value: value}, nil
		}
		return splitLeaf(n.Path, n.Value, path, value, store)

	case *ExtensionNode:
		cp := commonPrefixLength(n.Path, path)
		if cp == len(n.Path) {
			child, err := resolveChild(n.Child, store)
			if err != nil {
				return nil, err
			}
			newChild, err := put(child, path[cp:], value, store)
			if err != nil {
				return nil, err
			}
			childRef, err := embed(newChild, store)
			if err != nil {
				return nil, err
			}
			return &ExtensionNode{Path: n.Path, Child: childRef}, nil
		}
		return splitExtension(n, cp, path, value, store)

	case *BranchNode:
		if len(path) == 0 {
			newBranch := cloneBranch(n)
			newBranch.Value = value
			return newBranch, nil
		}
		idx := path[0]
		child, err := resolveChild(n.Children[idx], store)
		if err != nil {
			return nil, err
		}
		newChild, err := put(child, path[1:], value, store)
		if err != nil {
			return nil, err
		}
		childRef, err := embed(newChild, store)
		if err != nil {
			return nil, err
		}
		newBranch := cloneBranch(n)
		newBranch.Children[idx] = childRef
		return newBranch, nil

	default:
		return nil, fmt.Errorf("%w: unsupported node type %T", ErrInvariantViolation, node)
	}
}

// splitLeaf builds the subtree replacing a leaf at pathA/valueA once a
// second, divergent key pathB/valueB needs to live alongside it.
func splitLeaf(pathA []Nibble, valueA []byte, pathB []Nibble, valueB []byte, store triedb.Store) (Node, error) {
	cp := commonPrefixLength(pathA, pathB)
	branch := &BranchNode{}

	if cp == len(pathA) {
		branch.Value = valueA
	} else {
		ref, err := embed(&LeafNode{Path: pathA[cp+1:], Value: valueA}, store)
		if err != nil {
			return nil, err
		}
		branch.Children[pathA[cp]] = ref
	}

	if cp == len(pathB) {
		branch.Value = valueB
	} else {
		ref, err := embed(&LeafNode{Path: pathB[cp+1:], Value: valueB}, store)
		if err != nil {
			return nil, err
		}
		branch.Children[pathB[cp]] = ref
	}

	return wrapWithExtension(pathA[:cp], branch, store)
}

// splitExtension builds the subtree replacing an extension node whose path
// diverges from the inserted path after cp shared nibbles (cp < len(n.Path)).
func splitExtension(n *ExtensionNode, cp int, path []Nibble, value []byte, store triedb.Store) (Node, error) {
	branch := &BranchNode{}

	remaining := n.Path[cp+1:]
	extChild := n.Child
	if len(remaining) > 0 {
		ref, err := embed(&ExtensionNode{Path: remaining, Child: n.Child}, store)
		if err != nil {
			return nil, err
		}
		extChild = ref
	}
	branch.Children[n.Path[cp]] = extChild

	if cp == len(path) {
		branch.Value = value
	} else {
		ref, err := embed(&LeafNode{Path: path[cp+1:], Value: value}, store)
		if err != nil {
			return nil, err
		}
		branch.Children[path[cp]] = ref
	}

	return wrapWithExtension(n.Path[:cp], branch, store)
}

// wrapWithExtension wraps branch in an ExtensionNode over prefix, unless
// prefix is empty, in which case branch itself is the result.
func wrapWithExtension(prefix []Nibble, branch *BranchNode, store triedb.Store) (Node, error) {
	if len(prefix) == 0 {
		return branch, nil
	}
	ref, err := embed(branch, store)
	if err != nil {
		return nil, err
	}
	return &ExtensionNode{Path: prefix, Child: ref}, nil
}

func cloneBranch(n *BranchNode) *BranchNode {
	c := *n
	return &c
}

// Delete removes key from the trie rooted at root, returning the new root
// hash. Deleting an absent key is a no-op that returns root unchanged.
func Delete(store triedb.Store, root triehash.Hash, key []byte) (triehash.Hash, error) {
	node, err := loadRoot(root, store)
	if err != nil {
		return triehash.Hash{}, err
	}
	newNode, changed, err := remove(node, BytesToNibbles(key), store)
	if err != nil {
		return triehash.Hash{}, err
	}
	if !changed {
		return root, nil
	}
	return embedRoot(newNode, store)
}

func remove(node Node, path []Nibble, store triedb.Store) (Node, bool, error) {
	switch n := node.(type) {
	case EmptyNode:
		return node, false, nil

	case *LeafNode:
		if equalNibbles(n.Path, path) {
			return EmptyNode{}, true, nil
		}
		return node, false, nil

	case *ExtensionNode:
		if !isPrefixOf(n.Path, path) {
			return node, false, nil
		}
		child, err := resolveChild(n.Child, store)
		if err != nil {
			return nil, false, err
		}
		newChild, changed, err := remove(child, path[len(n.Path):], store)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return node, false, nil
		}
		result, err := fuseExtension(n.Path, newChild, store)
		return result, true, err

	case *BranchNode:
		if len(path) == 0 {
			if n.Value == nil {
				return node, false, nil
			}
			newBranch := cloneBranch(n)
			newBranch.Value = nil
			result, err := normalizeBranch(newBranch, store)
			return result, true, err
		}
		idx := path[0]
		child, err := resolveChild(n.Children[idx], store)
		if err != nil {
			return nil, false, err
		}
		newChild, changed, err := remove(child, path[1:], store)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return node, false, nil
		}
		newBranch := cloneBranch(n)
		if _, empty := newChild.(EmptyNode); empty {
			newBranch.Children[idx] = EmptyChildRef()
		} else {
			ref, err := embed(newChild, store)
			if err != nil {
				return nil, false, err
			}
			newBranch.Children[idx] = ref
		}
		result, err := normalizeBranch(newBranch, store)
		return result, true, err

	default:
		return nil, false, fmt.Errorf("%w: unsupported node type %T", ErrInvariantViolation, node)
	}
}

// fuseExtension restores the extension invariant after its child changed:
// an extension can never point at Empty, another Extension, or a Leaf.
func fuseExtension(path []Nibble, child Node, store triedb.Store) (Node, error) {
	switch c := child.(type) {
	case EmptyNode:
		return EmptyNode{}, nil
	case *LeafNode:
		return &LeafNode{Path: concatNibbles(path, c.Path), Value: c.Value}, nil
	case *ExtensionNode:
		return &ExtensionNode{Path: concatNibbles(path, c.Path), Child: c.Child}, nil
	case *BranchNode:
		ref, err := embed(c, store)
		if err != nil {
			return nil, err
		}
		return &ExtensionNode{Path: path, Child: ref}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported node type %T", ErrInvariantViolation, child)
	}
}

// normalizeBranch restores the no-singleton-branch invariant after one of
// branch's slots or its own value was cleared.
func normalizeBranch(branch *BranchNode, store triedb.Store) (Node, error) {
	numChildren := 0
	lastIdx := -1
	for i, c := range branch.Children {
		if !c.IsEmpty() {
			numChildren++
			lastIdx = i
		}
	}

	if numChildren == 0 {
		if branch.Value == nil {
			return EmptyNode{}, nil
		}
		return &LeafNode{Path: nil, Value: branch.Value}, nil
	}

	if numChildren == 1 && branch.Value == nil {
		childRef := branch.Children[lastIdx]
		child, err := resolveChild(childRef, store)
		if err != nil {
			return nil, err
		}
		prefix := []Nibble{Nibble(lastIdx)}
		switch c := child.(type) {
		case *LeafNode:
			return &LeafNode{Path: concatNibbles(prefix, c.Path), Value: c.Value}, nil
		case *ExtensionNode:
			return &ExtensionNode{Path: concatNibbles(prefix, c.Path), Child: c.Child}, nil
		case *BranchNode:
			return &ExtensionNode{Path: prefix, Child: childRef}, nil
		default:
			return nil, fmt.Errorf("%w: singleton branch child resolved to %T", ErrInvariantViolation, child)
		}
	}

	return branch, nil
}

// embedRoot encodes node and stores it under its hash unconditionally, even
// if the encoding would otherwise qualify for inlining: a root must always
// be resolvable by hash alone. The empty trie is the one exception, whose
// root is the well-known EmptyRootHash with nothing written to store.
func embedRoot(node Node, store triedb.Store) (triehash.Hash, error) {
	if _, empty := node.(EmptyNode); empty {
		return EmptyRootHash, nil
	}
	data, err := encodeNodeRLP(node)
	if err != nil {
		return triehash.Hash{}, err
	}
	hash := triehash.Keccak256(data)
	if err := store.Put(hash, data); err != nil {
		return triehash.Hash{}, fmt.Errorf("failed to store root %v: %w", hash, err)
	}
	return hash, nil
}

// Trie is a stateful convenience wrapper tracking the current root hash of
// a value built on top of the package-level Get/Put/Delete functions. It
// adds no capability beyond them; use the functions directly when several
// roots of the same store need to be addressed concurrently.
type Trie struct {
	store triedb.Store
	root  triehash.Hash
}

// New returns a handle to the empty trie backed by store.
func New(store triedb.Store) *Trie {
	return &Trie{store: store, root: EmptyRootHash}
}

// Open returns a handle to the trie rooted at root within store. No
// validation is performed until the first operation touches the store.
func Open(store triedb.Store, root triehash.Hash) *Trie {
	return &Trie{store: store, root: root}
}

// Root returns the trie's current root hash.
func (t *Trie) Root() triehash.Hash {
	return t.root
}

// Get looks up key, returning its value and true if present.
func (t *Trie) Get(key []byte) ([]byte, bool, error) {
	return Get(t.store, t.root, key)
}

// Put inserts or overwrites key with value. A zero-length value deletes key.
func (t *Trie) Put(key, value []byte) error {
	root, err := Put(t.store, t.root, key, value)
	if err != nil {
		return err
	}
	t.root = root
	return nil
}

// Delete removes key, if present.
func (t *Trie) Delete(key []byte) error {
	root, err := Delete(t.store, t.root, key)
	if err != nil {
		return err
	}
	t.root = root
	return nil
}
