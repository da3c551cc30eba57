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

import "errors"

// ErrMalformedEncoding is returned (wrapped with additional context) when an
// RLP or hex-prefix encoding cannot be parsed.
var ErrMalformedEncoding = errors.New("malformed encoding")

// ErrStoreMissing is returned when a 32-byte node reference is reached
// during traversal but has no corresponding entry in the backing store.
// It indicates either corruption or a root taken from a foreign store.
var ErrStoreMissing = errors.New("referenced node missing from store")

// ErrInvariantViolation is returned when the engine encounters a structural
// shape forbidden by the trie's invariants, such as a singleton branch or
// an empty-path extension surviving a mutation. This should be unreachable
// in correct code; it signals an engine bug rather than bad input.
var ErrInvariantViolation = errors.New("trie invariant violation")
