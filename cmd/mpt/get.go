// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/fantom-foundation/go-mpt-core/trie"
	"github.com/fantom-foundation/go-mpt-core/trie/triehash"
)

var (
	rootFlag = cli.StringFlag{
		Name:     "root",
		Usage:    "the root hash to look up against, as a 0x-prefixed hex string",
		Required: true,
	}
	keyFlag = cli.StringFlag{
		Name:     "key",
		Usage:    "the key to look up",
		Required: true,
	}
)

var getCommand = cli.Command{
	Action: get,
	Name:   "get",
	Usage:  "looks up a key against a trie rooted at a given hash",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
		&rootFlag,
		&keyFlag,
	},
}

func get(ctx *cli.Context) (err error) {
	dbDir := ctx.String(dbDirectoryFlag.Name)
	root, err := parseHash(ctx.String(rootFlag.Name))
	if err != nil {
		return err
	}
	key := ctx.String(keyFlag.Name)

	log.Printf("Opening node store in %v ...", dbDir)
	store, err := openStore(dbDir)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	value, found, err := trie.Get(store, root, []byte(key))
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}
	if !found {
		fmt.Println("key not found")
		return nil
	}
	fmt.Printf("%s\n", value)
	return nil
}

func parseHash(s string) (triehash.Hash, error) {
	s = strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return triehash.Hash{}, fmt.Errorf("invalid root hash %q: %w", s, err)
	}
	if len(raw) != triehash.Size {
		return triehash.Hash{}, fmt.Errorf("invalid root hash %q: expected %d bytes, got %d", s, triehash.Size, len(raw))
	}
	var h triehash.Hash
	copy(h[:], raw)
	return h, nil
}
