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
	"github.com/urfave/cli/v2"

	"github.com/fantom-foundation/go-mpt-core/trie/triedb"
)

var dbDirectoryFlag = cli.StringFlag{
	Name:     "db",
	Usage:    "the directory of the LevelDB node store",
	Required: true,
}

func openStore(dir string) (*triedb.LevelDBStore, error) {
	return triedb.OpenLevelDBStore(dir)
}
