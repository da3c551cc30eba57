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
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/fantom-foundation/go-mpt-core/trie"
)

var inputFileFlag = cli.StringFlag{
	Name:     "input",
	Usage:    "a file of newline-delimited 'key value' pairs to insert",
	Required: true,
}

var buildCommand = cli.Command{
	Action: build,
	Name:   "build",
	Usage:  "builds a trie from a key/value file and prints its root hash",
	Flags: []cli.Flag{
		&dbDirectoryFlag,
		&inputFileFlag,
	},
}

func build(ctx *cli.Context) (err error) {
	dbDir := ctx.String(dbDirectoryFlag.Name)
	inputPath := ctx.String(inputFileFlag.Name)

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

	log.Printf("Reading key/value pairs from %v ...", inputPath)
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	tr := trie.New(store)
	count := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			return fmt.Errorf("malformed line %d: expected 'key value', got %q", count+1, line)
		}
		if err := tr.Put([]byte(fields[0]), []byte(fields[1])); err != nil {
			return fmt.Errorf("failed to insert %q: %w", fields[0], err)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	log.Printf("Inserted %d entries", count)
	fmt.Printf("Root hash: %v\n", tr.Root())
	return nil
}
