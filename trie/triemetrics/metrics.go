// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package triemetrics exposes Prometheus counters for node store traffic,
// mirroring the counters Carmen's backend stores register against their own
// operations.
package triemetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fantom-foundation/go-mpt-core/trie/triehash"
	"github.com/fantom-foundation/go-mpt-core/trie/triedb"
)

var (
	nodeReads = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mpt_store_node_reads_total",
		Help: "Number of node lookups issued against the backing store.",
	})
	nodeReadHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mpt_store_node_read_hits_total",
		Help: "Number of node lookups that found an entry.",
	})
	nodeWrites = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mpt_store_node_writes_total",
		Help: "Number of node blobs written to the backing store.",
	})
)

func init() {
	prometheus.MustRegister(nodeReads, nodeReadHits, nodeWrites)
}

// InstrumentedStore wraps a triedb.Store, counting reads, read hits, and
// writes via the package's registered Prometheus counters.
type InstrumentedStore struct {
	inner triedb.Store
}

// Wrap returns a Store that forwards to inner while recording metrics.
func Wrap(inner triedb.Store) *InstrumentedStore {
	return &InstrumentedStore{inner: inner}
}

func (s *InstrumentedStore) Get(hash triehash.Hash) ([]byte, bool, error) {
	nodeReads.Inc()
	data, found, err := s.inner.Get(hash)
	if err == nil && found {
		nodeReadHits.Inc()
	}
	return data, found, err
}

func (s *InstrumentedStore) Put(hash triehash.Hash, data []byte) error {
	err := s.inner.Put(hash, data)
	if err == nil {
		nodeWrites.Inc()
	}
	return err
}

func (s *InstrumentedStore) Has(hash triehash.Hash) (bool, error) {
	return s.inner.Has(hash)
}
