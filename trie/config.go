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
	"github.com/fantom-foundation/go-mpt-core/trie/triedb"
	"github.com/fantom-foundation/go-mpt-core/trie/triemetrics"
)

// Config bundles the choices governing how a Trie's backing store is
// assembled. It has no effect on root hashes: every option only changes how
// often and through which path node blobs are read or written.
type Config struct {
	// A descriptive name for this configuration, used only for logging and
	// selection by name.
	Name string

	// NodeCacheSize is the number of node blobs kept in an in-memory LRU
	// cache in front of the underlying store. Zero disables caching.
	NodeCacheSize int

	// CollectMetrics enables Prometheus counters for store traffic.
	CollectMetrics bool
}

// InMemoryConfig adds neither a cache nor metrics: BuildStore returns the
// base store unchanged. Intended for tests and short-lived tries.
var InMemoryConfig = Config{
	Name:          "in-memory",
	NodeCacheSize: 0,
}

// CachedConfig layers a bounded LRU cache over the backing store, trading
// memory for fewer store round-trips on repeated access to hot nodes.
var CachedConfig = Config{
	Name:          "cached",
	NodeCacheSize: 1 << 16,
}

// ObservedConfig is CachedConfig with Prometheus instrumentation enabled,
// intended for long-running services that export metrics.
var ObservedConfig = Config{
	Name:           "observed",
	NodeCacheSize:  1 << 16,
	CollectMetrics: true,
}

var allConfigs = []Config{InMemoryConfig, CachedConfig, ObservedConfig}

// GetConfigByName attempts to locate a configuration with the given name.
func GetConfigByName(name string) (Config, bool) {
	for _, config := range allConfigs {
		if config.Name == name {
			return config, true
		}
	}
	return Config{}, false
}

// BuildStore wraps base according to the configuration's caching and
// metrics settings.
func (c Config) BuildStore(base triedb.Store) (triedb.Store, error) {
	store := base
	if c.NodeCacheSize > 0 {
		cached, err := triedb.NewCachedStore(store, c.NodeCacheSize)
		if err != nil {
			return nil, err
		}
		store = cached
	}
	if c.CollectMetrics {
		store = triemetrics.Wrap(store)
	}
	return store, nil
}
