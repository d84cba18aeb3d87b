// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digestcache

import (
	"sync/atomic"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/blockrecord"
)

// Counter - a 64 bit unsigned integer that can be incremented concurrently
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Stats - a snapshot of the counters
type Stats struct {
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Inserts uint64 `json:"inserts"`
	Entries int    `json:"entries"`
}

// Counted - a store that counts its traffic
//
// a nil *Counted, as returned by New for type "none", is a valid
// cache that never holds an entry
type Counted struct {
	store   Cache
	hits    Counter
	misses  Counter
	inserts Counter
}

// WithStatistics - wrap a store
func WithStatistics(store Cache) *Counted {
	return &Counted{store: store}
}

// Get - lookup a digest
func (c *Counted) Get(key blockrecord.Fingerprint) (blockdigest.Digest, bool) {
	if nil == c {
		return blockdigest.Digest{}, false
	}
	digest, ok := c.store.Get(key)
	if ok {
		c.hits.Increment()
	} else {
		c.misses.Increment()
	}
	return digest, ok
}

// Put - insert or overwrite a digest
func (c *Counted) Put(key blockrecord.Fingerprint, digest blockdigest.Digest) {
	if nil == c {
		return
	}
	c.inserts.Increment()
	c.store.Put(key, digest)
}

// Len - number of entries
func (c *Counted) Len() int {
	if nil == c {
		return 0
	}
	return c.store.Len()
}

// Close - close the underlying store
func (c *Counted) Close() error {
	if nil == c {
		return nil
	}
	return c.store.Close()
}

// Statistics - current counters
func (c *Counted) Statistics() Stats {
	if nil == c {
		return Stats{}
	}
	return Stats{
		Hits:    c.hits.Uint64(),
		Misses:  c.misses.Uint64(),
		Inserts: c.inserts.Uint64(),
		Entries: c.store.Len(),
	}
}
