// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digestcache

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/blockrecord"
	"github.com/bitmark-inc/blockhashd/fault"
)

// LRU - bounded in-memory store, least recently used entries are evicted
type LRU struct {
	items *lru.Cache
}

// NewLRU - create a store holding at most size entries
func NewLRU(size int) (*LRU, error) {
	if size <= 0 {
		return nil, fault.ErrInvalidCacheSize
	}
	items, err := lru.New(size)
	if nil != err {
		return nil, err
	}
	return &LRU{items: items}, nil
}

// Get - lookup a digest
func (c *LRU) Get(key blockrecord.Fingerprint) (blockdigest.Digest, bool) {
	value, ok := c.items.Get(key)
	if !ok {
		return blockdigest.Digest{}, false
	}
	return value.(blockdigest.Digest), true
}

// Put - insert or overwrite a digest
func (c *LRU) Put(key blockrecord.Fingerprint, digest blockdigest.Digest) {
	c.items.Add(key, digest)
}

// Len - number of entries
func (c *LRU) Len() int {
	return c.items.Len()
}

// Close - drop all entries
func (c *LRU) Close() error {
	c.items.Purge()
	return nil
}
