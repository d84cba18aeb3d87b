// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digestcache

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/blockrecord"
	"github.com/bitmark-inc/blockhashd/fault"
)

// Expiring - in-memory store where entries expire after a fixed time
type Expiring struct {
	items  *cache.Cache
	expiry time.Duration
}

// NewExpiring - create a store with the given entry lifetime
func NewExpiring(expiry time.Duration) (*Expiring, error) {
	if expiry <= 0 {
		return nil, fault.ErrInvalidCacheExpiry
	}
	return &Expiring{
		items:  cache.New(expiry, 2*expiry),
		expiry: expiry,
	}, nil
}

// Get - lookup a digest
func (c *Expiring) Get(key blockrecord.Fingerprint) (blockdigest.Digest, bool) {
	value, ok := c.items.Get(string(key[:]))
	if !ok {
		return blockdigest.Digest{}, false
	}
	return value.(blockdigest.Digest), true
}

// Put - insert or overwrite a digest, restarting its lifetime
func (c *Expiring) Put(key blockrecord.Fingerprint, digest blockdigest.Digest) {
	c.items.Set(string(key[:]), digest, c.expiry)
}

// Len - number of entries, may include expired entries not yet cleaned
func (c *Expiring) Len() int {
	return c.items.ItemCount()
}

// Close - drop all entries
func (c *Expiring) Close() error {
	c.items.Flush()
	return nil
}
