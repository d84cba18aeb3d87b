// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digestcache

import (
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/blockrecord"
	"github.com/bitmark-inc/blockhashd/fault"
)

// Cache - lookup and insert of digests by header fingerprint
type Cache interface {
	Get(key blockrecord.Fingerprint) (blockdigest.Digest, bool)
	Put(key blockrecord.Fingerprint, digest blockdigest.Digest)
	Len() int
	Close() error
}

// store types
const (
	TypeNone     = "none"
	TypeLRU      = "lru"
	TypeExpiring = "expiring"
	TypeLevelDB  = "leveldb"
)

// defaults
const (
	DefaultSize   = 4096
	DefaultExpiry = 30 * time.Minute
)

// Configuration - cache section of the configuration file
type Configuration struct {
	Type      string `gluamapper:"type" json:"type"`
	Size      int    `gluamapper:"size" json:"size"`
	Expiry    string `gluamapper:"expiry" json:"expiry"`
	Directory string `gluamapper:"directory" json:"directory"`
}

// New - create the store selected by the configuration
//
// returns a nil *Counted for type "none", which behaves as an empty
// cache; any other store is wrapped to collect statistics
func New(configuration Configuration, log *logger.L) (*Counted, error) {

	var store Cache
	var err error

	switch strings.ToLower(configuration.Type) {
	case TypeNone:
		log.Info("digest cache disabled")
		return nil, nil

	case TypeLRU, "":
		size := configuration.Size
		if 0 == size {
			size = DefaultSize
		}
		store, err = NewLRU(size)

	case TypeExpiring:
		expiry := DefaultExpiry
		if "" != configuration.Expiry {
			expiry, err = time.ParseDuration(configuration.Expiry)
			if nil != err {
				return nil, err
			}
		}
		store, err = NewExpiring(expiry)

	case TypeLevelDB:
		store, err = NewLevelDB(configuration.Directory, log)

	default:
		return nil, fault.ErrInvalidCacheType
	}

	if nil != err {
		return nil, err
	}

	log.Infof("digest cache: %q", configuration.Type)
	return WithStatistics(store), nil
}
