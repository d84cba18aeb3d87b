// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/blockrecord"
	"github.com/bitmark-inc/blockhashd/digestcache"
	"github.com/bitmark-inc/blockhashd/fault"
	"github.com/bitmark-inc/blockhashd/powdigest"
)

// version limits
const (
	DefaultFullForkVersion = 8
	MaximumModernVersion   = 15
)

// Hasher - computes block identity digests
//
// safe for concurrent use provided the cache is
type Hasher struct {
	log         *logger.L
	algorithm   powdigest.Algorithm
	cache       digestcache.Cache
	forkVersion uint32
}

// New - create a hasher
//
// cache may be nil, in which case every modern digest is computed
func New(algorithm powdigest.Algorithm, cache digestcache.Cache, forkVersion uint32, log *logger.L) (*Hasher, error) {
	if nil == algorithm || nil == log {
		return nil, fault.ErrMissingParameters
	}
	if forkVersion < 1 || forkVersion > MaximumModernVersion {
		return nil, fault.ErrInvalidForkVersion
	}

	log.Infof("fork version: %d  algorithm: %s  cache: %t", forkVersion, algorithm.Name(), nil != cache)

	return &Hasher{
		log:         log,
		algorithm:   algorithm,
		cache:       cache,
		forkVersion: forkVersion,
	}, nil
}

// IsLegacy - true if the version selects the double SHA-256 digest
//
// the lower bound compares unsigned, the upper bound signed
func (h *Hasher) IsLegacy(version int32) bool {
	return uint32(version) < h.forkVersion || version > MaximumModernVersion
}

// Digest - the identity digest of a header
//
// useCache has no effect on legacy headers
func (h *Hasher) Digest(header *blockrecord.Header, useCache bool) blockdigest.Digest {
	packed := header.Pack()

	if h.IsLegacy(header.Version) {
		return blockdigest.DoubleSHA256(packed[:])
	}

	if !useCache || nil == h.cache {
		return h.algorithm.Digest(packed[:])
	}

	key := header.Fingerprint()
	if digest, ok := h.cache.Get(key); ok {
		h.log.Debugf("cache hit: %s", key)
		return digest
	}

	digest := h.algorithm.Digest(packed[:])
	h.cache.Put(key, digest)
	h.log.Debugf("cache miss: %s  digest: %s", key, digest)

	return digest
}
