// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digestcache - memoization of proof-of-work digests
//
//  ***** Data Structure *****
//
//  Store       Key                        Value                 Bound
//  |___ lru        blockrecord.Fingerprint   blockdigest.Digest    size entries
//  |___ expiring   blockrecord.Fingerprint   blockdigest.Digest    expiry duration
//  |___ leveldb    blockrecord.Fingerprint   blockdigest.Digest    disk
//
//  ***** Purpose *****
//
//  the memory hard digest is expensive and the same header is hashed
//  many times during validation; a hit returns the digest computed
//  earlier for an identical fingerprint
//
// every store is safe for concurrent use and a reader never sees a
// partially written entry
package digestcache
