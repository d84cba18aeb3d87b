// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/blockhashd/blockdigest"
)

// number of 32 bit words in a digest
const digestWords = blockdigest.Length / 4

// Fingerprint - cache key folding every header field that affects the
// proof-of-work digest into 32 bytes
//
// NOTE: this is an xor fold, not a hash; it is a lookup key only and
// never part of consensus data
type Fingerprint [blockdigest.Length]byte

// Words - decompose a digest into eight little endian 32 bit words
func Words(d blockdigest.Digest) [digestWords]uint32 {
	var w [digestWords]uint32
	for i := 0; i < digestWords; i += 1 {
		w[i] = binary.LittleEndian.Uint32(d[4*i:])
	}
	return w
}

// Fingerprint - compute the cache key for a header
//
//   w[i] = previous[i] ^ merkle[i]  for i in 0..7
//   w[0] ^= version; w[1] ^= timestamp; w[2] ^= bits; w[3] ^= nonce
func (header *Header) Fingerprint() Fingerprint {
	previous := Words(header.PreviousBlock)
	merkleRoot := Words(header.MerkleRoot)

	var w [digestWords]uint32
	for i := 0; i < digestWords; i += 1 {
		w[i] = previous[i] ^ merkleRoot[i]
	}
	w[0] ^= uint32(header.Version)
	w[1] ^= header.Timestamp
	w[2] ^= uint32(header.Bits)
	w[3] ^= uint32(header.Nonce)

	var key Fingerprint
	for i := 0; i < digestWords; i += 1 {
		binary.LittleEndian.PutUint32(key[4*i:], w[i])
	}
	return key
}

// String - hex form for logging
func (key Fingerprint) String() string {
	return blockdigest.Digest(key).String()
}
