// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/bitmark-inc/blockhashd/fault"
)

// Length - number of bytes in the digest
const Length = chainhash.HashSize

// Digest - type for a digest
//
// stored as little endian byte array
// represented as big endian hex value for print
// represented as little endian hex text for JSON encoding
type Digest [Length]byte

// DoubleSHA256 - the generic double hash over the concatenation of parts
func DoubleSHA256(parts ...[]byte) Digest {
	if 1 == len(parts) {
		return Digest(chainhash.DoubleHashH(parts[0]))
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	buffer := make([]byte, 0, n)
	for _, p := range parts {
		buffer = append(buffer, p...)
	}
	return Digest(chainhash.DoubleHashH(buffer))
}

// Pair - double hash of left || right
func Pair(left Digest, right Digest) Digest {
	var buffer [2 * Length]byte
	copy(buffer[:Length], left[:])
	copy(buffer[Length:], right[:])
	return Digest(chainhash.DoubleHashH(buffer[:]))
}

// IsEmpty - check for the all zero digest
func (digest Digest) IsEmpty() bool {
	return digest == Digest{}
}

// internal function to return a reversed byte order copy of a digest
func reversed(d Digest) []byte {
	result := make([]byte, Length)
	for i := 0; i < Length; i += 1 {
		result[i] = d[Length-1-i]
	}
	return result
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
//
// the stored version is in little endian, but the output string is big endian
func (digest Digest) String() string {
	return hex.EncodeToString(reversed(digest))
}

// GoString - convert a binary digest to big endian hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA256d:" + hex.EncodeToString(reversed(digest)) + ">"
}

// Scan - convert a big endian hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(Length) {
		return fault.ErrInvalidDigestLength
	}

	buffer := make([]byte, Length)
	_, err = hex.Decode(buffer, token)
	if nil != err {
		return err
	}

	for i, v := range buffer {
		digest[Length-1-i] = v
	}
	return nil
}

// MarshalText - convert digest to little endian hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(digest))
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert little endian hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidDigestLength
	}
	buffer := make([]byte, Length)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(digest[:], buffer)
	return nil
}

// DigestFromBytes - convert and validate little endian binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidDigestLength
	}
	copy(digest[:], buffer)
	return nil
}
