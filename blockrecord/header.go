// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/fault"
)

// PackedHeader - use fix size array to simplify validation
type PackedHeader [totalHeaderSize]byte

// byte sizes for various fields
const (
	VersionSize       = 4                  // Block version number
	PreviousBlockSize = blockdigest.Length // 256-bit hash of the previous block header
	MerkleRootSize    = blockdigest.Length // 256-bit hash based on all of the transactions in the block
	TimestampSize     = 4                  // Current timestamp as seconds since 1970-01-01T00:00 UTC
	BitsSize          = 4                  // Current target difficulty in compact format
	NonceSize         = 4                  // 32-bit number (starts at 0)
)

// offsets of the fields
const (
	versionOffset       = 0
	previousBlockOffset = versionOffset + VersionSize
	merkleRootOffset    = previousBlockOffset + PreviousBlockSize
	timestampOffset     = merkleRootOffset + MerkleRootSize
	bitsOffset          = timestampOffset + TimestampSize
	nonceOffset         = bitsOffset + BitsSize

	// to set size of header array
	totalHeaderSize = nonceOffset + NonceSize // total bytes in the header
)

// TotalHeaderSize - bytes in a packed header
const TotalHeaderSize = totalHeaderSize

// Header - the unpacked header structure
// the types here must match Bitcoin header types
type Header struct {
	Version       int32              `json:"version"`
	PreviousBlock blockdigest.Digest `json:"previousBlock"`
	MerkleRoot    blockdigest.Digest `json:"merkleRoot"`
	Timestamp     uint32             `json:"timestamp"`
	Bits          BitsType           `json:"bits"`
	Nonce         NonceType          `json:"nonce"`
}

// ExtractHeader - extract a header from the front of a []byte
//
// returns the header and the remaining bytes
func ExtractHeader(block []byte) (*Header, []byte, error) {
	if len(block) < totalHeaderSize {
		return nil, nil, fault.ErrInvalidHeaderLength
	}
	packedHeader := PackedHeader{}
	copy(packedHeader[:], block[:totalHeaderSize])

	return packedHeader.Unpack(), block[totalHeaderSize:], nil
}

// Unpack - turn a byte array into a record
func (record PackedHeader) Unpack() *Header {

	header := &Header{}

	header.Version = int32(binary.LittleEndian.Uint32(record[versionOffset:]))

	// these are in little endian order so can just copy them
	copy(header.PreviousBlock[:], record[previousBlockOffset:merkleRootOffset])
	copy(header.MerkleRoot[:], record[merkleRootOffset:timestampOffset])

	header.Timestamp = binary.LittleEndian.Uint32(record[timestampOffset:])
	header.Bits = BitsType(binary.LittleEndian.Uint32(record[bitsOffset:]))
	header.Nonce = NonceType(binary.LittleEndian.Uint32(record[nonceOffset:]))

	return header
}

// Pack - turn a record into an array of bytes
//
// this is the canonical serialization used by both digest algorithms
func (header *Header) Pack() PackedHeader {
	buffer := PackedHeader{}

	binary.LittleEndian.PutUint32(buffer[versionOffset:], uint32(header.Version))

	copy(buffer[previousBlockOffset:], header.PreviousBlock[:])
	copy(buffer[merkleRootOffset:], header.MerkleRoot[:])

	binary.LittleEndian.PutUint32(buffer[timestampOffset:], header.Timestamp)
	binary.LittleEndian.PutUint32(buffer[bitsOffset:], uint32(header.Bits))
	binary.LittleEndian.PutUint32(buffer[nonceOffset:], uint32(header.Nonce))

	return buffer
}
