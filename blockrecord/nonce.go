// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/blockhashd/fault"
)

// NonceType - type for nonce
type NonceType uint32

// BitsType - compact difficulty target
type BitsType uint32

// MarshalJSON - convert a nonce to little endian hex for JSON
func (nonce NonceType) MarshalJSON() ([]byte, error) {
	return leHexJSON(uint32(nonce)), nil
}

// UnmarshalJSON - convert a nonce little endian hex string to nonce value
func (nonce *NonceType) UnmarshalJSON(s []byte) error {
	n, err := fromLEHexJSON(s)
	if nil != err {
		return err
	}
	*nonce = NonceType(n)
	return nil
}

// String - bits are conventionally shown as big endian hex
func (bits BitsType) String() string {
	return fmt.Sprintf("%08x", uint32(bits))
}

// MarshalJSON - convert bits to little endian hex for JSON
func (bits BitsType) MarshalJSON() ([]byte, error) {
	return leHexJSON(uint32(bits)), nil
}

// UnmarshalJSON - convert little endian hex string to bits
func (bits *BitsType) UnmarshalJSON(s []byte) error {
	n, err := fromLEHexJSON(s)
	if nil != err {
		return err
	}
	*bits = BitsType(n)
	return nil
}

func leHexJSON(n uint32) []byte {
	bits := make([]byte, 4)
	binary.LittleEndian.PutUint32(bits, n)

	size := 2 + hex.EncodedLen(len(bits))
	buffer := make([]byte, size)
	buffer[0] = '"'
	buffer[size-1] = '"'
	hex.Encode(buffer[1:], bits)
	return buffer
}

func fromLEHexJSON(s []byte) (uint32, error) {
	// length = '"' + characters + '"'
	last := len(s) - 1
	if last < 1 || '"' != s[0] || '"' != s[last] {
		return 0, fault.ErrInvalidCharacter
	}

	b := s[1:last]
	if 8 != len(b) {
		return 0, fault.ErrInvalidCharacter
	}

	buffer := make([]byte, 4)
	_, err := hex.Decode(buffer, b)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buffer), nil
}
