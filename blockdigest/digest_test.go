// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockdigest_test

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/fault"
)

func TestScanFmt(t *testing.T) {

	// big endian
	stringDigest := "00000000440b921e1b77c6c0487ae5616de67f788f44ae2a5af6e2194d16b6f8"

	var d blockdigest.Digest
	n, err := fmt.Sscan(stringDigest, &d)
	if nil != err {
		t.Fatalf("hex to digest error: %v", err)
	}

	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	// bytes as little endian format
	expected := blockdigest.Digest{
		0xf8, 0xb6, 0x16, 0x4d,
		0x19, 0xe2, 0xf6, 0x5a,
		0x2a, 0xae, 0x44, 0x8f,
		0x78, 0x7f, 0xe6, 0x6d,
		0x61, 0xe5, 0x7a, 0x48,
		0xc0, 0xc6, 0x77, 0x1b,
		0x1e, 0x92, 0x0b, 0x44,
		0x00, 0x00, 0x00, 0x00,
	}

	if d != expected {
		t.Errorf("digest(LE) = %#v expected %#v", d, expected)
	}

	s := fmt.Sprintf("%s", d)
	if s != stringDigest {
		t.Errorf("string: digest = %s expected %s", s, stringDigest)
	}

	s = fmt.Sprintf("%#v", d)
	if s != "<SHA256d:"+stringDigest+">" {
		t.Errorf("hash-v: digest = %s expected %s", s, stringDigest)
	}
}

func TestScanShort(t *testing.T) {
	var d blockdigest.Digest
	_, err := fmt.Sscan("0011", &d)
	assert.Equal(t, fault.ErrInvalidDigestLength, err, "short hex accepted")
}

func TestDoubleSHA256(t *testing.T) {
	s := []byte("hello world")

	first := sha256.Sum256(s)
	second := sha256.Sum256(first[:])

	d := blockdigest.DoubleSHA256(s)
	assert.Equal(t, blockdigest.Digest(second), d, "wrong double hash")

	split := blockdigest.DoubleSHA256([]byte("hello"), []byte(" "), []byte("world"))
	assert.Equal(t, d, split, "parts are not concatenated")
}

func TestPair(t *testing.T) {
	a := blockdigest.DoubleSHA256([]byte("left"))
	b := blockdigest.DoubleSHA256([]byte("right"))

	assert.Equal(t, blockdigest.DoubleSHA256(a[:], b[:]), blockdigest.Pair(a, b), "pair is not left || right")
	assert.NotEqual(t, blockdigest.Pair(a, b), blockdigest.Pair(b, a), "pair must be order sensitive")
}

func TestJSON(t *testing.T) {
	d := blockdigest.DoubleSHA256([]byte("json"))

	buffer, err := json.Marshal(d)
	require.Nil(t, err, "marshal error")

	var d2 blockdigest.Digest
	err = json.Unmarshal(buffer, &d2)
	require.Nil(t, err, "unmarshal error")
	assert.Equal(t, d, d2, "JSON round trip")

	err = json.Unmarshal([]byte(`"abcd"`), &d2)
	assert.Equal(t, fault.ErrInvalidDigestLength, err, "short text accepted")
}

func TestFromBytes(t *testing.T) {
	var d blockdigest.Digest
	assert.True(t, d.IsEmpty(), "zero digest not empty")

	err := blockdigest.DigestFromBytes(&d, make([]byte, 31))
	assert.Equal(t, fault.ErrInvalidDigestLength, err, "short buffer accepted")

	buffer := make([]byte, blockdigest.Length)
	buffer[31] = 0x80
	err = blockdigest.DigestFromBytes(&d, buffer)
	require.Nil(t, err, "from bytes error")
	assert.False(t, d.IsEmpty(), "digest should not be empty")
	assert.Equal(t, byte(0x80), d[31], "wrong byte")
}
