// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/blockhashd/blockrecord"
	"github.com/bitmark-inc/blockhashd/fault"
)

// test JSON conversion
func TestNonceJSON(t *testing.T) {

	nonces := []blockrecord.NonceType{
		0x00000000,
		0x9546a142,
		0xffffffff,
	}

	for i, expected := range nonces {

		buffer, err := json.Marshal(expected)
		if nil != err {
			t.Fatalf("%d: JSON encode error: %s", i, err)
		}

		var actual blockrecord.NonceType
		err = json.Unmarshal(buffer, &actual)
		if nil != err {
			t.Fatalf("%d: JSON decode error: %s", i, err)
		}

		if actual != expected {
			t.Errorf("%d: JSON actual: %08x  expected: %08x", i, actual, expected)
		}
	}

	buffer, _ := json.Marshal(blockrecord.NonceType(0x9546a142))
	assert.Equal(t, `"42a14695"`, string(buffer), "nonce must be little endian hex")
}

func TestBitsJSON(t *testing.T) {
	bits := blockrecord.BitsType(0x1a44b9f2)

	buffer, err := json.Marshal(bits)
	assert.Nil(t, err, "encode error")
	assert.Equal(t, `"f2b9441a"`, string(buffer), "bits must be little endian hex")
	assert.Equal(t, "1a44b9f2", bits.String(), "bits string must be big endian")

	var actual blockrecord.BitsType
	err = json.Unmarshal([]byte(`"f2b944"`), &actual)
	assert.Equal(t, fault.ErrInvalidCharacter, err, "short bits accepted")
}
