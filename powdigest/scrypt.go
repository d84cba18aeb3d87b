// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powdigest

import (
	"golang.org/x/crypto/scrypt"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/fault"
)

// internal hashing parameters
const (
	scryptN = 1 << 10
	scryptR = 1
	scryptP = 1
)

type scryptAlgorithm struct{}

func (scryptAlgorithm) Name() string {
	return Scrypt
}

// Digest - scrypt(N=1024, r=1, p=1) with the record as password and salt
func (scryptAlgorithm) Digest(record []byte) blockdigest.Digest {
	hash, err := scrypt.Key(record, record, scryptN, scryptR, scryptP, blockdigest.Length)
	fault.PanicIfError("powdigest.scrypt", err)

	var digest blockdigest.Digest
	copy(digest[:], hash)
	return digest
}
