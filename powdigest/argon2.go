// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powdigest

import (
	"github.com/bitmark-inc/go-argon2"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/fault"
)

// internal hashing parameters
const (
	argon2Mode        = argon2.ModeArgon2d
	argon2Memory      = 1 << 17 // 128 MiB
	argon2Parallelism = 1
	argon2Iterations  = 4
	argon2Version     = argon2.Version13
)

type argon2Algorithm struct{}

func (argon2Algorithm) Name() string {
	return Argon2d
}

// Digest - argon2d with the record as password and salt
func (argon2Algorithm) Digest(record []byte) blockdigest.Digest {

	context := &argon2.Context{
		Iterations:  argon2Iterations,
		Memory:      argon2Memory,
		Parallelism: argon2Parallelism,
		HashLen:     blockdigest.Length,
		Mode:        argon2Mode,
		Version:     argon2Version,
	}

	hash, err := argon2.Hash(context, record, record)
	fault.PanicIfError("powdigest.argon2d", err)

	var digest blockdigest.Digest
	copy(digest[:], hash)
	return digest
}
