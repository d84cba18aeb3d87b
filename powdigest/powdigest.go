// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package powdigest

import (
	"strings"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/fault"
)

//go:generate mockgen -source=powdigest.go -destination=mocks/mock_algorithm.go -package=mocks

// Algorithm - a memory hard digest over a packed header
//
// implementations must be safe for concurrent use
type Algorithm interface {
	Name() string
	Digest(record []byte) blockdigest.Digest
}

// names accepted by New
const (
	Scrypt  = "scrypt"
	Argon2d = "argon2d"
)

// New - select an algorithm by name
func New(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case Scrypt, "":
		return scryptAlgorithm{}, nil
	case Argon2d:
		return argon2Algorithm{}, nil
	default:
		return nil, fault.ErrInvalidAlgorithm
	}
}
