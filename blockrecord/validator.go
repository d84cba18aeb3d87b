// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/fault"
	"github.com/bitmark-inc/blockhashd/merkle"
)

// CheckMerkleRoot - validate the transaction ids against the header
//
// a mutated tree is rejected even when the root matches
func CheckMerkleRoot(header *Header, txIds []blockdigest.Digest) error {
	root, mutated := merkle.MerkleRoot(txIds)
	if mutated {
		return fault.ErrMerkleTreeMutated
	}
	if root != header.MerkleRoot {
		return fault.ErrMerkleRootMismatch
	}
	return nil
}

// ValidBlockLinkage - valid incoming block linkage
func ValidBlockLinkage(currentDigest blockdigest.Digest, incomingDigestOfPreviousBlock blockdigest.Digest) error {
	if currentDigest != incomingDigestOfPreviousBlock {
		return fault.ErrPreviousBlockMismatch
	}
	return nil
}
