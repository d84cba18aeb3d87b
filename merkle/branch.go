// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"math"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/fault"
)

// LeafIndex - position of a leaf, which may be absent
type LeafIndex struct {
	index   uint32
	present bool
}

// NoLeaf - the transaction is not in the block
var NoLeaf = LeafIndex{}

// Index - create a present leaf index
func Index(n int) (LeafIndex, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return NoLeaf, fault.ErrIndexOutOfRange
	}
	return LeafIndex{index: uint32(n), present: true}, nil
}

// Get - the index value and whether it is present
func (l LeafIndex) Get() (int, bool) {
	return int(l.index), l.present
}

// VerifyBranch - recompute the root from a leaf and its branch
//
// an absent index yields the all zero digest; the caller compares the
// result against the root committed in the block header
func VerifyBranch(leaf blockdigest.Digest, branch []blockdigest.Digest, l LeafIndex) (blockdigest.Digest, error) {
	if !l.present {
		return blockdigest.Digest{}, nil
	}

	index := l.index
	if len(branch) < 32 && uint64(index) >= uint64(1)<<uint(len(branch)) {
		return blockdigest.Digest{}, fault.ErrIndexOutOfRange
	}

	digest := leaf
	for _, sibling := range branch {
		if 0 != index&1 {
			digest = blockdigest.Pair(sibling, digest)
		} else {
			digest = blockdigest.Pair(digest, sibling)
		}
		index >>= 1
	}
	return digest, nil
}
