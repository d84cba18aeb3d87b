// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/fault"
)

// Tree - a complete merkle tree
//
// structure is:
//   1. N * transaction digests
//   2. level 1..m digests
//   3. merkle root digest
//
// the tree is immutable once built
type Tree struct {
	nodes     []blockdigest.Digest
	leafCount int
	mutated   bool
}

// TreeLength - number of nodes in the tree for a given number of leaves
func TreeLength(leafCount int) int {
	if leafCount <= 0 {
		return 0
	}
	total := 1 // space for the final root
	for n := leafCount; n > 1; n = (n + 1) / 2 {
		total += n
	}
	return total
}

// FullMerkleTree - compute the full tree from a set of transaction ids
//
// the ids are copied and never reordered
func FullMerkleTree(txIds []blockdigest.Digest) *Tree {

	idCount := len(txIds)

	tree := &Tree{
		nodes:     make([]blockdigest.Digest, TreeLength(idCount)),
		leafCount: idCount,
	}
	copy(tree.nodes, txIds)

	n := idCount // next free slot
	j := 0       // start of current level
	for levelSize := idCount; levelSize > 1; levelSize = (levelSize + 1) / 2 {
		for i := 0; i < levelSize; i += 2 {
			i2 := i + 1
			if i2 == levelSize {
				i2 = i // compensate for odd number
			} else if i2+1 == levelSize && tree.nodes[j+i] == tree.nodes[j+i2] {
				// two identical hashes at the end of the level
				tree.mutated = true
			}
			tree.nodes[n] = blockdigest.Pair(tree.nodes[j+i], tree.nodes[j+i2])
			n += 1
		}
		j += levelSize
	}
	return tree
}

// MerkleRoot - root and mutation flag without keeping the tree
func MerkleRoot(txIds []blockdigest.Digest) (blockdigest.Digest, bool) {
	tree := FullMerkleTree(txIds)
	return tree.Root(), tree.Mutated()
}

// Root - the merkle root, all zero for an empty tree
func (tree *Tree) Root() blockdigest.Digest {
	if 0 == len(tree.nodes) {
		return blockdigest.Digest{}
	}
	return tree.nodes[len(tree.nodes)-1]
}

// Mutated - true if any level ended with a duplicated pair
func (tree *Tree) Mutated() bool {
	return tree.mutated
}

// LeafCount - number of transaction ids the tree was built from
func (tree *Tree) LeafCount() int {
	return tree.leafCount
}

// Nodes - a copy of the flat node array
func (tree *Tree) Nodes() []blockdigest.Digest {
	nodes := make([]blockdigest.Digest, len(tree.nodes))
	copy(nodes, tree.nodes)
	return nodes
}

// Branch - the siblings needed to recompute the root from one leaf
func (tree *Tree) Branch(index int) ([]blockdigest.Digest, error) {
	return BranchFromNodes(tree.nodes, tree.leafCount, index)
}

// BranchFromNodes - extract a branch from a flat tree as produced by Nodes
func BranchFromNodes(nodes []blockdigest.Digest, leafCount int, index int) ([]blockdigest.Digest, error) {
	if 0 == leafCount {
		return nil, fault.ErrEmptyTree
	}
	if len(nodes) != TreeLength(leafCount) {
		return nil, fault.ErrLeafCountMismatch
	}
	if index < 0 || index >= leafCount {
		return nil, fault.ErrIndexOutOfRange
	}

	branch := make([]blockdigest.Digest, 0, branchLength(leafCount))
	j := 0
	for levelSize := leafCount; levelSize > 1; levelSize = (levelSize + 1) / 2 {
		i := index ^ 1
		if i > levelSize-1 {
			i = levelSize - 1
		}
		branch = append(branch, nodes[j+i])
		index >>= 1
		j += levelSize
	}
	return branch, nil
}

// ceil(log2(n))
func branchLength(leafCount int) int {
	length := 0
	for n := leafCount; n > 1; n = (n + 1) / 2 {
		length += 1
	}
	return length
}
