// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle - transaction merkle trees, branches and branch verification
//
// Nodes are the double SHA-256 of left || right and an odd level pairs
// its last node with itself. This makes some transaction lists share a
// root with a longer list that repeats trailing transactions
// (CVE-2012-2459):
//
//                  A               A
//                /  \            /   \
//              B     C         B       C
//             / \    |        / \     / \
//            D   E   F       D   E   F   F
//           / \ / \ / \     / \ / \ / \ / \
//           1 2 3 4 5 6     1 2 3 4 5 6 5 6
//
// A tree whose level ends in two identical nodes is reported as
// mutated and the block carrying it must be rejected even though its
// root matches.
package merkle
