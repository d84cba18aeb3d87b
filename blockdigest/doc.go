// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdigest - 256 bit digests for block headers and merkle nodes
//
// the generic double SHA-256 primitive lives here; the memory hard
// proof-of-work primitive is in package powdigest
package blockdigest
