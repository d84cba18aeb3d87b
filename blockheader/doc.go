// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockheader - block identity digests
//
// headers with a version in [fork version, 15] use the memory hard
// proof-of-work digest; every other version uses double SHA-256 of
// the packed header
package blockheader
