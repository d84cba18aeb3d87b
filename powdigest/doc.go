// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package powdigest - memory hard proof-of-work digests
//
// the digest is computed over the packed block header; both the
// password and the salt are the header bytes
package powdigest
