// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader

import (
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/blockrecord"
	"github.com/bitmark-inc/blockhashd/fault"
)

// DigestAll - digests of independent headers using a pool of workers
//
// results are in the same order as the headers
func (h *Hasher) DigestAll(headers []*blockrecord.Header, useCache bool, workers int) ([]blockdigest.Digest, error) {
	if workers <= 0 {
		return nil, fault.ErrInvalidWorkerCount
	}
	for _, header := range headers {
		if nil == header {
			return nil, fault.ErrMissingParameters
		}
	}
	if workers > len(headers) {
		workers = len(headers)
	}

	digests := make([]blockdigest.Digest, len(headers))
	indices := make(chan int)

	var g errgroup.Group
	for w := 0; w < workers; w += 1 {
		g.Go(func() error {
			for i := range indices {
				digests[i] = h.Digest(headers[i], useCache)
			}
			return nil
		})
	}

	for i := range headers {
		indices <- i
	}
	close(indices)

	if err := g.Wait(); nil != err {
		return nil, err
	}

	h.log.Debugf("digested: %d headers with: %d workers", len(headers), workers)
	return digests, nil
}
