// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/blockhashd/blockheader"
	"github.com/bitmark-inc/blockhashd/digestcache"
	"github.com/bitmark-inc/blockhashd/powdigest"
)

const (
	testingDirName = "testing"
)

// bitcoin block 125552
const legacyHeaderHex = "01000000" +
	"81cd02ab7e569e8bcd9317e2fe99f2de44d49ab2b8851ba4a308000000000000" +
	"e320b6c2fffc8d750423db8b1eb942ae710e951ed797f7affc8892b0f1fc122b" +
	"c7f5d74d" + "f2b9441a" + "42a14695"

const legacyDigest = "00000000000000001e8d6829a8a21adc5d38d0a473b144b6765798e61f98bd1d"

// same fields with version 8
var modernHeaderHex = "08000000" + legacyHeaderHex[8:]

// remove all files created by test
func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// configure for testing
func setup() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "test.log",
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

// post test cleanup
func teardown() {
	logger.Finalise()
	removeFiles()
}

func newTestRunner(t *testing.T) *runner {
	algorithm, err := powdigest.New(powdigest.Scrypt)
	require.Nil(t, err, "algorithm")

	store, err := digestcache.NewLRU(64)
	require.Nil(t, err, "cache")
	counted := digestcache.WithStatistics(store)

	hasher, err := blockheader.New(algorithm, counted, blockheader.DefaultFullForkVersion, logger.New("blockheader"))
	require.Nil(t, err, "hasher")

	return &runner{
		hasher:   hasher,
		cache:    counted,
		workers:  4,
		useCache: true,
	}
}
