// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digestcache

import (
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/blockrecord"
)

const (
	testingDirName = "testing"
	logCategory    = "digestcache"
)

func setupTestLogger() *logger.L {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
	return logger.New(logCategory)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func makeKey(n byte) blockrecord.Fingerprint {
	header := &blockrecord.Header{Version: 4, Nonce: blockrecord.NonceType(n)}
	return header.Fingerprint()
}

func makeDigest(n byte) blockdigest.Digest {
	return blockdigest.DoubleSHA256([]byte{n})
}
