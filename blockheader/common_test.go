// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader_test

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockhashd/blockrecord"
)

const (
	testingDirName = "testing"
	logCategory    = "blockheader"
)

// remove all files created by test
func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// configure for testing
func setup() *logger.L {
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
	return logger.New(logCategory)
}

// post test cleanup
func teardown() {
	logger.Finalise()
	removeFiles()
}

// bitcoin block 125552
const leBlock125552 = "01000000" +
	"81cd02ab7e569e8bcd9317e2fe99f2de44d49ab2b8851ba4a308000000000000" +
	"e320b6c2fffc8d750423db8b1eb942ae710e951ed797f7affc8892b0f1fc122b" +
	"c7f5d74d" + "f2b9441a" + "42a14695"

const beDigest125552 = "00000000000000001e8d6829a8a21adc5d38d0a473b144b6765798e61f98bd1d"

func block125552(t *testing.T) *blockrecord.Header {
	b, err := hex.DecodeString(leBlock125552)
	if nil != err {
		t.Fatalf("hex decode error: %s", err)
	}
	header, _, err := blockrecord.ExtractHeader(b)
	if nil != err {
		t.Fatalf("extract header error: %s", err)
	}
	return header
}

// same header with another version
func withVersion(header *blockrecord.Header, version int32) *blockrecord.Header {
	h := *header
	h.Version = version
	return &h
}
