// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/blockhashd/digestcache"
	"github.com/bitmark-inc/blockhashd/fault"
	"github.com/bitmark-inc/blockhashd/powdigest"
)

// create a data directory with a log directory and configuration file
func writeConfiguration(t *testing.T, content string) (string, func()) {
	directory, err := ioutil.TempDir("", "blockhashd")
	require.Nil(t, err, "temp dir")

	err = os.Mkdir(filepath.Join(directory, defaultLogDirectory), 0700)
	require.Nil(t, err, "log dir")

	fileName := filepath.Join(directory, "blockhashd.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write configuration")

	return fileName, func() { _ = os.RemoveAll(directory) }
}

func TestConfigurationDefaults(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, "return {}\n")
	defer cleanup()

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	directory := filepath.Dir(fileName)

	assert.Equal(t, uint32(8), c.ForkVersion, "fork version")
	assert.Equal(t, powdigest.Scrypt, c.Algorithm, "algorithm")
	assert.True(t, c.Workers > 0, "workers")
	assert.Equal(t, digestcache.TypeLRU, c.Cache.Type, "cache type")
	assert.Equal(t, digestcache.DefaultSize, c.Cache.Size, "cache size")
	assert.Equal(t, filepath.Join(directory, defaultCacheDirectory), c.Cache.Directory, "cache directory")
	assert.Equal(t, filepath.Join(directory, defaultLogDirectory), c.Logging.Directory, "log directory")
}

func TestConfigurationSample(t *testing.T) {
	sample, err := ioutil.ReadFile("blockhashd.conf.sample")
	require.Nil(t, err, "read sample")

	fileName, cleanup := writeConfiguration(t, string(sample))
	defer cleanup()

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, uint32(8), c.ForkVersion, "fork version")
	assert.Equal(t, 4, c.Workers, "workers")
	assert.Equal(t, "30m", c.Cache.Expiry, "cache expiry")
	assert.Equal(t, "info", c.Logging.Levels["main"], "main log level")
}

func TestConfigurationOverrides(t *testing.T) {
	content := `
local M = {}
M.fork_version = 12
M.algorithm = "ARGON2D"
M.workers = 2
M.cache = {
    type = "Expiring",
    expiry = "5m",
}
return M
`
	fileName, cleanup := writeConfiguration(t, content)
	defer cleanup()

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, uint32(12), c.ForkVersion, "fork version")
	assert.Equal(t, powdigest.Argon2d, c.Algorithm, "algorithm")
	assert.Equal(t, 2, c.Workers, "workers")
	assert.Equal(t, digestcache.TypeExpiring, c.Cache.Type, "cache type")
	assert.Equal(t, "5m", c.Cache.Expiry, "cache expiry")
}

func TestConfigurationErrors(t *testing.T) {
	items := []struct {
		content string
		err     error
	}{
		{"return { fork_version = 0 }\n", fault.ErrInvalidForkVersion},
		{"return { fork_version = 16 }\n", fault.ErrInvalidForkVersion},
		{"return { algorithm = \"sha3\" }\n", fault.ErrInvalidAlgorithm},
		{"return { workers = 0 }\n", fault.ErrInvalidWorkerCount},
		{"return { cache = { type = \"redis\" } }\n", fault.ErrInvalidCacheType},
		{"return 1\n", fault.ErrInvalidConfiguration},
	}

	for i, item := range items {
		fileName, cleanup := writeConfiguration(t, item.content)
		_, err := getConfiguration(fileName)
		cleanup()
		assert.Equal(t, item.err, err, "%d: %q", i, item.content)
	}
}
