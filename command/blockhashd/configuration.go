// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockhashd/blockheader"
	"github.com/bitmark-inc/blockhashd/configuration"
	"github.com/bitmark-inc/blockhashd/digestcache"
	"github.com/bitmark-inc/blockhashd/fault"
	"github.com/bitmark-inc/blockhashd/powdigest"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory  = "."
	defaultCacheDirectory = "digests.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "blockhashd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string                    `gluamapper:"data_directory" json:"data_directory"`
	ForkVersion   uint32                    `gluamapper:"fork_version" json:"fork_version"`
	Algorithm     string                    `gluamapper:"algorithm" json:"algorithm"`
	Workers       int                       `gluamapper:"workers" json:"workers"`
	Cache         digestcache.Configuration `gluamapper:"cache" json:"cache"`
	Logging       logger.Configuration      `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// the parser merges into this map
	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		ForkVersion:   blockheader.DefaultFullForkVersion,
		Algorithm:     powdigest.Scrypt,
		Workers:       runtime.NumCPU(),

		Cache: digestcache.Configuration{
			Type:      digestcache.TypeLRU,
			Size:      digestcache.DefaultSize,
			Directory: defaultCacheDirectory,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if options.ForkVersion < 1 || options.ForkVersion > blockheader.MaximumModernVersion {
		return nil, fault.ErrInvalidForkVersion
	}

	options.Algorithm = strings.ToLower(options.Algorithm)
	if _, err := powdigest.New(options.Algorithm); nil != err {
		return nil, err
	}

	if options.Workers <= 0 {
		return nil, fault.ErrInvalidWorkerCount
	}

	options.Cache.Type = strings.ToLower(options.Cache.Type)
	switch options.Cache.Type {
	case digestcache.TypeNone, digestcache.TypeLRU, digestcache.TypeExpiring, digestcache.TypeLevelDB:
	default:
		return nil, fault.ErrInvalidCacheType
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Cache.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// fail if the logging directory does not exist
	if fileInfo, err := os.Stat(options.Logging.Directory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.Logging.Directory)
	}

	return options, nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
