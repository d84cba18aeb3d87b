// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/blockhashd/blockheader"
	"github.com/bitmark-inc/blockhashd/digestcache"
	"github.com/bitmark-inc/blockhashd/fault"
	"github.com/bitmark-inc/blockhashd/powdigest"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "no-cache", HasArg: getoptions.NO_ARGUMENT, Short: 'n'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		processSetupCommand(program, []string{"help"})
		return
	}

	if processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	verbose := len(options["verbose"]) > 0
	if verbose {
		printJson("configuration", theConfiguration)
	}

	algorithm, err := powdigest.New(theConfiguration.Algorithm)
	if nil != err {
		log.Criticalf("algorithm error: %s", err)
		exitwithstatus.Message("algorithm error: %s", err)
	}

	counted, err := digestcache.New(theConfiguration.Cache, logger.New("digestcache"))
	if nil != err {
		log.Criticalf("digest cache error: %s", err)
		exitwithstatus.Message("digest cache error: %s", err)
	}

	// type "none" leaves the hasher without a cache so it skips fingerprints
	var cache digestcache.Cache
	if nil != counted {
		cache = counted
		defer counted.Close()
	}

	hasher, err := blockheader.New(algorithm, cache, theConfiguration.ForkVersion, logger.New("blockheader"))
	if nil != err {
		log.Criticalf("blockheader error: %s", err)
		exitwithstatus.Message("blockheader error: %s", err)
	}

	r := &runner{
		hasher:   hasher,
		cache:    counted,
		workers:  theConfiguration.Workers,
		useCache: 0 == len(options["no-cache"]),
	}

	if !processCommand(r, arguments) {
		exitwithstatus.Message("%s: %s: %q", program, fault.ErrUnknownCommand, arguments[0])
	}

	if verbose && nil != counted {
		printJson("statistics", counted.Statistics())
	}
}
