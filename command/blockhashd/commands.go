// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/blockheader"
	"github.com/bitmark-inc/blockhashd/blockrecord"
	"github.com/bitmark-inc/blockhashd/digestcache"
	"github.com/bitmark-inc/blockhashd/fault"
	"github.com/bitmark-inc/blockhashd/merkle"
)

// runner - state shared by the digest commands
type runner struct {
	hasher   *blockheader.Hasher
	cache    *digestcache.Counted
	workers  int
	useCache bool
}

type headerResult struct {
	Header      *blockrecord.Header `json:"header"`
	Legacy      bool                `json:"legacy"`
	Fingerprint string              `json:"fingerprint,omitempty"`
	Digest      string              `json:"digest"`
}

type merkleResult struct {
	Root      string   `json:"root"`
	Mutated   bool     `json:"mutated"`
	LeafCount int      `json:"leafCount"`
	Tree      []string `json:"tree"`
}

type branchResult struct {
	Index  int      `json:"index"`
	Leaf   string   `json:"leaf"`
	Root   string   `json:"root"`
	Branch []string `json:"branch"`
}

type verifyResult struct {
	Leaf  string `json:"leaf"`
	Index string `json:"index"`
	Root  string `json:"root"`
}

type checkResult struct {
	Digest        string `json:"digest"`
	PreviousBlock string `json:"previousBlock"`
	MerkleRoot    string `json:"merkleRoot"`
	LeafCount     int    `json:"leafCount"`
}

type batchResult struct {
	Digests    []string           `json:"digests"`
	Statistics *digestcache.Stats `json:"statistics,omitempty"`
}

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--no-cache] --config-file=FILE [command [arguments...]]\n"+
			"where commands are:\n"+
			"  help                         - display this message\n"+
			"  version                      - display the program version\n"+
			"  header HEX...                - identity digest of packed 80 byte headers\n"+
			"  merkle TXID...               - merkle root and tree of the transaction digests\n"+
			"  branch INDEX TXID...         - merkle branch of the leaf at INDEX\n"+
			"  verify TXID INDEX DIGEST...  - merkle root from a leaf and its branch, INDEX may be \"none\"\n"+
			"  check HEX PREVIOUS TXID...   - validate header linkage and merkle root, PREVIOUS may be \"-\"\n"+
			"  batch FILE                   - identity digests of a file of hex headers, one per line\n",
			program)

	default:
		return false // continue processing
	}

	return true
}

// digest command handler
//
// return false if the command was not recognised
func processCommand(r *runner, arguments []string) bool {

	command := arguments[0]
	arguments = arguments[1:]

	var result interface{}
	var err error

	switch command {
	case "header", "hdr":
		result, err = r.headers(arguments)

	case "merkle", "m":
		result, err = r.merkle(arguments)

	case "branch", "br":
		result, err = r.branch(arguments)

	case "verify", "vfy":
		result, err = r.verify(arguments)

	case "check", "c":
		result, err = r.check(arguments)

	case "batch", "b":
		if 1 != len(arguments) {
			exitwithstatus.Message("%s: %s", command, fault.ErrWrongNumberOfArgument)
		}
		result, err = r.batchFile(arguments[0])

	default:
		return false
	}

	if nil != err {
		exitwithstatus.Message("%s: error: %s", command, err)
	}
	printJson("", result)
	return true
}

// identity digest of each hex encoded header
func (r *runner) headers(arguments []string) ([]headerResult, error) {
	if 0 == len(arguments) {
		return nil, fault.ErrMissingParameters
	}

	results := make([]headerResult, 0, len(arguments))
	for _, s := range arguments {
		header, err := parseHeader(s)
		if nil != err {
			return nil, err
		}

		result := headerResult{
			Header: header,
			Legacy: r.hasher.IsLegacy(header.Version),
			Digest: r.hasher.Digest(header, r.useCache).String(),
		}
		if !result.Legacy {
			result.Fingerprint = header.Fingerprint().String()
		}
		results = append(results, result)
	}
	return results, nil
}

// root and complete tree for a list of transaction digests
func (r *runner) merkle(arguments []string) (*merkleResult, error) {
	txIds, err := parseDigests(arguments)
	if nil != err {
		return nil, err
	}

	tree := merkle.FullMerkleTree(txIds)
	return &merkleResult{
		Root:      tree.Root().String(),
		Mutated:   tree.Mutated(),
		LeafCount: tree.LeafCount(),
		Tree:      digestStrings(tree.Nodes()),
	}, nil
}

// branch for one leaf, the root is included for use with verify
func (r *runner) branch(arguments []string) (*branchResult, error) {
	if len(arguments) < 2 {
		return nil, fault.ErrWrongNumberOfArgument
	}

	index, err := strconv.Atoi(arguments[0])
	if nil != err {
		return nil, err
	}
	txIds, err := parseDigests(arguments[1:])
	if nil != err {
		return nil, err
	}

	tree := merkle.FullMerkleTree(txIds)
	branch, err := tree.Branch(index)
	if nil != err {
		return nil, err
	}

	return &branchResult{
		Index:  index,
		Leaf:   txIds[index].String(),
		Root:   tree.Root().String(),
		Branch: digestStrings(branch),
	}, nil
}

// compute the root implied by a leaf and its branch
func (r *runner) verify(arguments []string) (*verifyResult, error) {
	if len(arguments) < 2 {
		return nil, fault.ErrWrongNumberOfArgument
	}

	leaf, err := parseDigest(arguments[0])
	if nil != err {
		return nil, err
	}

	l := merkle.NoLeaf
	if "none" != strings.ToLower(arguments[1]) && "-" != arguments[1] {
		n, err := strconv.Atoi(arguments[1])
		if nil != err {
			return nil, err
		}
		l, err = merkle.Index(n)
		if nil != err {
			return nil, err
		}
	}

	branch, err := parseDigests(arguments[2:])
	if nil != err {
		return nil, err
	}

	root, err := merkle.VerifyBranch(leaf, branch, l)
	if nil != err {
		return nil, err
	}

	index := "none"
	if n, ok := l.Get(); ok {
		index = strconv.Itoa(n)
	}
	return &verifyResult{
		Leaf:  leaf.String(),
		Index: index,
		Root:  root.String(),
	}, nil
}

// validate a header against its previous block and transaction digests
//
// a mutated transaction list is rejected even when its root matches
func (r *runner) check(arguments []string) (*checkResult, error) {
	if len(arguments) < 3 {
		return nil, fault.ErrWrongNumberOfArgument
	}

	header, err := parseHeader(arguments[0])
	if nil != err {
		return nil, err
	}

	if "-" != arguments[1] {
		previous, err := parseDigest(arguments[1])
		if nil != err {
			return nil, err
		}
		err = blockrecord.ValidBlockLinkage(previous, header.PreviousBlock)
		if nil != err {
			return nil, err
		}
	}

	txIds, err := parseDigests(arguments[2:])
	if nil != err {
		return nil, err
	}
	err = blockrecord.CheckMerkleRoot(header, txIds)
	if nil != err {
		return nil, err
	}

	return &checkResult{
		Digest:        r.hasher.Digest(header, r.useCache).String(),
		PreviousBlock: header.PreviousBlock.String(),
		MerkleRoot:    header.MerkleRoot.String(),
		LeafCount:     len(txIds),
	}, nil
}

// identity digests of a file of headers
func (r *runner) batchFile(fileName string) (*batchResult, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	headers := make([]*blockrecord.Header, 0, 100)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		header, err := parseHeader(line)
		if nil != err {
			return nil, err
		}
		headers = append(headers, header)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	return r.batch(headers)
}

func (r *runner) batch(headers []*blockrecord.Header) (*batchResult, error) {
	digests, err := r.hasher.DigestAll(headers, r.useCache, r.workers)
	if nil != err {
		return nil, err
	}

	result := &batchResult{
		Digests: digestStrings(digests),
	}
	if nil != r.cache {
		stats := r.cache.Statistics()
		result.Statistics = &stats
	}
	return result, nil
}

// decode a hex packed header
func parseHeader(s string) (*blockrecord.Header, error) {
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	if blockrecord.TotalHeaderSize != len(buffer) {
		return nil, fault.ErrInvalidHeaderLength
	}
	header, _, err := blockrecord.ExtractHeader(buffer)
	return header, err
}

// decode a big endian hex digest
func parseDigest(s string) (blockdigest.Digest, error) {
	var d blockdigest.Digest
	if hex.EncodedLen(blockdigest.Length) != len(s) {
		return d, fault.ErrInvalidDigestLength
	}
	n, err := fmt.Sscan(s, &d)
	if nil != err {
		return d, err
	}
	if 1 != n {
		return d, fault.ErrInvalidDigestLength
	}
	return d, nil
}

func parseDigests(arguments []string) ([]blockdigest.Digest, error) {
	digests := make([]blockdigest.Digest, len(arguments))
	for i, s := range arguments {
		d, err := parseDigest(s)
		if nil != err {
			return nil, err
		}
		digests[i] = d
	}
	return digests, nil
}

func digestStrings(digests []blockdigest.Digest) []string {
	s := make([]string, len(digests))
	for i, d := range digests {
		s[i] = d.String()
	}
	return s
}
