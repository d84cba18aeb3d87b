// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digestcache

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/blockhashd/blockdigest"
	"github.com/bitmark-inc/blockhashd/blockrecord"
	"github.com/bitmark-inc/blockhashd/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
	digestPrefix     = 'P'
)

// LevelDB - persistent store so digests survive a restart
type LevelDB struct {
	log *logger.L
	db  *leveldb.DB
}

// NewLevelDB - open or create the database in directory
func NewLevelDB(directory string, log *logger.L) (*LevelDB, error) {
	if "" == directory {
		return nil, fault.ErrMissingParameters
	}
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}
	db, err := leveldb.OpenFile(directory, opt)
	if nil != err {
		return nil, err
	}
	return newLevelDB(db, log)
}

// open on a caller supplied storage, e.g. memory for testing
func newLevelDBWithStorage(storage ldb_storage.Storage, log *logger.L) (*LevelDB, error) {
	db, err := leveldb.Open(storage, nil)
	if nil != err {
		return nil, err
	}
	return newLevelDB(db, log)
}

func newLevelDB(db *leveldb.DB, log *logger.L) (*LevelDB, error) {

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		// database was empty so tag as current version
		currentVersion := make([]byte, 4)
		binary.BigEndian.PutUint32(currentVersion, currentDBVersion)
		err = db.Put(versionKey, currentVersion, nil)
		if nil != err {
			db.Close()
			return nil, err
		}
	} else if nil != err {
		db.Close()
		return nil, err
	} else if 4 != len(versionValue) || currentDBVersion != binary.BigEndian.Uint32(versionValue) {
		db.Close()
		return nil, fmt.Errorf("incompatible digest cache version: %x", versionValue)
	}

	log.Info("digest database open")
	return &LevelDB{log: log, db: db}, nil
}

func dbKey(key blockrecord.Fingerprint) []byte {
	k := make([]byte, 1+len(key))
	k[0] = digestPrefix
	copy(k[1:], key[:])
	return k
}

// Get - lookup a digest
//
// read errors are logged and reported as a miss
func (c *LevelDB) Get(key blockrecord.Fingerprint) (blockdigest.Digest, bool) {
	value, err := c.db.Get(dbKey(key), nil)
	if leveldb.ErrNotFound == err {
		return blockdigest.Digest{}, false
	}
	if nil != err {
		c.log.Errorf("get: %s  error: %s", key, err)
		return blockdigest.Digest{}, false
	}

	var digest blockdigest.Digest
	err = blockdigest.DigestFromBytes(&digest, value)
	if nil != err {
		c.log.Errorf("get: %s  corrupt value: %x", key, value)
		return blockdigest.Digest{}, false
	}
	return digest, true
}

// Put - insert or overwrite a digest
func (c *LevelDB) Put(key blockrecord.Fingerprint, digest blockdigest.Digest) {
	err := c.db.Put(dbKey(key), digest[:], nil)
	if nil != err {
		c.log.Errorf("put: %s  error: %s", key, err)
	}
}

// Len - number of stored digests
func (c *LevelDB) Len() int {
	iter := c.db.NewIterator(nil, nil)
	defer iter.Release()

	n := 0
	for iter.Next() {
		if digestPrefix == iter.Key()[0] {
			n += 1
		}
	}
	return n
}

// Close - close the database
func (c *LevelDB) Close() error {
	c.log.Info("digest database close")
	return c.db.Close()
}
