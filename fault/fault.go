// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ValidationError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrEmptyTree             = InvalidError("merkle tree is empty")
	ErrIndexOutOfRange       = InvalidError("index out of range")
	ErrInvalidCharacter      = InvalidError("invalid character")
	ErrInvalidAlgorithm      = InvalidError("invalid proof-of-work algorithm")
	ErrInvalidCacheExpiry    = InvalidError("invalid cache expiry")
	ErrInvalidCacheSize      = InvalidError("invalid cache size")
	ErrInvalidCacheType      = InvalidError("invalid cache type")
	ErrInvalidConfiguration  = InvalidError("configuration must return a table")
	ErrInvalidDigestLength   = LengthError("invalid digest length")
	ErrInvalidForkVersion    = InvalidError("invalid fork version")
	ErrInvalidHeaderLength   = LengthError("invalid block header length")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidWorkerCount    = InvalidError("invalid worker count")
	ErrLeafCountMismatch     = InvalidError("leaf count does not match tree")
	ErrMerkleRootMismatch    = ValidationError("merkle root does not match header")
	ErrMerkleTreeMutated     = ValidationError("merkle tree is mutated")
	ErrMissingParameters     = InvalidError("missing parameters")
	ErrPreviousBlockMismatch = ValidationError("previous block digest does not match")
	ErrUnknownCommand        = NotFoundError("unknown command")
	ErrWrongNumberOfArgument = InvalidError("wrong number of arguments")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e ValidationError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrValidation(e error) bool { _, ok := e.(ValidationError); return ok }
