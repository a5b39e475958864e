// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDelta is matched by errors.Is for any delta that does not
	// follow the delta grammar.
	ErrMalformedDelta = errors.New("malformed delta")
	// ErrMalformedPatch is matched by errors.Is for any patch text that
	// does not follow the patch grammar.
	ErrMalformedPatch = errors.New("malformed patch")
	// ErrLengthMismatch is matched by errors.Is when a delta does not cover
	// exactly the text it is decoded against.
	ErrLengthMismatch = errors.New("delta length mismatch")
	// ErrSplitSurrogate is reported when a UTF-16 delta cuts a surrogate
	// pair in a way that cannot be reassembled.
	ErrSplitSurrogate = errors.New("delta splits a surrogate pair")
)

// ParseError describes malformed serialized input.
type ParseError struct {
	// Kind is ErrMalformedDelta or ErrMalformedPatch.
	Kind error
	// Token is the offending delta token or patch line.
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func deltaError(token string, err error) error {
	return &ParseError{Kind: ErrMalformedDelta, Token: token, Err: err}
}

func patchError(line string, err error) error {
	return &ParseError{Kind: ErrMalformedPatch, Token: line, Err: err}
}

// LengthMismatchError is returned when the lengths named by a delta do not
// add up to the length of the source text.
type LengthMismatchError struct {
	DeltaLength int
	TextLength  int
	Unit        LengthUnit
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("delta length (%d) is different from source text length (%d)", e.DeltaLength, e.TextLength)
}

func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}
