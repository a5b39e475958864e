// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

// Package diffmatchpatch offers robust algorithms to perform the
// operations required for synchronizing plain text.
//
// All offsets, lengths and locations handled by the package are counted in
// Unicode code points. Only the delta format converts lengths to a
// LengthUnit of the caller's choosing.
package diffmatchpatch

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// LengthUnit selects how lengths are counted in the delta format.
type LengthUnit int

const (
	// LengthUnitUTF16 counts UTF-16 code units, so characters outside the
	// Basic Multilingual Plane count as two. This is what the JavaScript,
	// Java and C# ports emit.
	LengthUnitUTF16 LengthUnit = iota
	// LengthUnitUnicodeScalar counts Unicode scalar values (runes).
	LengthUnitUnicodeScalar
)

func (u LengthUnit) String() string {
	switch u {
	case LengthUnitUTF16:
		return "utf16"
	case LengthUnitUnicodeScalar:
		return "scalar"
	}
	return fmt.Sprintf("LengthUnit(%d)", int(u))
}

// ParseLengthUnit converts "utf16" or "scalar" into a LengthUnit.
func ParseLengthUnit(s string) (LengthUnit, error) {
	switch s {
	case "utf16", "utf-16", "":
		return LengthUnitUTF16, nil
	case "scalar", "unicode", "rune":
		return LengthUnitUnicodeScalar, nil
	}
	return LengthUnitUTF16, fmt.Errorf("unknown length unit %q", s)
}

// DiffMatchPatch holds the configuration for diff-match-patch operations.
// None of the operations modify it, so one value can be shared between
// goroutines.
type DiffMatchPatch struct {
	// Time budget for computing a diff before giving up (0 for infinity).
	DiffTimeout time.Duration `validate:"gte=0"`
	// Cost of an empty edit operation in terms of edit characters.
	DiffEditCost int `validate:"gte=0"`
	// How far to search for a match (0 = exact location, 1000+ = broad match).
	// A match this many characters away from the expected location will add
	// 1.0 to the score (0.0 is a perfect match).
	MatchDistance int `validate:"gte=0"`
	// When deleting a large block of text (over ~64 characters), how close do
	// the contents have to be to match the expected contents. (0.0 = perfection,
	// 1.0 = very loose).  Note that MatchThreshold controls how closely the
	// end points of a delete need to match.
	PatchDeleteThreshold float64 `validate:"gte=0,lte=1"`
	// Chunk size for context length.
	PatchMargin int `validate:"gte=1"`
	// The longest pattern the bitap matcher can index.
	MatchMaxBits int `validate:"gte=1,lte=63"`
	// At what point is no match declared (0.0 = perfection, 1.0 = very loose).
	MatchThreshold float64 `validate:"gte=0,lte=1"`
	// Unit used for lengths by DiffToDelta and DiffFromDelta.
	DeltaLengthUnit LengthUnit `validate:"oneof=0 1"`
}

// New creates a new DiffMatchPatch object with default parameters.
func New() *DiffMatchPatch {
	// Defaults.
	return &DiffMatchPatch{
		DiffTimeout:          time.Second,
		DiffEditCost:         4,
		MatchThreshold:       0.5,
		MatchDistance:        1000,
		PatchDeleteThreshold: 0.5,
		PatchMargin:          4,
		MatchMaxBits:         32,
		DeltaLengthUnit:      LengthUnitUTF16,
	}
}

var validate = validator.New()

// Validate reports whether every tunable is within its allowed range.
// MatchMaxBits must also leave room for two context margins.
func (dmp *DiffMatchPatch) Validate() error {
	if err := validate.Struct(dmp); err != nil {
		return fmt.Errorf("invalid diffmatchpatch configuration: %w", err)
	}
	if 2*dmp.PatchMargin >= dmp.MatchMaxBits {
		return fmt.Errorf("invalid diffmatchpatch configuration: PatchMargin %d leaves no room in MatchMaxBits %d", dmp.PatchMargin, dmp.MatchMaxBits)
	}
	return nil
}
