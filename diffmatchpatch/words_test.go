// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	type TestCase struct {
		Name string

		Text string

		Expected []string
	}

	for i, tc := range []TestCase{
		{"Empty", "", nil},
		{"No newline", "alpha", []string{"alpha"}},
		{"Trailing newline", "alpha\nbeta\n", []string{"alpha\n", "beta\n"}},
		{"Unterminated last line", "alpha\n\nbeta", []string{"alpha\n", "\n", "beta"}},
	} {
		assert.Equal(t, tc.Expected, splitLines(tc.Text), fmt.Sprintf("Test case #%d, %s", i, tc.Name))
	}
}

func TestSplitWords(t *testing.T) {
	type TestCase struct {
		Name string

		Text string

		Expected []string
	}

	for i, tc := range []TestCase{
		{"Empty", "", nil},
		{"Spaces", "alpha  beta", []string{"alpha", "  ", "beta"}},
		{"Punctuation", "Hello, world!", []string{"Hello", ",", " ", "world", "!"}},
		{"Contraction", "can't stop", []string{"can't", " ", "stop"}},
	} {
		assert.Equal(t, tc.Expected, splitWords(tc.Text), fmt.Sprintf("Test case #%d, %s", i, tc.Name))
	}
}

func TestDiffWordsToChars(t *testing.T) {
	type TestCase struct {
		Text1 string
		Text2 string

		ExpectedChars1 string
		ExpectedChars2 string
		ExpectedWords  []string
	}

	dmp := New()

	for i, tc := range []TestCase{
		{"alpha beta alpha", "beta alpha beta", "\u0001\u0002\u0003\u0002\u0001", "\u0003\u0002\u0001\u0002\u0003", []string{"", "alpha", " ", "beta"}},
		{"", "alpha beta", "", "\u0001\u0002\u0003", []string{"", "alpha", " ", "beta"}},
		{"a", "b", "\u0001", "\u0002", []string{"", "a", "b"}},
	} {
		actualChars1, actualChars2, actualWords := dmp.DiffWordsToChars(tc.Text1, tc.Text2)
		assert.Equal(t, tc.ExpectedChars1, actualChars1, fmt.Sprintf("Test case #%d, %#v", i, tc))
		assert.Equal(t, tc.ExpectedChars2, actualChars2, fmt.Sprintf("Test case #%d, %#v", i, tc))
		assert.Equal(t, tc.ExpectedWords, actualWords, fmt.Sprintf("Test case #%d, %#v", i, tc))
	}
}

func TestDiffWordMode(t *testing.T) {
	dmp := New()

	runes1, runes2, tokens := dmp.DiffWordsToRunes("betty bought some butter ", "betty sought some butter")
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(runes1, runes2, false), tokens)

	assert.Equal(t, []Diff{
		{DiffEqual, "betty "},
		{DiffDelete, "bought"},
		{DiffInsert, "sought"},
		{DiffEqual, " some butter"},
		{DiffDelete, " "},
	}, diffs)
}
