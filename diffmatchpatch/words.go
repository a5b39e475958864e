// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// splitLines cuts text after every newline. A final line without a newline
// is kept as is.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// splitWords cuts text on Unicode word boundaries (UAX #29). Runs of
// horizontal whitespace and each punctuation mark become tokens of their own.
func splitWords(text string) []string {
	var tokens []string
	iter := words.FromString(text)
	for iter.Next() {
		tokens = append(tokens, iter.Value())
	}
	return tokens
}

// DiffWordsToChars splits two texts into a list of words, and encodes each
// word as a single rune. It returns the encoded texts and the word list,
// which DiffCharsToLines uses to expand a diff of the encoded texts.
func (dmp *DiffMatchPatch) DiffWordsToChars(text1, text2 string) (string, string, []string) {
	chars1, chars2, wordArray := dmp.DiffWordsToRunes(text1, text2)
	return string(chars1), string(chars2), wordArray
}

// DiffWordsToRunes splits two texts into a list of runes, one per word.
func (dmp *DiffMatchPatch) DiffWordsToRunes(text1, text2 string) ([]rune, []rune, []string) {
	return diffTokensToRunes(text1, text2, splitWords)
}
