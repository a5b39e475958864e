// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import "strings"

// Lines and words are hashed to slots, and each slot is written as a single
// rune so the ordinary character diff can run over the hashed text. The
// surrogate block is skipped because those code points cannot be stored in
// a Go string.
const (
	runeSkipStart = 0xd800
	runeSkipEnd   = 0xdfff + 1
	runeMax       = 0x110000 // next invalid code point

	// maxSlots is the number of distinct tokens one hashing pass can hold.
	maxSlots = runeMax - (runeSkipEnd - runeSkipStart)
)

// slotToRune maps a hash slot to the rune that stands for it.
func slotToRune(i int) rune {
	if i >= runeSkipStart {
		i += runeSkipEnd - runeSkipStart
	}
	return rune(i)
}

// runeToSlot is the inverse of slotToRune.
func runeToSlot(r rune) int {
	i := int(r)
	if i >= runeSkipEnd {
		i -= runeSkipEnd - runeSkipStart
	}
	return i
}

// tokenHasher assigns a slot to every distinct token. Slot zero is reserved
// so that no token is ever encoded as NUL.
type tokenHasher struct {
	tokens []string
	hash   map[string]int
}

func newTokenHasher() *tokenHasher {
	return &tokenHasher{
		tokens: []string{""},
		hash:   map[string]int{},
	}
}

// encode hashes tokens to runes. Once limit slots are in use the remaining
// tokens are folded into one final token.
func (h *tokenHasher) encode(tokens []string, limit int) []rune {
	runes := make([]rune, 0, len(tokens))
	for i, token := range tokens {
		if len(h.tokens) == limit {
			token = strings.Join(tokens[i:], "")
			runes = append(runes, h.slot(token))
			break
		}
		runes = append(runes, h.slot(token))
	}
	return runes
}

func (h *tokenHasher) slot(token string) rune {
	if i, ok := h.hash[token]; ok {
		return slotToRune(i)
	}
	h.tokens = append(h.tokens, token)
	i := len(h.tokens) - 1
	h.hash[token] = i
	return slotToRune(i)
}
