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
	"net/url"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// unescaper unescapes selected chars for compatibility with JavaScript's encodeURI.
// In speed critical applications this could be dropped since the
// receiving application will certainly decode these fine.
// Note that this function is case-sensitive.  Thus "%3f" would not be
// unescaped.  But this is ok because it is only called with the output of
// url.QueryEscape which returns uppercase hex.
//
// Example: "%3F" -> "?", "%24" -> "$", etc.
var unescaper = strings.NewReplacer(
	"%21", "!", "%7E", "~", "%27", "'",
	"%28", "(", "%29", ")", "%3B", ";",
	"%2F", "/", "%3F", "?", "%3A", ":",
	"%40", "@", "%26", "&", "%3D", "=",
	"%2B", "+", "%24", "$", "%2C", ",", "%23", "#", "%2A", "*")

// encodeURI percent-encodes text the way the delta and patch formats expect:
// letters, digits, space and -_.!~*'();/?:@&=+$,# stay literal.
func encodeURI(text string) string {
	return unescaper.Replace(strings.Replace(url.QueryEscape(text), "+", " ", -1))
}

// decodeURI reverses encodeURI. A literal "+" is data, not an escaped space.
func decodeURI(text string) (string, error) {
	return url.QueryUnescape(strings.Replace(text, "+", "%2B", -1))
}

// runeLen is the number of code points in s.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// unitLen is the length of s measured in unit.
func unitLen(s string, unit LengthUnit) int {
	if unit != LengthUnitUTF16 {
		return utf8.RuneCountInString(s)
	}
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// toUnits splits s into length units. In UTF-16 mode characters outside the
// Basic Multilingual Plane become two surrogate values.
func toUnits(s string, unit LengthUnit) []rune {
	runes := []rune(s)
	if unit != LengthUnitUTF16 {
		return runes
	}
	units := make([]rune, 0, len(runes))
	for _, r := range runes {
		units = appendUnit(units, r)
	}
	return units
}

func appendUnit(units []rune, r rune) []rune {
	if r1, r2 := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
		return append(units, r1, r2)
	}
	return append(units, r)
}

// fromUnits joins length units back into a string. It fails on a surrogate
// that is not part of a well-formed pair.
func fromUnits(units []rune) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(units); i++ {
		r := units[i]
		if utf16.IsSurrogate(r) {
			if i+1 == len(units) {
				return "", false
			}
			r = utf16.DecodeRune(r, units[i+1])
			if r == unicode.ReplacementChar {
				return "", false
			}
			i++
		}
		_, _ = b.WriteRune(r)
	}
	return b.String(), true
}

func isHighSurrogate(r rune) bool {
	return r >= 0xd800 && r < 0xdc00
}

// decodeInsert decodes the payload of a "+" delta token into length units.
// In UTF-16 mode a lone surrogate encoded as a three byte sequence
// (ED A0..BF 80..BF) is accepted so that a pair split across tokens can be
// put back together.
func decodeInsert(param string, unit LengthUnit) ([]rune, error) {
	raw, err := decodeURI(param)
	if err != nil {
		return nil, err
	}
	if unit != LengthUnitUTF16 {
		if !utf8.ValidString(raw) {
			return nil, fmt.Errorf("invalid UTF-8 token: %q", raw)
		}
		return []rune(raw), nil
	}

	units := make([]rune, 0, len(raw))
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRuneInString(raw[i:])
		if r == utf8.RuneError && size == 1 {
			s, ok := decodeSurrogate(raw[i:])
			if !ok {
				return nil, fmt.Errorf("invalid UTF-8 token: %q", raw)
			}
			units = append(units, s)
			i += 3
			continue
		}
		units = appendUnit(units, r)
		i += size
	}
	return units, nil
}

func decodeSurrogate(s string) (rune, bool) {
	if len(s) < 3 || s[0] != 0xed || s[1] < 0xa0 || s[1] > 0xbf || s[2] < 0x80 || s[2] > 0xbf {
		return 0, false
	}
	return rune(s[0]&0x0f)<<12 | rune(s[1]&0x3f)<<6 | rune(s[2]&0x3f), true
}

// runesIndexOf returns the index of pattern in target, starting at target[i].
func runesIndexOf(target, pattern []rune, i int) int {
	if i > len(target)-1 {
		return -1
	}
	if i <= 0 {
		return runesIndex(target, pattern)
	}
	ind := runesIndex(target[i:], pattern)
	if ind == -1 {
		return -1
	}
	return ind + i
}

// runesLastIndexOf returns the last index of pattern in target that starts
// at or before target[i].
func runesLastIndexOf(target, pattern []rune, i int) int {
	if i < 0 {
		return -1
	}
	for j := min(i, len(target)-len(pattern)); j >= 0; j-- {
		if runesEqual(target[j:j+len(pattern)], pattern) {
			return j
		}
	}
	return -1
}

func runesEqual(r1, r2 []rune) bool {
	if len(r1) != len(r2) {
		return false
	}
	for i, c := range r1 {
		if c != r2[i] {
			return false
		}
	}
	return true
}

// The equivalent of strings.Index for rune slices.
func runesIndex(r1, r2 []rune) int {
	last := len(r1) - len(r2)
	for i := 0; i <= last; i++ {
		if runesEqual(r1[i:i+len(r2)], r2) {
			return i
		}
	}
	return -1
}

// concatRunes joins parts into a freshly allocated slice.
func concatRunes(parts ...[]rune) []rune {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]rune, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
