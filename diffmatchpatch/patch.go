// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Patch represents one patch operation.
type Patch struct {
	Diffs   []Diff
	Start1  int
	Start2  int
	Length1 int
	Length2 int
}

// String emulates GNU diff's format.
// Header: @@ -382,8 +481,9 @@
// Indices are printed as 1-based, not 0-based.
func (p Patch) String() string {
	var text bytes.Buffer
	_, _ = text.WriteString("@@ -" + patchCoords(p.Start1, p.Length1) + " +" + patchCoords(p.Start2, p.Length2) + " @@\n")

	// Escape the body of the patch with %xx notation.
	for _, aDiff := range p.Diffs {
		switch aDiff.Type {
		case DiffInsert:
			_, _ = text.WriteString("+")
		case DiffDelete:
			_, _ = text.WriteString("-")
		case DiffEqual:
			_, _ = text.WriteString(" ")
		}

		_, _ = text.WriteString(encodeURI(aDiff.Text))
		_, _ = text.WriteString("\n")
	}

	return text.String()
}

func patchCoords(start, length int) string {
	switch length {
	case 0:
		return strconv.Itoa(start) + ",0"
	case 1:
		return strconv.Itoa(start + 1)
	}
	return strconv.Itoa(start+1) + "," + strconv.Itoa(length)
}

// PatchAddContext increases the context until it is unique, but doesn't let the pattern expand beyond MatchMaxBits.
func (dmp *DiffMatchPatch) PatchAddContext(patch Patch, text string) Patch {
	patch.Diffs = append([]Diff(nil), patch.Diffs...)
	return dmp.patchAddContext(patch, []rune(text))
}

func (dmp *DiffMatchPatch) patchAddContext(patch Patch, text []rune) Patch {
	if len(text) == 0 {
		return patch
	}

	pattern := text[min(patch.Start2, len(text)):min(patch.Start2+patch.Length1, len(text))]
	padding := 0

	// Look for the first and last matches of pattern in text.  If two different matches are found, increase the pattern length.
	// A zero margin cannot grow the pattern.
	for dmp.PatchMargin > 0 &&
		runesIndexOf(text, pattern, 0) != runesLastIndexOf(text, pattern, len(text)) &&
		len(pattern) < dmp.MatchMaxBits-2*dmp.PatchMargin {
		padding += dmp.PatchMargin
		maxStart := max(0, patch.Start2-padding)
		minEnd := min(len(text), patch.Start2+patch.Length1+padding)
		pattern = text[maxStart:minEnd]
	}
	// Add one chunk for good luck.
	padding += dmp.PatchMargin

	// Add the prefix.
	prefix := text[max(0, patch.Start2-padding):min(patch.Start2, len(text))]
	if len(prefix) != 0 {
		patch.Diffs = append([]Diff{{DiffEqual, string(prefix)}}, patch.Diffs...)
	}
	// Add the suffix.
	suffix := text[min(len(text), patch.Start2+patch.Length1):min(len(text), patch.Start2+patch.Length1+padding)]
	if len(suffix) != 0 {
		patch.Diffs = append(patch.Diffs, Diff{DiffEqual, string(suffix)})
	}

	// Roll back the start points.
	patch.Start1 -= len(prefix)
	patch.Start2 -= len(prefix)
	// Extend the lengths.
	patch.Length1 += len(prefix) + len(suffix)
	patch.Length2 += len(prefix) + len(suffix)

	return patch
}

// PatchMake computes a list of patches.
//
// It accepts:
//   - text1, text2 string: the diff is computed and cleaned up first.
//   - diffs []Diff: text1 is rebuilt from the diffs.
//   - text1 string, diffs []Diff.
//   - text1, text2 string, diffs []Diff: text2 is not needed and ignored.
func (dmp *DiffMatchPatch) PatchMake(opt ...interface{}) []Patch {
	if len(opt) == 1 {
		diffs, _ := opt[0].([]Diff)
		text1 := dmp.DiffText1(diffs)
		return dmp.PatchMake(text1, diffs)
	} else if len(opt) == 2 {
		text1, _ := opt[0].(string)
		switch t := opt[1].(type) {
		case string:
			diffs := dmp.DiffMain(text1, t, true)
			if len(diffs) > 2 {
				diffs = dmp.DiffCleanupSemantic(diffs)
				diffs = dmp.DiffCleanupEfficiency(diffs)
			}
			return dmp.PatchMake(text1, diffs)
		case []Diff:
			return dmp.patchMake2(text1, t)
		}
	} else if len(opt) == 3 {
		return dmp.PatchMake(opt[0], opt[2])
	}
	return []Patch{}
}

// patchMake2 computes a list of patches to turn text1 into text2.
// text2 is not provided, diffs are the delta between text1 and text2.
func (dmp *DiffMatchPatch) patchMake2(text1 string, diffs []Diff) []Patch {
	// Check for null inputs not needed since null can't be passed in Go.
	patches := []Patch{}
	if len(diffs) == 0 {
		return patches // Get rid of the null case.
	}

	patch := Patch{}
	charCount1 := 0 // Number of characters into the text1 string.
	charCount2 := 0 // Number of characters into the text2 string.
	// Start with text1 (prepatchText) and apply the diffs until we arrive at text2 (postpatchText). We recreate the patches one by one to determine context info.
	prepatchText := []rune(text1)
	postpatchText := prepatchText

	for i, aDiff := range diffs {
		text := []rune(aDiff.Text)
		if len(patch.Diffs) == 0 && aDiff.Type != DiffEqual {
			// A new patch starts here.
			patch.Start1 = charCount1
			patch.Start2 = charCount2
		}

		switch aDiff.Type {
		case DiffInsert:
			patch.Diffs = append(patch.Diffs, aDiff)
			patch.Length2 += len(text)
			postpatchText = concatRunes(postpatchText[:charCount2], text, postpatchText[charCount2:])
		case DiffDelete:
			patch.Length1 += len(text)
			patch.Diffs = append(patch.Diffs, aDiff)
			postpatchText = concatRunes(postpatchText[:charCount2], postpatchText[min(charCount2+len(text), len(postpatchText)):])
		case DiffEqual:
			if len(text) <= 2*dmp.PatchMargin &&
				len(patch.Diffs) != 0 && i != len(diffs)-1 {
				// Small equality inside a patch.
				patch.Diffs = append(patch.Diffs, aDiff)
				patch.Length1 += len(text)
				patch.Length2 += len(text)
			}
			if len(text) >= 2*dmp.PatchMargin {
				// Time for a new patch.
				if len(patch.Diffs) != 0 {
					patch = dmp.patchAddContext(patch, prepatchText)
					patches = append(patches, patch)
					patch = Patch{}
					// Unlike Unidiff, our patch lists have a rolling context. https://github.com/google/diff-match-patch/wiki/Unidiff Update prepatch text & pos to reflect the application of the just completed patch.
					prepatchText = postpatchText
					charCount1 = charCount2
				}
			}
		}

		// Update the current character count.
		if aDiff.Type != DiffInsert {
			charCount1 += len(text)
		}
		if aDiff.Type != DiffDelete {
			charCount2 += len(text)
		}
	}

	// Pick up the leftover patch if not empty.
	if len(patch.Diffs) != 0 {
		patch = dmp.patchAddContext(patch, prepatchText)
		patches = append(patches, patch)
	}

	return patches
}

// PatchDeepCopy returns an array that is identical to a given an array of patches.
func (dmp *DiffMatchPatch) PatchDeepCopy(patches []Patch) []Patch {
	patchesCopy := []Patch{}
	for _, aPatch := range patches {
		patchCopy := Patch{}
		for _, aDiff := range aPatch.Diffs {
			patchCopy.Diffs = append(patchCopy.Diffs, Diff{
				aDiff.Type,
				aDiff.Text,
			})
		}
		patchCopy.Start1 = aPatch.Start1
		patchCopy.Start2 = aPatch.Start2
		patchCopy.Length1 = aPatch.Length1
		patchCopy.Length2 = aPatch.Length2
		patchesCopy = append(patchesCopy, patchCopy)
	}
	return patchesCopy
}

// PatchApply merges a set of patches onto the text.  Returns a patched text, as well as an array of true/false values indicating which patches were applied.
func (dmp *DiffMatchPatch) PatchApply(patches []Patch, text string) (string, []bool) {
	if len(patches) == 0 {
		return text, []bool{}
	}

	// Deep copy the patches so that no changes are made to originals.
	patches = dmp.PatchDeepCopy(patches)

	nullPadding := dmp.PatchAddPadding(patches)
	padLen := runeLen(nullPadding)
	runes := concatRunes([]rune(nullPadding), []rune(text), []rune(nullPadding))
	patches = dmp.PatchSplitMax(patches)

	x := 0
	// delta keeps track of the offset between the expected and actual location of the previous patch.  If there are patches expected at positions 10 and 20, but the first patch was found at 12, delta is 2 and the second patch has an effective expected position of 22.
	delta := 0
	results := make([]bool, len(patches))
	for _, aPatch := range patches {
		expectedLoc := aPatch.Start2 + delta
		text1 := []rune(dmp.DiffText1(aPatch.Diffs))
		var startLoc int
		endLoc := -1
		if len(text1) > dmp.MatchMaxBits {
			// PatchSplitMax will only provide an oversized pattern in the case of a monster delete.
			startLoc = dmp.matchMainRunes(runes, text1[:dmp.MatchMaxBits], expectedLoc)
			if startLoc != -1 {
				endLoc = dmp.matchMainRunes(runes,
					text1[len(text1)-dmp.MatchMaxBits:], expectedLoc+len(text1)-dmp.MatchMaxBits)
				if endLoc == -1 || startLoc >= endLoc {
					// Can't find valid trailing context.  Drop this patch.
					startLoc = -1
				}
			}
		} else {
			startLoc = dmp.matchMainRunes(runes, text1, expectedLoc)
		}
		if startLoc == -1 {
			// No match found.  :(
			results[x] = false
			// Subtract the delta for this failed patch from subsequent patches.
			delta -= aPatch.Length2 - aPatch.Length1
		} else {
			// Found a match.  :)
			results[x] = true
			delta = startLoc - expectedLoc
			var text2 []rune
			if endLoc == -1 {
				text2 = runes[startLoc:min(startLoc+len(text1), len(runes))]
			} else {
				text2 = runes[startLoc:min(endLoc+dmp.MatchMaxBits, len(runes))]
			}
			if runesEqual(text1, text2) {
				// Perfect match, just shove the Replacement text in.
				runes = concatRunes(runes[:startLoc], []rune(dmp.DiffText2(aPatch.Diffs)), runes[startLoc+len(text1):])
			} else {
				// Imperfect match.  Run a diff to get a framework of equivalent indices.
				diffs := dmp.DiffMainRunes(text1, text2, false)
				if len(text1) > dmp.MatchMaxBits && float64(dmp.DiffLevenshtein(diffs))/float64(len(text1)) > dmp.PatchDeleteThreshold {
					// The end points match, but the content is unacceptably bad.
					results[x] = false
				} else {
					diffs = dmp.DiffCleanupSemanticLossless(diffs)
					index1 := 0
					for _, aDiff := range aPatch.Diffs {
						if aDiff.Type != DiffEqual {
							index2 := dmp.DiffXIndex(diffs, index1)
							if aDiff.Type == DiffInsert {
								// Insertion
								runes = concatRunes(runes[:startLoc+index2], []rune(aDiff.Text), runes[startLoc+index2:])
							} else if aDiff.Type == DiffDelete {
								// Deletion
								startIndex := startLoc + index2
								endIndex := startLoc + dmp.DiffXIndex(diffs, index1+runeLen(aDiff.Text))
								runes = concatRunes(runes[:startIndex], runes[min(endIndex, len(runes)):])
							}
						}
						if aDiff.Type != DiffDelete {
							index1 += runeLen(aDiff.Text)
						}
					}
				}
			}
		}
		x++
	}
	// Strip the padding off.
	text = string(runes[padLen : len(runes)-padLen])
	return text, results
}

// PatchAddPadding adds some padding on text start and end so that edges can match something.
// Intended to be called only from within patch_apply.
func (dmp *DiffMatchPatch) PatchAddPadding(patches []Patch) string {
	paddingLength := dmp.PatchMargin
	nullPadding := make([]rune, 0, paddingLength)
	for x := 1; x <= paddingLength; x++ {
		nullPadding = append(nullPadding, rune(x))
	}
	padding := string(nullPadding)
	if len(patches) == 0 {
		return padding
	}

	// Bump all the patches forward.
	for i := range patches {
		patches[i].Start1 += paddingLength
		patches[i].Start2 += paddingLength
	}

	// Add some padding on start of first diff.
	if len(patches[0].Diffs) == 0 || patches[0].Diffs[0].Type != DiffEqual {
		// Add nullPadding equality.
		patches[0].Diffs = append([]Diff{{DiffEqual, padding}}, patches[0].Diffs...)
		patches[0].Start1 -= paddingLength // Should be 0.
		patches[0].Start2 -= paddingLength // Should be 0.
		patches[0].Length1 += paddingLength
		patches[0].Length2 += paddingLength
	} else if first := []rune(patches[0].Diffs[0].Text); paddingLength > len(first) {
		// Grow first equality.
		extraLength := paddingLength - len(first)
		patches[0].Diffs[0].Text = string(nullPadding[len(first):]) + patches[0].Diffs[0].Text
		patches[0].Start1 -= extraLength
		patches[0].Start2 -= extraLength
		patches[0].Length1 += extraLength
		patches[0].Length2 += extraLength
	}

	// Add some padding on end of last diff.
	last := len(patches) - 1
	if len(patches[last].Diffs) == 0 || patches[last].Diffs[len(patches[last].Diffs)-1].Type != DiffEqual {
		// Add nullPadding equality.
		patches[last].Diffs = append(patches[last].Diffs, Diff{DiffEqual, padding})
		patches[last].Length1 += paddingLength
		patches[last].Length2 += paddingLength
	} else if lastDiff := &patches[last].Diffs[len(patches[last].Diffs)-1]; paddingLength > runeLen(lastDiff.Text) {
		// Grow last equality.
		extraLength := paddingLength - runeLen(lastDiff.Text)
		lastDiff.Text += string(nullPadding[:extraLength])
		patches[last].Length1 += extraLength
		patches[last].Length2 += extraLength
	}

	return padding
}

// PatchSplitMax looks through the patches and breaks up any which are longer than the maximum limit of the match algorithm.
// Intended to be called only from within patch_apply.
func (dmp *DiffMatchPatch) PatchSplitMax(patches []Patch) []Patch {
	patchSize := dmp.MatchMaxBits
	patches = append([]Patch(nil), patches...)
	for x := 0; x < len(patches); x++ {
		if patches[x].Length1 <= patchSize {
			continue
		}
		bigpatch := patches[x]
		bigpatch.Diffs = append([]Diff(nil), bigpatch.Diffs...)
		// Remove the big old patch.
		patches = append(patches[:x], patches[x+1:]...)
		x--

		start1 := bigpatch.Start1
		start2 := bigpatch.Start2
		var precontext []rune
		for len(bigpatch.Diffs) != 0 {
			// Create one of several smaller patches.
			patch := Patch{}
			empty := true
			patch.Start1 = start1 - len(precontext)
			patch.Start2 = start2 - len(precontext)
			if len(precontext) != 0 {
				patch.Length1 = len(precontext)
				patch.Length2 = len(precontext)
				patch.Diffs = append(patch.Diffs, Diff{DiffEqual, string(precontext)})
			}
			for len(bigpatch.Diffs) != 0 && patch.Length1 < patchSize-dmp.PatchMargin {
				diffType := bigpatch.Diffs[0].Type
				diffText := []rune(bigpatch.Diffs[0].Text)
				if diffType == DiffInsert {
					// Insertions are harmless.
					patch.Length2 += len(diffText)
					start2 += len(diffText)
					patch.Diffs = append(patch.Diffs, bigpatch.Diffs[0])
					bigpatch.Diffs = bigpatch.Diffs[1:]
					empty = false
				} else if diffType == DiffDelete && len(patch.Diffs) == 1 && patch.Diffs[0].Type == DiffEqual && len(diffText) > 2*patchSize {
					// This is a large deletion.  Let it pass in one chunk.
					patch.Length1 += len(diffText)
					start1 += len(diffText)
					empty = false
					patch.Diffs = append(patch.Diffs, Diff{diffType, string(diffText)})
					bigpatch.Diffs = bigpatch.Diffs[1:]
				} else {
					// Deletion or equality.  Only take as much as we can stomach.
					taken := diffText[:min(len(diffText), patchSize-patch.Length1-dmp.PatchMargin)]

					patch.Length1 += len(taken)
					start1 += len(taken)
					if diffType == DiffEqual {
						patch.Length2 += len(taken)
						start2 += len(taken)
					} else {
						empty = false
					}
					patch.Diffs = append(patch.Diffs, Diff{diffType, string(taken)})
					if len(taken) == len(diffText) {
						bigpatch.Diffs = bigpatch.Diffs[1:]
					} else {
						bigpatch.Diffs[0].Text = string(diffText[len(taken):])
					}
				}
			}
			// Compute the head context for the next patch.
			precontext = []rune(dmp.DiffText2(patch.Diffs))
			precontext = precontext[max(0, len(precontext)-dmp.PatchMargin):]

			// Append the end context for this patch.
			postcontext := []rune(dmp.DiffText1(bigpatch.Diffs))
			postcontext = postcontext[:min(len(postcontext), dmp.PatchMargin)]

			if len(postcontext) != 0 {
				patch.Length1 += len(postcontext)
				patch.Length2 += len(postcontext)
				if len(patch.Diffs) != 0 && patch.Diffs[len(patch.Diffs)-1].Type == DiffEqual {
					patch.Diffs[len(patch.Diffs)-1].Text += string(postcontext)
				} else {
					patch.Diffs = append(patch.Diffs, Diff{DiffEqual, string(postcontext)})
				}
			}
			if !empty {
				x++
				patches = append(patches[:x], append([]Patch{patch}, patches[x:]...)...)
			}
		}
	}
	return patches
}

// PatchToText takes a list of patches and returns a textual representation.
func (dmp *DiffMatchPatch) PatchToText(patches []Patch) string {
	var text bytes.Buffer
	for _, aPatch := range patches {
		_, _ = text.WriteString(aPatch.String())
	}
	return text.String()
}

var patchHeader = regexp.MustCompile(`^@@ -(\d+),?(\d*) \+(\d+),?(\d*) @@$`)

// PatchFromText parses a textual representation of patches and returns a List of Patch objects.
func (dmp *DiffMatchPatch) PatchFromText(textline string) ([]Patch, error) {
	patches := []Patch{}
	if len(textline) == 0 {
		return patches, nil
	}
	text := strings.Split(textline, "\n")
	textPointer := 0

	for textPointer < len(text) {
		if text[textPointer] == "" {
			textPointer++
			continue
		}
		m := patchHeader.FindStringSubmatch(text[textPointer])
		if m == nil {
			return nil, patchError(text[textPointer], fmt.Errorf("invalid patch string: %s", text[textPointer]))
		}

		patch := Patch{}
		var err error
		if patch.Start1, patch.Length1, err = parseCoords(m[1], m[2]); err != nil {
			return nil, patchError(text[textPointer], err)
		}
		if patch.Start2, patch.Length2, err = parseCoords(m[3], m[4]); err != nil {
			return nil, patchError(text[textPointer], err)
		}
		textPointer++

		for textPointer < len(text) {
			if len(text[textPointer]) == 0 {
				// Blank line?  Whatever.
				textPointer++
				continue
			}
			sign := text[textPointer][0]
			if sign == '@' {
				// Start of next patch.
				break
			}

			line, err := decodeURI(text[textPointer][1:])
			if err != nil {
				return nil, patchError(text[textPointer], err)
			}
			if !utf8.ValidString(line) {
				return nil, patchError(text[textPointer], fmt.Errorf("invalid UTF-8 token: %q", line))
			}

			switch sign {
			case '-':
				// Deletion.
				patch.Diffs = append(patch.Diffs, Diff{DiffDelete, line})
			case '+':
				// Insertion.
				patch.Diffs = append(patch.Diffs, Diff{DiffInsert, line})
			case ' ':
				// Minor equality.
				patch.Diffs = append(patch.Diffs, Diff{DiffEqual, line})
			default:
				// WTF?
				return nil, patchError(text[textPointer], fmt.Errorf("invalid patch mode '%s' in: %s", string(sign), line))
			}
			textPointer++
		}

		patches = append(patches, patch)
	}
	return patches, nil
}

// parseCoords reads one side of a hunk header. The printed start is 1-based
// except for an empty span, which names the position before it.
func parseCoords(start, length string) (int, int, error) {
	s, err := strconv.Atoi(start)
	if err != nil {
		return 0, 0, err
	}
	if length == "0" {
		return s, 0, nil
	}
	if s == 0 {
		return 0, 0, errors.New("patch start must be positive for a non-empty span")
	}
	if length == "" {
		return s - 1, 1, nil
	}
	n, err := strconv.Atoi(length)
	if err != nil {
		return 0, 0, err
	}
	return s - 1, n, nil
}
