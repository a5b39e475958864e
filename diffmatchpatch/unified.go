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
	"strconv"
	"strings"
)

// Unified computes the differences between text1 and text2 line by line and
// formats them in the "unified diff" format.
// Optionally pass UnifiedOption to set the new/old labels and context lines.
func (dmp *DiffMatchPatch) Unified(text1, text2 string, opts ...UnifiedOption) string {
	runes1, runes2, lines := dmp.DiffLinesToRunes(text1, text2)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(runes1, runes2, false), lines)
	return dmp.DiffUnified(diffs, opts...)
}

// DiffUnified formats the diffs slice in the "unified diff" format.
// Optionally pass UnifiedOption to set the new/old labels and context lines.
func (dmp *DiffMatchPatch) DiffUnified(diffs []Diff, opts ...UnifiedOption) string {
	return toUnified(diffs, newUnifiedOptions(opts)).String()
}

// toUnified groups line diffs into hunks. Changes separated by more than
// twice the context length start a new hunk.
func toUnified(diffs []Diff, opts unifiedOptions) unified {
	u := unified{
		label1: opts.text1Label,
		label2: opts.text2Label,
	}
	if isEqual(diffs) {
		return u
	}

	var (
		cur *hunk

		line1, line2 int
		// Equal lines seen since the last change.
		pending []Diff
	)
	closeHunk := func() {
		cur.diffs = append(cur.diffs, pending[:min(len(pending), opts.contextLines)]...)
		u.hunks = append(u.hunks, *cur)
		cur = nil
	}

	for _, diff := range diffLinewise(diffs) {
		if diff.Type != DiffInsert {
			line1++
		}
		if diff.Type != DiffDelete {
			line2++
		}
		if diff.Type == DiffEqual {
			pending = append(pending, diff)
			continue
		}

		if cur != nil && len(pending) > 2*opts.contextLines {
			closeHunk()
		}
		if cur == nil {
			n := min(len(pending), opts.contextLines)
			cur = &hunk{
				fromLine: line1 - n,
				toLine:   line2 - n,
				diffs:    pending[len(pending)-n:],
			}
			// Only one of the counters has moved past this line.
			if diff.Type == DiffDelete {
				cur.toLine++
			} else {
				cur.fromLine++
			}
			pending = nil
		}

		cur.diffs = append(cur.diffs, pending...)
		cur.diffs = append(cur.diffs, diff)
		pending = nil
	}
	if cur != nil {
		closeHunk()
	}

	return u
}

func isEqual(diffs []Diff) bool {
	for _, diff := range diffs {
		if diff.Type != DiffEqual {
			return false
		}
	}
	return true
}

// diffLinewise splits and merges diffs so that each one holds exactly one
// line, including its final newline character.
func diffLinewise(diffs []Diff) []Diff {
	var (
		ret          []Diff
		line1, line2 string
	)
	emit := func(op Operation, line *string) {
		ret = append(ret, Diff{Type: op, Text: *line})
		*line = ""
	}

	for _, diff := range diffCleanupNewline(diffs) {
		for _, segment := range strings.SplitAfter(diff.Text, "\n") {
			if diff.Type != DiffInsert {
				line1 += segment
			}
			if diff.Type != DiffDelete {
				line2 += segment
			}

			if strings.HasSuffix(line1, "\n") && line1 == line2 {
				emit(DiffEqual, &line1)
				line2 = ""
			}
			if strings.HasSuffix(line1, "\n") {
				emit(DiffDelete, &line1)
			}
			if strings.HasSuffix(line2, "\n") {
				emit(DiffInsert, &line2)
			}
		}
	}

	// A text without a final newline leaves its last line pending.
	if line1 != "" && line1 == line2 {
		emit(DiffEqual, &line1)
		line2 = ""
	}
	if line1 != "" {
		emit(DiffDelete, &line1)
	}
	if line2 != "" {
		emit(DiffInsert, &line2)
	}

	return reorderDeletionsFirst(ret)
}

// diffCleanupNewline looks for single edits surrounded on both sides by
// equalities which can be shifted sideways to align on newlines.
func diffCleanupNewline(diffs []Diff) []Diff {
	ret := make([]Diff, 0, len(diffs))

	for i := 0; i < len(diffs); i++ {
		if i+2 < len(diffs) && diffs[i].Type == DiffEqual && diffs[i+1].Type != DiffEqual && diffs[i+2].Type == DiffEqual {
			// ["=<equal>", "±<common\n><change>", "=<common\n><equal>"] becomes
			// ["=<equal><common\n>", "±<change><common\n>", "=<equal>"].
			if common := prefixWithNewline(diffs[i+1].Text, diffs[i+2].Text); common != "" {
				ret = append(ret,
					Diff{DiffEqual, diffs[i].Text + common},
					Diff{diffs[i+1].Type, strings.TrimPrefix(diffs[i+1].Text, common) + common},
					Diff{DiffEqual, strings.TrimPrefix(diffs[i+2].Text, common)},
				)
				i += 2
				continue
			}
		}
		ret = append(ret, diffs[i])
	}

	return ret
}

// prefixWithNewline returns the longest common prefix of text1 and text2 that
// ends in a newline character, or "" if there is none.
func prefixWithNewline(text1, text2 string) string {
	runes1 := []rune(text1)
	prefix := string(runes1[:commonPrefixLength(runes1, []rune(text2))])
	if i := strings.LastIndexByte(prefix, '\n'); i != -1 {
		return prefix[:i+1]
	}
	return ""
}

// reorderDeletionsFirst reorders changes so that deletions come before
// insertions, without crossing an equality boundary.
func reorderDeletionsFirst(diffs []Diff) []Diff {
	var ret, deletions, insertions []Diff

	flush := func() {
		ret = append(ret, deletions...)
		ret = append(ret, insertions...)
		deletions, insertions = nil, nil
	}
	for _, diff := range diffs {
		switch diff.Type {
		case DiffDelete:
			deletions = append(deletions, diff)
		case DiffInsert:
			insertions = append(insertions, diff)
		case DiffEqual:
			flush()
			ret = append(ret, diff)
		}
	}
	flush()

	return ret
}

// unified represents modifications in a form conducive to printing a unified diff.
type unified struct {
	label1, label2 string
	hunks          []hunk
}

// hunk is a list of nearby changes, separated by at most 2*contextLines lines.
type hunk struct {
	// The line in the original source where the hunk starts.
	fromLine int
	// The line in the original source where the hunk finishes.
	toLine int
	// List of modifications. Each Diff represents one deleted, inserted, or equal line.
	diffs []Diff
}

// numLines returns the number of lines in the hunk for text1 and text2.
func (h hunk) numLines() (n1, n2 int) {
	for _, diff := range h.diffs {
		switch diff.Type {
		case DiffDelete:
			n1++
		case DiffInsert:
			n2++
		case DiffEqual:
			n1++
			n2++
		}
	}

	return n1, n2
}

// hunkRange formats one side of a hunk header. Like GNU diff -u, a single
// line omits the count and an empty side at the top of the file is "0,0".
func hunkRange(start, n int) string {
	switch {
	case n > 1:
		return fmt.Sprintf("%d,%d", start, n)
	case start == 1 && n == 0:
		return "0,0"
	default:
		return strconv.Itoa(start)
	}
}

func (h hunk) String() string {
	var b strings.Builder

	n1, n2 := h.numLines()
	fmt.Fprintf(&b, "@@ -%s +%s @@\n", hunkRange(h.fromLine, n1), hunkRange(h.toLine, n2))

	for _, diff := range h.diffs {
		switch diff.Type {
		case DiffDelete:
			b.WriteByte('-')
		case DiffInsert:
			b.WriteByte('+')
		default:
			b.WriteByte(' ')
		}
		b.WriteString(diff.Text)
		if !strings.HasSuffix(diff.Text, "\n") {
			b.WriteString("\n\\ No newline at end of file\n")
		}
	}

	return b.String()
}

// String converts a unified diff to the standard textual form for that diff.
// The output of this function can be passed to tools like patch.
func (u unified) String() string {
	if len(u.hunks) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", u.label1)
	fmt.Fprintf(&b, "+++ %s\n", u.label2)
	for _, hunk := range u.hunks {
		fmt.Fprint(&b, hunk)
	}

	return b.String()
}

// DefaultContextLines is the number of unchanged lines of surrounding
// context displayed by Unified.
const DefaultContextLines = 3

// UnifiedOption is an option for DiffUnified().
type UnifiedOption func(*unifiedOptions)

type unifiedOptions struct {
	contextLines int
	text1Label   string
	text2Label   string
}

func newUnifiedOptions(opts []UnifiedOption) unifiedOptions {
	ret := unifiedOptions{
		contextLines: DefaultContextLines,
		text1Label:   "text1",
		text2Label:   "text2",
	}

	for _, o := range opts {
		o(&ret)
	}

	return ret
}

// UnifiedContextLines sets the number of unchanged lines of surrounding context
// printed. Defaults to DefaultContextLines.
func UnifiedContextLines(lines int) UnifiedOption {
	if lines <= 0 {
		lines = DefaultContextLines
	}

	return func(o *unifiedOptions) {
		o.contextLines = lines
	}
}

// UnifiedLabels sets the labels for the old and new files. Defaults to "text1" and "text2".
func UnifiedLabels(oldLabel, newLabel string) UnifiedOption {
	return func(o *unifiedOptions) {
		o.text1Label = oldLabel
		o.text2Label = newLabel
	}
}
