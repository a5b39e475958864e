// Copyright (c) 2012-2016 The go-diff authors. All rights reserved.
// https://github.com/sergi/go-diff
// See the included LICENSE file for license details.
//
// go-diff is a Go implementation of Google's Diff, Match, and Patch library
// Original library is Copyright (c) 2006 Google Inc.
// http://code.google.com/p/google-diff-match-patch/

package diffmatchpatch

import (
	"html"
	"strings"

	"github.com/fatih/color"
)

const (
	htmlInsertOpen = `<ins style="background:#e6ffe6;">`
	htmlDeleteOpen = `<del style="background:#ffe6e6;">`
	htmlEqualOpen  = `<span>`
)

// DiffPrettyHtml converts a []Diff into a pretty HTML report.
// It is intended as an example from which to write one's own display functions.
func (dmp *DiffMatchPatch) DiffPrettyHtml(diffs []Diff) string {
	var b strings.Builder
	for _, diff := range diffs {
		text := strings.ReplaceAll(html.EscapeString(diff.Text), "\n", "&para;<br>")
		switch diff.Type {
		case DiffInsert:
			b.WriteString(htmlInsertOpen + text + "</ins>")
		case DiffDelete:
			b.WriteString(htmlDeleteOpen + text + "</del>")
		case DiffEqual:
			b.WriteString(htmlEqualOpen + text + "</span>")
		}
	}
	return b.String()
}

// DiffPrettyText converts a []Diff into a colored text report. Insertions
// are green and deletions red, whether or not the output is a terminal.
func (dmp *DiffMatchPatch) DiffPrettyText(diffs []Diff) string {
	ins := color.New(color.FgGreen)
	ins.EnableColor()
	del := color.New(color.FgRed)
	del.EnableColor()

	var b strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case DiffInsert:
			b.WriteString(ins.Sprint(diff.Text))
		case DiffDelete:
			b.WriteString(del.Sprint(diff.Text))
		case DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}
