package main

import (
	"fmt"
	"io"

	"github.com/di-graph/go-dmp/diffmatchpatch"
	"github.com/scott-cotton/cli"
	"github.com/spf13/cast"
)

func xindex(cfg *XIndexConfig, cc *cli.Context, args []string) error {
	args, err := cfg.XIndex.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: xindex requires 2 files and a location, got %v", cli.ErrUsage, args)
	}
	loc, err := cast.ToIntE(args[2])
	if err != nil || loc < 0 {
		return fmt.Errorf("%w: location must be a non-negative integer, got %q", cli.ErrUsage, args[2])
	}
	text1, text2, err := readPair(cc.In, args[0], args[1])
	if err != nil {
		return err
	}
	return xindexText(cc.Out, cfg.dmp, text1, text2, loc)
}

// xindexText prints where location loc of text1 lands in text2, with up to
// ten characters of context from each side.
func xindexText(w io.Writer, dmp *diffmatchpatch.DiffMatchPatch, text1, text2 string, loc int) error {
	runes1, runes2 := []rune(text1), []rune(text2)
	if loc > len(runes1) {
		return fmt.Errorf("%w: location %d is past the end of the first file (%d characters)", cli.ErrUsage, loc, len(runes1))
	}
	diffs := dmp.DiffMainRunes(runes1, runes2, false)
	newLoc := dmp.DiffXIndex(diffs, loc)

	_, err := fmt.Fprintf(w, "%s\n%s\nloc_change: %d -> %d\n",
		snippet(runes1, loc), snippet(runes2, newLoc), loc, newLoc)
	return err
}

func snippet(runes []rune, i int) string {
	i = min(i, len(runes))
	return string(runes[i:min(i+10, len(runes))])
}
