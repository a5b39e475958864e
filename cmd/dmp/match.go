package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/di-graph/go-dmp/diffmatchpatch"
	"github.com/mattn/go-runewidth"
	"github.com/scott-cotton/cli"
	"github.com/spf13/cast"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: match requires a file and a pattern, got %v", cli.ErrUsage, args)
	}
	dmp := *cfg.dmp
	if cfg.Threshold != "" {
		t, err := cast.ToFloat64E(cfg.Threshold)
		if err != nil || t < 0 || t > 1 {
			return fmt.Errorf("%w: -threshold must be a number between 0 and 1, got %q", cli.ErrUsage, cfg.Threshold)
		}
		dmp.MatchThreshold = t
	}
	text, err := readInput(cc.In, args[0])
	if err != nil {
		return err
	}
	loc, err := matchText(cc.Out, &dmp, text, args[1], cfg.Loc)
	if err != nil {
		return err
	}
	cfg.log.Debug().Int("loc", cfg.Loc).Int("found", loc).Msg("match")
	return nil
}

// matchText prints the location of the best match of pattern in text near
// loc. When found, the matching line follows with a caret under the match.
func matchText(w io.Writer, dmp *diffmatchpatch.DiffMatchPatch, text, pattern string, loc int) (int, error) {
	if n := utf8.RuneCountInString(pattern); n > dmp.MatchMaxBits {
		return -1, fmt.Errorf("%w: pattern has %d characters, at most %d are supported", cli.ErrUsage, n, dmp.MatchMaxBits)
	}
	found := dmp.MatchMain(text, pattern, loc)
	if _, err := fmt.Fprintln(w, found); err != nil {
		return found, err
	}
	if found < 0 {
		return found, nil
	}
	line, col := lineAt([]rune(text), found)
	_, err := fmt.Fprintf(w, "%s\n%s^\n", line, strings.Repeat(" ", runewidth.StringWidth(col)))
	return found, err
}

// lineAt returns the line containing rune offset i and the part of that
// line before i.
func lineAt(text []rune, i int) (string, string) {
	start := i
	for start > 0 && text[start-1] != '\n' {
		start--
	}
	end := i
	for end < len(text) && text[end] != '\n' {
		end++
	}
	return string(text[start:end]), string(text[start:i])
}
