package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/di-graph/go-dmp/diffmatchpatch"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

type diffOptions struct {
	Mode    string
	Cleanup string
	Format  string
	Context int
	Color   bool
	Label1  string
	Label2  string
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	text1, text2, err := readPair(cc.In, args[0], args[1])
	if err != nil {
		return err
	}
	opts := diffOptions{
		Mode:    firstNonEmpty(cfg.Mode, cfg.conf.Diff.Mode),
		Cleanup: firstNonEmpty(cfg.Cleanup, cfg.conf.Diff.Cleanup),
		Format:  firstNonEmpty(cfg.Format, "pretty"),
		Context: cfg.Context,
		Color:   cfg.useColor(cc.Out),
		Label1:  args[0],
		Label2:  args[1],
	}

	start := time.Now()
	diffs, err := computeDiff(cfg.dmp, text1, text2, opts.Mode, opts.Cleanup)
	if err != nil {
		return err
	}
	cfg.log.Debug().
		Str("mode", opts.Mode).
		Str("cleanup", opts.Cleanup).
		Int("diffs", len(diffs)).
		Int("levenshtein", cfg.dmp.DiffLevenshtein(diffs)).
		Dur("elapsed", time.Since(start)).
		Msg("diff computed")

	return renderDiff(cc.Out, cfg.dmp, text1, diffs, opts)
}

// computeDiff diffs text1 and text2 at the given granularity and applies
// the named cleanup.
func computeDiff(dmp *diffmatchpatch.DiffMatchPatch, text1, text2, mode, cleanup string) ([]diffmatchpatch.Diff, error) {
	var diffs []diffmatchpatch.Diff
	switch mode {
	case "", "chars":
		diffs = dmp.DiffMain(text1, text2, true)
	case "lines":
		runes1, runes2, lines := dmp.DiffLinesToRunes(text1, text2)
		diffs = dmp.DiffCharsToLines(dmp.DiffMainRunes(runes1, runes2, false), lines)
	case "words":
		runes1, runes2, words := dmp.DiffWordsToRunes(text1, text2)
		diffs = dmp.DiffCharsToLines(dmp.DiffMainRunes(runes1, runes2, false), words)
	default:
		return nil, fmt.Errorf("%w: unknown diff mode %q", cli.ErrUsage, mode)
	}

	switch cleanup {
	case "", "none":
	case "semantic":
		diffs = dmp.DiffCleanupSemantic(diffs)
	case "lossless":
		diffs = dmp.DiffCleanupSemanticLossless(diffs)
	case "efficiency":
		diffs = dmp.DiffCleanupEfficiency(diffs)
	default:
		return nil, fmt.Errorf("%w: unknown cleanup %q", cli.ErrUsage, cleanup)
	}
	return diffs, nil
}

func renderDiff(w io.Writer, dmp *diffmatchpatch.DiffMatchPatch, text1 string, diffs []diffmatchpatch.Diff, opts diffOptions) error {
	var out string
	switch opts.Format {
	case "pretty":
		if opts.Color {
			out = dmp.DiffPrettyText(diffs)
		} else {
			out = markedText(diffs)
		}
	case "html":
		out = dmp.DiffPrettyHtml(diffs) + "\n"
	case "delta":
		out = dmp.DiffToDelta(diffs) + "\n"
	case "unified":
		uopts := []diffmatchpatch.UnifiedOption{diffmatchpatch.UnifiedLabels(opts.Label1, opts.Label2)}
		if opts.Context > 0 {
			uopts = append(uopts, diffmatchpatch.UnifiedContextLines(opts.Context))
		}
		out = dmp.DiffUnified(diffs, uopts...)
		if opts.Color {
			out = colorUnified(out)
		}
	case "patch":
		out = dmp.PatchToText(dmp.PatchMake(text1, diffs))
	default:
		return fmt.Errorf("%w: unknown format %q", cli.ErrUsage, opts.Format)
	}
	_, err := io.WriteString(w, out)
	return err
}

// markedText renders deletions as [-text-] and insertions as {+text+}.
func markedText(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func colorUnified(text string) string {
	add := color.New(color.FgGreen)
	add.EnableColor()
	del := color.New(color.FgRed)
	del.EnableColor()
	hdr := color.New(color.FgCyan)
	hdr.EnableColor()
	bold := color.New(color.Bold)
	bold.EnableColor()

	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]
		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			b.WriteString(bold.Sprint(body))
		case strings.HasPrefix(body, "@@"):
			b.WriteString(hdr.Sprint(body))
		case strings.HasPrefix(body, "+"):
			b.WriteString(add.Sprint(body))
		case strings.HasPrefix(body, "-"):
			b.WriteString(del.Sprint(body))
		default:
			b.WriteString(body)
		}
		b.WriteString(nl)
	}
	return b.String()
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}
