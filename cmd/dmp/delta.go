package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/di-graph/go-dmp/diffmatchpatch"
	"github.com/scott-cotton/cli"
)

func delta(cfg *DeltaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delta.Parse(cc, args)
	if err != nil {
		cfg.Delta.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: delta requires a verb and 2 args, got %v", cli.ErrUsage, args)
	}
	text1, text2, err := readPair(cc.In, args[1], args[2])
	if err != nil {
		return err
	}
	switch args[0] {
	case "encode", "e":
		return deltaEncode(cc.Out, cfg.dmp, text1, text2)
	case "decode", "d":
		if err := deltaDecode(cc.Out, cfg.dmp, text1, text2); err != nil {
			return fmt.Errorf("error decoding %s: %w", args[2], err)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown delta verb %q", cli.ErrUsage, args[0])
}

func deltaEncode(w io.Writer, dmp *diffmatchpatch.DiffMatchPatch, text1, text2 string) error {
	diffs := dmp.DiffMain(text1, text2, true)
	_, err := fmt.Fprintln(w, dmp.DiffToDelta(diffs))
	return err
}

func deltaDecode(w io.Writer, dmp *diffmatchpatch.DiffMatchPatch, text1, delta string) error {
	diffs, err := dmp.DiffFromDelta(text1, strings.TrimRight(delta, "\r\n"))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, dmp.DiffText2(diffs))
	return err
}
