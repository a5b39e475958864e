package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/di-graph/go-dmp/diffmatchpatch"
	"github.com/rs/zerolog"
	"github.com/scott-cotton/cli"
)

var errHunksFailed = errors.New("patch hunks failed to apply")

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: patch requires a verb and 2 args, got %v", cli.ErrUsage, args)
	}
	in1, in2, err := readPair(cc.In, args[1], args[2])
	if err != nil {
		return err
	}
	switch args[0] {
	case "make", "m":
		return patchMake(cc.Out, cfg.dmp, in1, in2)
	case "apply", "a":
		return patchApply(cc.Out, cfg.log, cfg.dmp, in1, in2)
	}
	return fmt.Errorf("%w: unknown patch verb %q", cli.ErrUsage, args[0])
}

func patchMake(w io.Writer, dmp *diffmatchpatch.DiffMatchPatch, text1, text2 string) error {
	patches := dmp.PatchMake(text1, text2)
	_, err := io.WriteString(w, dmp.PatchToText(patches))
	return err
}

// patchApply writes the patched text to w. Hunks that do not apply are
// logged and reported with errHunksFailed once the output is written.
func patchApply(w io.Writer, log zerolog.Logger, dmp *diffmatchpatch.DiffMatchPatch, patchText, text string) error {
	patches, err := dmp.PatchFromText(patchText)
	if err != nil {
		return err
	}
	start := time.Now()
	result, applied := dmp.PatchApply(patches, text)

	failed := 0
	for i, ok := range applied {
		if ok {
			continue
		}
		failed++
		log.Error().
			Int("hunk", i+1).
			Str("header", hunkHeader(patches[i])).
			Msg("hunk did not apply")
	}
	log.Debug().
		Int("hunks", len(patches)).
		Int("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("patch applied")

	if _, err := io.WriteString(w, result); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errHunksFailed, failed, len(patches))
	}
	return nil
}

func hunkHeader(p diffmatchpatch.Patch) string {
	header, _, _ := strings.Cut(p.String(), "\n")
	return header
}
