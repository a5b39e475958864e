package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "dmp").
		WithSynopsis("dmp [opts] command [opts]").
		WithDescription("dmp computes diffs, fuzzy matches and patches of plain text.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dmpMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			DeltaCommand(cfg),
			PatchCommand(cfg),
			MatchCommand(cfg),
			XIndexCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-mode m] [-cleanup c] [-format f] <file1> <file2>").
		WithDescription("diff two text files; '-' reads stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func DeltaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DeltaConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Delta, "delta").
		WithSynopsis("delta encode <file1> <file2> | delta decode <file1> <deltafile>").
		WithDescription("encode the difference of two files as a delta, or rebuild the second file from a delta").
		WithRun(func(cc *cli.Context, args []string) error {
			return delta(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch make <file1> <file2> | patch apply <patchfile> <file>").
		WithDescription("make a patch from two files, or apply a patch to a file").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [-loc n] [-threshold t] <file> <pattern>").
		WithDescription("find the best fuzzy match of pattern in file near loc").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func XIndexCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &XIndexConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.XIndex, "xindex").
		WithAliases("x").
		WithSynopsis("xindex <file1> <file2> <loc>").
		WithDescription("map a character location in file1 to the equivalent location in file2").
		WithRun(func(cc *cli.Context, args []string) error {
			return xindex(cfg, cc, args)
		})
}
