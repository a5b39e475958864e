package main

import (
	"io"
	"os"

	"github.com/di-graph/go-dmp/diffmatchpatch"
	"github.com/di-graph/go-dmp/internal/config"
	"github.com/di-graph/go-dmp/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	ConfigFile string `cli:"name=config desc='configuration file (yaml)'"`
	Verbose    bool   `cli:"name=v aliases=verbose desc='log debug messages'"`
	Color      bool   `cli:"name=color desc='color output'"`

	Main *cli.Command

	conf *config.Config
	dmp  *diffmatchpatch.DiffMatchPatch
	log  zerolog.Logger
}

// setup loads the configuration and builds the logger and the engine.
func (cfg *MainConfig) setup() error {
	conf, err := config.Load(cfg.ConfigFile)
	if err != nil {
		return err
	}
	builder := logger.NewLoggerBuilder().
		WithConfig(conf.Log).
		WithNoColor(!isTerminal(os.Stderr))
	if cfg.Verbose {
		builder = builder.WithLevel(zerolog.DebugLevel)
	}
	log, err := builder.Build()
	if err != nil {
		return err
	}
	dmp, err := conf.DiffMatchPatch()
	if err != nil {
		return err
	}
	cfg.conf, cfg.log, cfg.dmp = conf, log, dmp
	log.Debug().Str("config", config.GetConfigPath(cfg.ConfigFile)).Msg("configuration loaded")
	return nil
}

// useColor reports whether output to w is colored: -color decides when it
// was given, otherwise color is used on terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DiffConfig struct {
	*MainConfig

	Mode    string `cli:"name=mode desc='granularity: chars, lines or words'"`
	Cleanup string `cli:"name=cleanup desc='none, semantic, lossless or efficiency'"`
	Format  string `cli:"name=format aliases=f desc='pretty, html, delta, unified or patch'"`
	Context int    `cli:"name=U desc='lines of context for unified output'"`

	Diff *cli.Command
}

type DeltaConfig struct {
	*MainConfig

	Delta *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type MatchConfig struct {
	*MainConfig

	Loc       int    `cli:"name=loc desc='expected location of the pattern'"`
	Threshold string `cli:"name=threshold desc='match threshold between 0 and 1'"`

	Command *cli.Command
}

type XIndexConfig struct {
	*MainConfig

	XIndex *cli.Command
}
