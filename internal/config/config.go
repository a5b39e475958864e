// Package config loads the settings of the dmp command: engine tunables,
// output defaults and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/di-graph/go-dmp/diffmatchpatch"
	"gopkg.in/yaml.v3"
)

const (
	// Diff defaults
	DefaultDiffTimeout   = time.Second
	DefaultDiffEditCost  = 4
	DefaultDiffDeltaUnit = "utf16"
	DefaultDiffMode      = "chars"
	DefaultDiffCleanup   = "semantic"

	// Match defaults
	DefaultMatchThreshold = 0.5
	DefaultMatchDistance  = 1000
	DefaultMatchMaxBits   = 32

	// Patch defaults
	DefaultPatchMargin          = 4
	DefaultPatchDeleteThreshold = 0.5

	// Log defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)

// Config is the root of the configuration file.
type Config struct {
	Diff  DiffConfig  `yaml:"diff,omitempty"`
	Match MatchConfig `yaml:"match,omitempty"`
	Patch PatchConfig `yaml:"patch,omitempty"`
	Log   LogConfig   `yaml:"log,omitempty"`
}

// DiffConfig defines configuration for diffing
type DiffConfig struct {
	Timeout   time.Duration `yaml:"timeout,omitempty" validate:"gte=0"`
	EditCost  int           `yaml:"edit_cost,omitempty" validate:"gte=0"`
	DeltaUnit string        `yaml:"delta_unit,omitempty" validate:"omitempty,lengthunit"`
	Mode      string        `yaml:"mode,omitempty" validate:"omitempty,oneof=chars lines words"`
	Cleanup   string        `yaml:"cleanup,omitempty" validate:"omitempty,oneof=none semantic lossless efficiency"`
}

// MatchConfig defines configuration for fuzzy matching
type MatchConfig struct {
	Threshold float64 `yaml:"threshold,omitempty" validate:"gte=0,lte=1"`
	Distance  int     `yaml:"distance,omitempty" validate:"gte=0"`
	MaxBits   int     `yaml:"max_bits,omitempty" validate:"gte=1,lte=63"`
}

// PatchConfig defines configuration for patches
type PatchConfig struct {
	Margin          int     `yaml:"margin,omitempty" validate:"gte=1"`
	DeleteThreshold float64 `yaml:"delete_threshold,omitempty" validate:"gte=0,lte=1"`
}

// LogConfig defines configuration for logging
type LogConfig struct {
	LogFile       string `yaml:"log_file,omitempty"`
	LogFormat     string `yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel      string `yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogBackups int    `yaml:"max_log_backups,omitempty" validate:"gte=0"`
	MaxLogSizeMB  int    `yaml:"max_log_size_mb,omitempty" validate:"gte=0"`
}

// NewDefaultConfig returns the configuration used when no file is found.
func NewDefaultConfig() *Config {
	return &Config{
		Diff: DiffConfig{
			Timeout:   DefaultDiffTimeout,
			EditCost:  DefaultDiffEditCost,
			DeltaUnit: DefaultDiffDeltaUnit,
			Mode:      DefaultDiffMode,
			Cleanup:   DefaultDiffCleanup,
		},
		Match: MatchConfig{
			Threshold: DefaultMatchThreshold,
			Distance:  DefaultMatchDistance,
			MaxBits:   DefaultMatchMaxBits,
		},
		Patch: PatchConfig{
			Margin:          DefaultPatchMargin,
			DeleteThreshold: DefaultPatchDeleteThreshold,
		},
		Log: NewDefaultLogConfig(),
	}
}

// NewDefaultLogConfig creates default log configuration
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogFile:       DefaultLogFile,
		LogFormat:     DefaultLogFormat,
		LogLevel:      DefaultLogLevel,
		MaxLogBackups: DefaultMaxLogBackups,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
	}
}

// Load builds the configuration from defaults, the file at providedPath (or
// the first file GetConfigPath finds), a .env file and DMP_* environment
// variables, in that order, and validates the result.
func Load(providedPath string) (*Config, error) {
	cfg := NewDefaultConfig()

	if filePath := GetConfigPath(providedPath); filePath != "" {
		if err := cfg.loadFile(filePath); err != nil {
			return nil, err
		}
	} else if providedPath != "" {
		return nil, fmt.Errorf("config file does not exist: %s", providedPath)
	}

	if err := LoadDotEnv(""); err != nil {
		return nil, err
	}
	if err := ApplyEnvOverrides(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) loadFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}
	if ext := filepath.Ext(filePath); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", filePath, err)
	}
	return nil
}

// DiffMatchPatch converts the engine settings into the library's
// configuration object.
func (cfg *Config) DiffMatchPatch() (*diffmatchpatch.DiffMatchPatch, error) {
	unit, err := diffmatchpatch.ParseLengthUnit(cfg.Diff.DeltaUnit)
	if err != nil {
		return nil, err
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = cfg.Diff.Timeout
	dmp.DiffEditCost = cfg.Diff.EditCost
	dmp.DeltaLengthUnit = unit
	dmp.MatchThreshold = cfg.Match.Threshold
	dmp.MatchDistance = cfg.Match.Distance
	dmp.MatchMaxBits = cfg.Match.MaxBits
	dmp.PatchMargin = cfg.Patch.Margin
	dmp.PatchDeleteThreshold = cfg.Patch.DeleteThreshold

	if err := dmp.Validate(); err != nil {
		return nil, err
	}
	return dmp, nil
}
