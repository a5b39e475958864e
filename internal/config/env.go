package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Environment variables that override values from the config file.
const (
	EnvDiffTimeout          = "DMP_DIFF_TIMEOUT"
	EnvDiffEditCost         = "DMP_DIFF_EDIT_COST"
	EnvDiffDeltaUnit        = "DMP_DIFF_DELTA_UNIT"
	EnvMatchThreshold       = "DMP_MATCH_THRESHOLD"
	EnvMatchDistance        = "DMP_MATCH_DISTANCE"
	EnvMatchMaxBits         = "DMP_MATCH_MAX_BITS"
	EnvPatchMargin          = "DMP_PATCH_MARGIN"
	EnvPatchDeleteThreshold = "DMP_PATCH_DELETE_THRESHOLD"
	EnvLogLevel             = "DMP_LOG_LEVEL"
	EnvLogFormat            = "DMP_LOG_FORMAT"
	EnvLogFile              = "DMP_LOG_FILE"
)

// LoadDotEnv loads variables from a .env file into the process
// environment. A missing file is not an error. Variables that are already
// set keep their values.
func LoadDotEnv(path string) error {
	var err error
	if path == "" {
		err = godotenv.Load()
	} else {
		err = godotenv.Load(path)
	}
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}
	return nil
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnvOverrides copies DMP_* variables found by lookup into cfg.
func ApplyEnvOverrides(cfg *Config, lookup LookupFunc) error {
	if v, ok := lookup(EnvDiffTimeout); ok {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return envError(EnvDiffTimeout, v, err)
		}
		cfg.Diff.Timeout = d
	}
	if err := overrideInt(lookup, EnvDiffEditCost, &cfg.Diff.EditCost); err != nil {
		return err
	}
	if v, ok := lookup(EnvDiffDeltaUnit); ok {
		cfg.Diff.DeltaUnit = v
	}
	if err := overrideFloat(lookup, EnvMatchThreshold, &cfg.Match.Threshold); err != nil {
		return err
	}
	if err := overrideInt(lookup, EnvMatchDistance, &cfg.Match.Distance); err != nil {
		return err
	}
	if err := overrideInt(lookup, EnvMatchMaxBits, &cfg.Match.MaxBits); err != nil {
		return err
	}
	if err := overrideInt(lookup, EnvPatchMargin, &cfg.Patch.Margin); err != nil {
		return err
	}
	if err := overrideFloat(lookup, EnvPatchDeleteThreshold, &cfg.Patch.DeleteThreshold); err != nil {
		return err
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.Log.LogFormat = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Log.LogFile = v
	}
	return nil
}

func overrideInt(lookup LookupFunc, key string, dst *int) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return envError(key, v, err)
	}
	*dst = n
	return nil
}

func overrideFloat(lookup LookupFunc, key string, dst *float64) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return envError(key, v, err)
	}
	*dst = f
	return nil
}

func envError(key, value string, err error) error {
	return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
}
