package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnvOverrides(t *testing.T) {
	type TestCase struct {
		Name string

		Env map[string]string

		Check    func(cfg *Config)
		ErrorMsg string
	}

	for i, tc := range []TestCase{
		{
			Name: "Nothing set",
			Env:  map[string]string{},
			Check: func(cfg *Config) {
				assert.Equal(t, NewDefaultConfig(), cfg)
			},
		},
		{
			Name: "All numeric",
			Env: map[string]string{
				EnvDiffTimeout:          "1500ms",
				EnvDiffEditCost:         "6",
				EnvMatchThreshold:       "0.25",
				EnvMatchDistance:        "0",
				EnvMatchMaxBits:         "64",
				EnvPatchMargin:          "8",
				EnvPatchDeleteThreshold: "0.75",
			},
			Check: func(cfg *Config) {
				assert.Equal(t, 1500*time.Millisecond, cfg.Diff.Timeout)
				assert.Equal(t, 6, cfg.Diff.EditCost)
				assert.Equal(t, 0.25, cfg.Match.Threshold)
				assert.Equal(t, 0, cfg.Match.Distance)
				assert.Equal(t, 64, cfg.Match.MaxBits)
				assert.Equal(t, 8, cfg.Patch.Margin)
				assert.Equal(t, 0.75, cfg.Patch.DeleteThreshold)
			},
		},
		{
			Name: "Strings",
			Env: map[string]string{
				EnvDiffDeltaUnit: "scalar",
				EnvLogLevel:      "warn",
				EnvLogFormat:     "json",
				EnvLogFile:       "/tmp/dmp.log",
			},
			Check: func(cfg *Config) {
				assert.Equal(t, "scalar", cfg.Diff.DeltaUnit)
				assert.Equal(t, "warn", cfg.Log.LogLevel)
				assert.Equal(t, "json", cfg.Log.LogFormat)
				assert.Equal(t, "/tmp/dmp.log", cfg.Log.LogFile)
			},
		},
		{
			Name:     "Bad int",
			Env:      map[string]string{EnvMatchDistance: "far"},
			ErrorMsg: EnvMatchDistance,
		},
		{
			Name:     "Bad float",
			Env:      map[string]string{EnvMatchThreshold: "loose"},
			ErrorMsg: EnvMatchThreshold,
		},
		{
			Name:     "Bad duration",
			Env:      map[string]string{EnvDiffTimeout: "soon"},
			ErrorMsg: EnvDiffTimeout,
		},
	} {
		cfg := NewDefaultConfig()
		lookup := func(key string) (string, bool) {
			v, ok := tc.Env[key]
			return v, ok
		}

		err := ApplyEnvOverrides(cfg, lookup)
		if tc.ErrorMsg != "" {
			require.Error(t, err, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
			assert.Contains(t, err.Error(), tc.ErrorMsg, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
			continue
		}
		require.NoError(t, err, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
		tc.Check(cfg)
	}
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DMP_TEST_DOTENV=loaded\n"), 0644))
	t.Setenv("DMP_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("DMP_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("DMP_TEST_DOTENV"))
}
