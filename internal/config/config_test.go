package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/di-graph/go-dmp/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, time.Second, cfg.Diff.Timeout)
	assert.Equal(t, "utf16", cfg.Diff.DeltaUnit)
	assert.Equal(t, "semantic", cfg.Diff.Cleanup)
	assert.Equal(t, 32, cfg.Match.MaxBits)
	assert.Equal(t, "info", cfg.Log.LogLevel)
	assert.NoError(t, ValidateConfig(cfg))

	dmp, err := cfg.DiffMatchPatch()
	require.NoError(t, err)
	assert.Equal(t, diffmatchpatch.New(), dmp)
}

func TestLoad_NoConfigFile(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoad_NonExistentFile(t *testing.T) {
	cfg, err := Load("/nonexistent/dmp.yaml")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, "dmp.yaml", `
diff:
  timeout: 250ms
  delta_unit: scalar
  mode: words
match:
  threshold: 0.3
log:
  log_level: debug
  log_format: json
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Diff.Timeout)
	assert.Equal(t, "scalar", cfg.Diff.DeltaUnit)
	assert.Equal(t, "words", cfg.Diff.Mode)
	assert.Equal(t, 0.3, cfg.Match.Threshold)
	assert.Equal(t, DefaultMatchDistance, cfg.Match.Distance)
	assert.Equal(t, "debug", cfg.Log.LogLevel)
	assert.Equal(t, "json", cfg.Log.LogFormat)

	dmp, err := cfg.DiffMatchPatch()
	require.NoError(t, err)
	assert.Equal(t, diffmatchpatch.LengthUnitUnicodeScalar, dmp.DeltaLengthUnit)
	assert.Equal(t, 250*time.Millisecond, dmp.DiffTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "dmp.yml", "match:\n  distance: 10\n")
	t.Setenv(EnvMatchDistance, "77")
	t.Setenv(EnvDiffTimeout, "2s")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Match.Distance)
	assert.Equal(t, 2*time.Second, cfg.Diff.Timeout)
}

func TestLoad_Errors(t *testing.T) {
	type TestCase struct {
		Name string

		File string
		Data string

		Expected string
	}

	for i, tc := range []TestCase{
		{"Bad YAML", "dmp.yaml", "diff: [", "failed to parse YAML config"},
		{"Bad extension", "dmp.toml", "x = 1", "unsupported config file extension"},
		{"Bad log level", "dmp.yaml", "log:\n  log_level: loud\n", "rule 'loglevel'"},
		{"Bad log format", "dmp.yaml", "log:\n  log_format: xml\n", "rule 'logformat'"},
		{"Bad delta unit", "dmp.yaml", "diff:\n  delta_unit: bytes\n", "rule 'lengthunit'"},
		{"Bad mode", "dmp.yaml", "diff:\n  mode: paragraphs\n", "rule 'oneof'"},
		{"Threshold too high", "dmp.yaml", "match:\n  threshold: 1.5\n", "(expected: 1)"},
		{"Margin too wide", "dmp.yaml", "patch:\n  margin: 16\n", "leaves no room"},
		{"Zero margin", "dmp.yaml", "patch:\n  margin: 0\n", "'Config.Patch.Margin': rule 'gte'"},
	} {
		path := writeConfig(t, tc.File, tc.Data)

		cfg, err := Load(path)
		assert.Nil(t, cfg, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
		require.Error(t, err, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
		assert.Contains(t, err.Error(), tc.Expected, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
	}
}

func TestGetConfigPath(t *testing.T) {
	path := writeConfig(t, "dmp.yaml", "")

	assert.Equal(t, path, GetConfigPath(path))
	assert.Equal(t, "", GetConfigPath(filepath.Join(t.TempDir(), "missing.yaml")))

	t.Setenv(ConfigPathEnv, path)
	assert.Equal(t, path, GetConfigPath(""))
}
