package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "IPL.csv", cfg.Data.Path)
	assert.Equal(t, ',', cfg.Data.DelimiterRune())
	assert.Equal(t, "csv", cfg.Data.Source)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "claude-haiku-4-5-20251001", cfg.Analyze.Model)
	assert.Equal(t, 1024, cfg.Analyze.MaxTokens)
	assert.Equal(t, "deliveries.db", filepath.Base(cfg.Store.Path))
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
data:
  path: /data/ipl.csv
  delimiter: tab
  source: db
log:
  level: debug
  format: json
analyze:
  max_tokens: 2048
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cricmetrics.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/data/ipl.csv", cfg.Data.Path)
	assert.Equal(t, '\t', cfg.Data.DelimiterRune())
	assert.Equal(t, "db", cfg.Data.Source)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 2048, cfg.Analyze.MaxTokens)
}

func TestLoadEnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CRICMETRICS_DATA_PATH", "/tmp/other.csv")
	t.Setenv("CRICMETRICS_LOG_LEVEL", "warn")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.csv", cfg.Data.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadExplicitOverride(t *testing.T) {
	chdirTemp(t)
	v := viper.New()
	v.Set("data.path", "flag.csv")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "flag.csv", cfg.Data.Path)
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CRICMETRICS_DATA_SOURCE", "parquet")

	_, err := Load(nil)
	require.Error(t, err)
}

func TestDelimiterRune(t *testing.T) {
	assert.Equal(t, ',', DataConfig{}.DelimiterRune())
	assert.Equal(t, ';', DataConfig{Delimiter: ";"}.DelimiterRune())
	assert.Equal(t, '\t', DataConfig{Delimiter: `\t`}.DelimiterRune())
}

func TestInitLogger(t *testing.T) {
	orig := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(orig) })

	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.True(t, zap.L().Core().Enabled(zap.DebugLevel))

	require.NoError(t, InitLogger(LogConfig{Level: "error", Format: "json"}))
	assert.False(t, zap.L().Core().Enabled(zap.InfoLevel))

	require.Error(t, InitLogger(LogConfig{Level: "loud"}))
}
