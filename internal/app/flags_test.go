package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("deepsea", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg, fs
}

func TestDefaultsSurviveWithoutSettings(t *testing.T) {
	cfg, fs := parse(t)
	require.NoError(t, cfg.LoadSettings(fs))

	assert.Equal(t, NewConfig(), cfg)
}

func TestSettingsFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "deepsea.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("scene: shallows\ntps: 30\nlog-level: debug\nsound: false\n"), 0o644))
	t.Setenv("DEEPSEA_SEED", "99")
	t.Setenv("DEEPSEA_LOG_LEVEL", "warn")

	cfg, fs := parse(t, "-config", settings, "-tps", "90")
	require.NoError(t, cfg.LoadSettings(fs))

	assert.Equal(t, "shallows", cfg.Scene)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 90, cfg.TPS, "explicit flags win")
	assert.Equal(t, "warn", cfg.LogLevel, "environment beats the file")
	assert.False(t, cfg.Sound)
}

func TestMissingSettingsFile(t *testing.T) {
	cfg, fs := parse(t, "-config", filepath.Join(t.TempDir(), "nope.yaml"))
	err := cfg.LoadSettings(fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestValidation(t *testing.T) {
	cfg, fs := parse(t, "-tps", "0")
	assert.Error(t, cfg.LoadSettings(fs))

	cfg, fs = parse(t, "-volume", "2")
	assert.Error(t, cfg.LoadSettings(fs))
}
