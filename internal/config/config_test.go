package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	v, err := NewViper("")
	require.NoError(t, err)

	cfg := Load(v)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 800*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "notes.db", filepath.Base(cfg.DB))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SUBNOTES_DB", "/tmp/other.db")
	t.Setenv("SUBNOTES_BACKEND", "Bolt")
	t.Setenv("SUBNOTES_SEARCH_DEBOUNCE", "250ms")

	v, err := NewViper("")
	require.NoError(t, err)
	cfg := Load(v)
	assert.Equal(t, "/tmp/other.db", cfg.DB)
	assert.Equal(t, "bolt", cfg.Backend)
	assert.Equal(t, 250*time.Millisecond, cfg.SearchDebounce)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subnotes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: bolt\nlog_level: debug\n"), 0o644))

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg := Load(v)
	assert.Equal(t, "bolt", cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestExplicitMissingConfigFileFails(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger(io.Discard, "debug").GetLevel())
	assert.Equal(t, logrus.WarnLevel, NewLogger(io.Discard, "nonsense").GetLevel())
}
