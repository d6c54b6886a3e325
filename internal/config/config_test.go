package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvPython, "")
	t.Setenv(EnvLogLevel, "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Python)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, home, cfg.HomeDir)
	assert.Equal(t, filepath.Join(home, ".isympy_history"), cfg.HistoryFile)
	assert.Equal(t, 1000, cfg.HistorySize)
}

func TestLoadReadsFile(t *testing.T) {
	t.Setenv(EnvPython, "")
	t.Setenv(EnvLogLevel, "")
	dir := t.TempDir()
	file := filepath.Join(dir, "isympy.yml")
	data := `python: "python3.11 -X dev"
library_dir: ~/src/sympy
history_file: ~/hist
history_size: 50
log_level: DEBUG
home_dir: ` + dir + "\n"
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "python3.11 -X dev", cfg.Python)
	assert.Equal(t, filepath.Join(dir, "src", "sympy"), cfg.LibraryDir)
	assert.Equal(t, filepath.Join(dir, "hist"), cfg.HistoryFile)
	assert.Equal(t, 50, cfg.HistorySize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "isympy.yml")
	require.NoError(t, os.WriteFile(file, []byte("python: python3\nhome_dir: "+dir+"\n"), 0o600))
	t.Setenv(EnvPython, "/opt/py/bin/python")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "/opt/py/bin/python", cfg.Python)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadMalformedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(file, []byte("python: [unterminated\n"), 0o600))

	_, err := Load(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestDefaultPathPrefersEnvironment(t *testing.T) {
	t.Setenv(EnvConfigFile, "/etc/isympy.yml")
	assert.Equal(t, "/etc/isympy.yml", DefaultPath())
}

func TestLoadWithoutHomeDirectory(t *testing.T) {
	t.Setenv(EnvPython, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv("HOME", "")
	dir := t.TempDir()
	file := filepath.Join(dir, "isympy.yml")
	require.NoError(t, os.WriteFile(file, []byte("python: python3\nlog_file: ~/isympy.log\n"), 0o600))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Error(t, cfg.HomeErr)
	assert.Empty(t, cfg.HomeDir)
	assert.Empty(t, cfg.HistoryFile)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "python3", cfg.Python)
	assert.Equal(t, 1000, cfg.HistorySize)
}
