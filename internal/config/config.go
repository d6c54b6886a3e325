package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultFileName    = ".isympy.yml"
	defaultHistoryName = ".isympy_history"
	defaultHistorySize = 1000
)

// Environment overrides for settings.
const (
	EnvConfigFile = "ISYMPY_CONFIG"
	EnvPython     = "ISYMPY_PYTHON"
	EnvLogLevel   = "ISYMPY_LOG_LEVEL"
)

// Config holds launcher settings. None of them change what the library
// does; they describe how to find and run it.
type Config struct {
	Python      string `yaml:"python"`
	LibraryDir  string `yaml:"library_dir"`
	HistoryFile string `yaml:"history_file"`
	HistorySize int    `yaml:"history_size"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	HomeDir     string `yaml:"home_dir"`

	// HomeErr is set when the home directory could not be resolved; the
	// settings that live under it are left empty.
	HomeErr error `yaml:"-"`
}

// DefaultPath returns the settings file used when none is given explicitly.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigFile)); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaultFileName)
}

// Load reads settings from file. A missing file yields defaults; an
// unreadable or malformed one is an error. Environment overrides are
// applied last.
func Load(file string) (*Config, error) {
	cfg := &Config{}
	if file != "" {
		data, err := os.ReadFile(file)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", file, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", file, err)
			}
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvPython)); v != "" {
		cfg.Python = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Python = strings.TrimSpace(c.Python)
	c.LibraryDir = strings.TrimSpace(c.LibraryDir)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.HomeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			c.HomeErr = fmt.Errorf("resolve home directory: %w", err)
		}
		c.HomeDir = home
	}

	if c.HistoryFile == "" {
		if c.HomeDir != "" {
			c.HistoryFile = filepath.Join(c.HomeDir, defaultHistoryName)
		}
	} else {
		c.HistoryFile = expandHome(c.HistoryFile, c.HomeDir)
	}
	if c.HistorySize <= 0 {
		c.HistorySize = defaultHistorySize
	}
	c.LibraryDir = expandHome(c.LibraryDir, c.HomeDir)
	c.LogFile = expandHome(strings.TrimSpace(c.LogFile), c.HomeDir)
}

// expandHome resolves a leading ~. Without a home directory such a path
// cannot be resolved and is dropped.
func expandHome(path, home string) string {
	if home == "" && strings.HasPrefix(path, "~") {
		return ""
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
