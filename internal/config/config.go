// Package config loads kom's optional TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/kom/internal/buffer"
	"github.com/kk-code-lab/kom/internal/logger"
	"github.com/pelletier/go-toml/v2"
)

// Config is the persisted config file schema.
type Config struct {
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
	TabWidth    int    `toml:"tab_width"`
	Mouse       bool   `toml:"mouse"`
	InvalidUTF8 string `toml:"invalid_utf8"`
	Source      string `toml:"-"`
}

func Default() Config {
	return Config{
		LogLevel:    "info",
		TabWidth:    4,
		Mouse:       true,
		InvalidUTF8: "fail",
	}
}

// DefaultPath is $XDG_CONFIG_HOME/kom/config.toml, falling back to
// ~/.config/kom/config.toml.
func DefaultPath() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(dir, "kom", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "kom", "config.toml")
}

// Load reads path (DefaultPath when empty). A missing file yields the
// defaults. KOM_LOG_LEVEL overrides the file's log level.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	cfg.Source = path

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, err
		default:
			if err := toml.Unmarshal(content, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if env := strings.TrimSpace(os.Getenv(logger.EnvLevel)); env != "" {
		cfg.LogLevel = env
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the pager cannot run with.
func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > 32 {
		return fmt.Errorf("tab_width must be between 1 and 32, got %d", c.TabWidth)
	}
	if _, err := buffer.ParseInvalidUTF8Policy(c.InvalidUTF8); err != nil {
		return err
	}
	return nil
}

// ReaderOptions converts the config into line reader options.
func (c Config) ReaderOptions() buffer.ReaderOptions {
	policy, _ := buffer.ParseInvalidUTF8Policy(c.InvalidUTF8)
	return buffer.ReaderOptions{InvalidUTF8: policy}
}
