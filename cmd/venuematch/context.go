package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"venuematch/internal/alias"
	"venuematch/internal/config"
	"venuematch/internal/logging"
)

// commandContext carries flags and lazily loaded configuration shared by
// subcommands.
type commandContext struct {
	configPath string
	logLevel   string

	cfg *config.Config
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := strings.TrimSpace(c.configPath)
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if strings.TrimSpace(c.logLevel) != "" {
		level = c.logLevel
	}
	return logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
}

// loadOverrides layers the configured overrides file, when present, over
// the compiled-in nickname table.
func (c *commandContext) loadOverrides(cfg *config.Config) (map[string][]string, error) {
	overrides := alias.DefaultOverrides()
	extra, err := alias.LoadOverrides(cfg.Aliases.OverridesPath)
	if err != nil {
		return nil, err
	}
	return alias.MergeOverrides(overrides, extra), nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "venuematch", "config.toml")
}
