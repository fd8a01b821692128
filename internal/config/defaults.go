package config

import (
	"os"
	"path/filepath"
	"strings"

	"venuematch/internal/resolve"
)

const (
	defaultCatalogPath   = "~/.config/venuematch/catalog.toml"
	defaultOverridesPath = "~/.config/venuematch/aliases.toml"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Catalog: Catalog{Path: defaultCatalogPath},
		Aliases: Aliases{OverridesPath: defaultOverridesPath},
		Matching: Matching{
			ResolveThreshold: resolve.DefaultResolveThreshold,
			CandidateFloor:   resolve.DefaultCandidateFloor,
			TieMargin:        resolve.DefaultTieMargin,
			MaxCandidates:    resolve.DefaultMaxCandidates,
		},
		Logging: Logging{Format: defaultLogFormat, Level: defaultLogLevel},
	}
}

// normalize fills blank fields from defaults and expands home-relative
// paths.
func (c *Config) normalize() {
	d := Default()
	if strings.TrimSpace(c.Catalog.Path) == "" {
		c.Catalog.Path = d.Catalog.Path
	}
	if strings.TrimSpace(c.Aliases.OverridesPath) == "" {
		c.Aliases.OverridesPath = d.Aliases.OverridesPath
	}
	if c.Matching.ResolveThreshold == 0 {
		c.Matching.ResolveThreshold = d.Matching.ResolveThreshold
	}
	if c.Matching.CandidateFloor == 0 {
		c.Matching.CandidateFloor = d.Matching.CandidateFloor
	}
	if c.Matching.TieMargin == 0 {
		c.Matching.TieMargin = d.Matching.TieMargin
	}
	if c.Matching.MaxCandidates == 0 {
		c.Matching.MaxCandidates = d.Matching.MaxCandidates
	}
	if strings.TrimSpace(c.Logging.Format) == "" {
		c.Logging.Format = d.Logging.Format
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = d.Logging.Level
	}
	c.Catalog.Path = expandHome(c.Catalog.Path)
	c.Aliases.OverridesPath = expandHome(c.Aliases.OverridesPath)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil && home != "" {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
