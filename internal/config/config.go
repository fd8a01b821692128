package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"venuematch/internal/resolve"
)

//go:embed sample_config.toml
var sampleConfig string

// Config is the root venuematch configuration.
type Config struct {
	Catalog  Catalog  `toml:"catalog"`
	Aliases  Aliases  `toml:"aliases"`
	Matching Matching `toml:"matching"`
	Logging  Logging  `toml:"logging"`
}

// Catalog locates the venue catalog snapshot file.
type Catalog struct {
	Path string `toml:"path"`
}

// Aliases locates the optional curated alias overrides file.
type Aliases struct {
	OverridesPath string `toml:"overrides_path"`
}

// Matching carries the resolver thresholds.
type Matching struct {
	ResolveThreshold float64 `toml:"resolve_threshold"`
	CandidateFloor   float64 `toml:"candidate_floor"`
	TieMargin        float64 `toml:"tie_margin"`
	MaxCandidates    int     `toml:"max_candidates"`
}

// Logging carries log output settings.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Load reads the config file at path, layering it over defaults. A missing
// file yields plain defaults rather than an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Policy converts the matching section into resolver thresholds.
func (c *Config) Policy() resolve.Policy {
	return resolve.Policy{
		ResolveThreshold: c.Matching.ResolveThreshold,
		CandidateFloor:   c.Matching.CandidateFloor,
		TieMargin:        c.Matching.TieMargin,
		MaxCandidates:    c.Matching.MaxCandidates,
	}
}

// WriteSample writes the annotated sample config to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
