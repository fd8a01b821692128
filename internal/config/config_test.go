package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Matching.ResolveThreshold != 0.80 || cfg.Matching.MaxCandidates != 3 {
		t.Fatalf("expected default thresholds, got %+v", cfg.Matching)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[matching]
resolve_threshold = 0.9
max_candidates = 5

[logging]
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Matching.ResolveThreshold != 0.9 || cfg.Matching.MaxCandidates != 5 {
		t.Fatalf("overrides not applied: %+v", cfg.Matching)
	}
	if cfg.Matching.CandidateFloor != 0.40 {
		t.Fatalf("unset fields should keep defaults: %+v", cfg.Matching)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("logging override not applied: %+v", cfg.Logging)
	}
}

func TestLoadRejectsBadThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[matching]
resolve_threshold = 0.3
candidate_floor = 0.6
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error when floor exceeds threshold")
	}
}

func TestPolicyConversion(t *testing.T) {
	cfg := Default()
	cfg.normalize()
	policy := cfg.Policy()
	if policy.ResolveThreshold != cfg.Matching.ResolveThreshold ||
		policy.MaxCandidates != cfg.Matching.MaxCandidates {
		t.Fatalf("policy mismatch: %+v vs %+v", policy, cfg.Matching)
	}
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "resolve_threshold") {
		t.Fatalf("sample config missing expected keys:\n%s", data)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
}
