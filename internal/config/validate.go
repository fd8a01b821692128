package config

import (
	"fmt"
	"strings"
)

// Validate rejects threshold and logging values the resolver cannot use.
func (c *Config) Validate() error {
	m := c.Matching
	if m.ResolveThreshold <= 0 || m.ResolveThreshold > 1 {
		return fmt.Errorf("matching.resolve_threshold must be in (0,1], got %v", m.ResolveThreshold)
	}
	if m.CandidateFloor <= 0 || m.CandidateFloor > 1 {
		return fmt.Errorf("matching.candidate_floor must be in (0,1], got %v", m.CandidateFloor)
	}
	if m.CandidateFloor > m.ResolveThreshold {
		return fmt.Errorf("matching.candidate_floor %v exceeds resolve_threshold %v", m.CandidateFloor, m.ResolveThreshold)
	}
	if m.TieMargin <= 0 || m.TieMargin >= 1 {
		return fmt.Errorf("matching.tie_margin must be in (0,1), got %v", m.TieMargin)
	}
	if m.MaxCandidates < 1 {
		return fmt.Errorf("matching.max_candidates must be at least 1, got %d", m.MaxCandidates)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
