// Package resolve decides whether a free-text or AI-proposed venue
// reference identifies exactly one catalog entry, several plausible ones,
// or none. The decision runs as a fixed-priority pipeline of short-circuiting
// stages (online short-circuit, trusted id, deterministic exact/slug/alias
// checks, then fuzzy scoring) and always returns one of five Outcome
// variants; no stage guesses and no stage returns an error. The whole
// package is pure: the catalog snapshot arrives by value per call and
// nothing is retained between calls.
package resolve
