// Package alias builds the nickname index used for venue matching. Each
// catalog entry contributes a generated acronym ("Long Table Brewhouse" ->
// "ltb"), and curated overrides keyed by slug contribute hand-picked
// nicknames the acronym rule cannot derive. When two venues produce the
// same alias the index keeps both; resolution later reports the collision
// as ambiguous instead of picking a winner.
package alias
