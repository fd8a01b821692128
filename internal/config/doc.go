// Package config loads the venuematch CLI configuration from TOML,
// fills defaults, and validates thresholds before they reach the
// resolver. The resolver library itself takes a Policy struct and never
// reads files.
package config
