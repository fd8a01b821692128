// Package logging constructs slog loggers for the CLI and provides the
// attr helpers and no-op logger used across the codebase. Library code
// takes an injected *slog.Logger and never logs through a global.
package logging
