// Package logging configures the process-wide structured logger on top
// of log/slog. JSON output is the default; text output exists for local
// development.
package logging
