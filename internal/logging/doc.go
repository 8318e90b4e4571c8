// Package logging assembles the structured slog loggers used across p2mark.
//
// It owns the console and JSON handlers, level parsing and output routing, and
// a few attribute helpers so packages tag their lines with the same keys
// (component, clip, sidecar, run_id). Diagnostic logs go to stderr and,
// optionally, a log file in the state directory; the per-clip report the CLI
// prints on stdout is not a log and does not go through here.
//
// Use NewNop in tests and wherever a logger is optional.
package logging
