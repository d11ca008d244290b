// Package logging assembles the structured slog loggers used across tidy.
//
// It owns the console and JSON handlers, level and output plumbing,
// size-based rotation of the log file, and retention pruning of rotated
// copies. It also provides a no-op logger for tests and wiring code that
// cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits lines with the same shape and routing. Loggers are passed into
// components explicitly; nothing here keeps process-wide mutable state.
package logging
