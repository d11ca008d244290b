// Package organize drives a single run over the target directory: scan its
// direct-child files, classify each by extension, resolve a collision-free
// destination, move, and journal the result.
//
// Processing is sequential and synchronous. Dry-run computes and reports
// every intended action without touching the filesystem or the journal, so
// repeated dry-runs over an unchanged directory report identical summaries.
// Per-file failures are logged and skipped; they never abort the run.
package organize
