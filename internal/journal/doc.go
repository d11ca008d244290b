// Package journal persists the durable record of completed moves.
//
// The journal is a UTF-8 text file holding one JSON object per line with
// exactly the keys timestamp, src, and dest. Lines are appended in
// chronological order and that order is the only record of history: undo
// always consumes the most recently appended records first. The file is
// append-only except for TruncateTail, which the undo engine calls after
// consuming records.
//
// A Store guards every read-modify-write with an advisory file lock so
// concurrent tidy invocations against the same journal cannot corrupt the
// tail truncation.
package journal
