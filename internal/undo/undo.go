// Package undo reverses completed moves using the action journal.
package undo

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"tidy/internal/fileutil"
	"tidy/internal/journal"
	"tidy/internal/logging"
)

// Engine consumes journal records from the tail and restores files to
// their original locations.
type Engine struct {
	store  *journal.Store
	logger *slog.Logger
}

// NewEngine constructs the undo engine.
func NewEngine(store *journal.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		store:  store,
		logger: logger.With(logging.String(logging.FieldComponent, "undo")),
	}
}

// Undo reverses up to n of the most recent journal records, newest first,
// and returns the number actually restored. Records whose preconditions no
// longer hold are skipped, which guards against double-undo and external
// interference. Undo is a best-effort single pass: every selected record is
// removed from the journal tail afterwards, restored or not.
func (e *Engine) Undo(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	records, err := e.store.ReadAll()
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		e.logger.Info("nothing to undo", logging.String("journal", e.store.Path()))
		return 0, nil
	}
	if n > len(records) {
		n = len(records)
	}

	selected := records[len(records)-n:]
	restored := 0
	for i := len(selected) - 1; i >= 0; i-- {
		rec := selected[i]
		if !canRestore(rec) {
			e.logger.Info("skipping journal record",
				logging.String("src", rec.Src),
				logging.String("dest", rec.Dest),
			)
			continue
		}
		if err := fileutil.MoveFile(rec.Dest, rec.Src); err != nil {
			e.logger.Error("restore failed",
				logging.String("src", rec.Src),
				logging.String("dest", rec.Dest),
				logging.Error(err),
			)
			continue
		}
		restored++
		e.logger.Info("restored",
			logging.String("src", rec.Src),
			logging.String("dest", rec.Dest),
		)
	}

	if err := e.store.TruncateTail(n); err != nil {
		return restored, err
	}

	e.logger.Info("undo finished",
		logging.Int("restored", restored),
		logging.Int("consumed", n),
	)
	return restored, nil
}

// canRestore reports whether a record's reversal preconditions hold: the
// destination still exists and nothing reoccupied the original source.
// Checks stat live filesystem state and are racy against external mutation;
// tidy assumes a single user per target directory.
func canRestore(rec journal.Record) bool {
	if _, err := os.Lstat(rec.Dest); err != nil {
		return false
	}
	if _, err := os.Lstat(rec.Src); !errors.Is(err, fs.ErrNotExist) {
		return false
	}
	return true
}
