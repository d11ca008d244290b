package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tidy/internal/config"
	"tidy/internal/journal"
	"tidy/internal/logging"
	"tidy/internal/organize"
	"tidy/internal/undo"
)

type organizeParams struct {
	dryRun       bool
	verbose      bool
	previewLimit int
	jsonOut      bool
}

func newRunLogger(cfg *config.Config, verbose bool) (*slog.Logger, error) {
	logger, err := logging.NewFromConfig(cfg, verbose)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	logging.CleanupOldLogs(cfg.LogFile(), cfg.Logging.RetentionDays)
	return logger.With(logging.String(logging.FieldRunID, uuid.NewString())), nil
}

func runOrganize(cmd *cobra.Command, cfg *config.Config, params organizeParams) error {
	logger, err := newRunLogger(cfg, params.verbose)
	if err != nil {
		return err
	}

	store := journal.NewStore(cfg.Paths.JournalFile, logger)

	bar := newProgressBar(params)
	opts := []organize.Option{}
	if bar != nil {
		opts = append(opts, organize.WithObserver(func(organize.Event) {
			_ = bar.Add(1)
		}))
	}

	organizer := organize.New(cfg, store, logger, opts...)
	summary, err := organizer.Run(cmd.Context(), organize.RunOptions{
		DryRun:       params.dryRun,
		PreviewLimit: params.previewLimit,
	})
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(cmd.ErrOrStderr())
	}
	if err != nil {
		return err
	}

	if params.jsonOut {
		return writeJSON(cmd, summary)
	}
	renderSummary(cmd.OutOrStdout(), summary)
	return nil
}

func runUndo(cmd *cobra.Command, cfg *config.Config, count int, verbose, jsonOut bool) error {
	logger, err := newRunLogger(cfg, verbose)
	if err != nil {
		return err
	}

	store := journal.NewStore(cfg.Paths.JournalFile, logger)
	restored, err := undo.NewEngine(store, logger).Undo(count)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(cmd, map[string]int{"restored": restored})
	}
	if restored == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to undo.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Restored %d file(s).\n", restored)
	return nil
}
