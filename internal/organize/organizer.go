package organize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"tidy/internal/classify"
	"tidy/internal/config"
	"tidy/internal/fileutil"
	"tidy/internal/journal"
	"tidy/internal/logging"
)

// ErrTargetMissing reports that the configured target directory does not
// exist. Fatal for an organize run; nothing is touched.
var ErrTargetMissing = errors.New("target directory does not exist")

// RunOptions controls a single organize invocation.
type RunOptions struct {
	// DryRun computes and reports intended actions without mutating the
	// filesystem or the journal.
	DryRun bool
	// PreviewLimit stops enumeration after this many files when positive.
	PreviewLimit int
}

// Event describes the outcome for one file, delivered to the observer as
// the run progresses.
type Event struct {
	Name     string
	Category string
	Dest     string
	Size     int64
	DryRun   bool
	Err      error
}

// Observer receives one Event per attempted file.
type Observer func(Event)

// Option customizes an Organizer.
type Option func(*Organizer)

// WithObserver wires a per-file callback, used by the CLI to drive progress
// output.
func WithObserver(fn Observer) Option {
	return func(o *Organizer) {
		o.observer = fn
	}
}

// Organizer routes the target directory's files into category subfolders.
type Organizer struct {
	cfg      *config.Config
	classes  *classify.Map
	store    *journal.Store
	logger   *slog.Logger
	observer Observer
}

// New constructs an organizer from configuration, the journal store, and a
// logger.
func New(cfg *config.Config, store *journal.Store, logger *slog.Logger, opts ...Option) *Organizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	categories := make([]classify.Category, 0, len(cfg.Categories))
	for _, category := range cfg.Categories {
		categories = append(categories, classify.Category{
			Name:       category.Name,
			Extensions: category.Extensions,
		})
	}
	organizer := &Organizer{
		cfg:     cfg,
		classes: classify.NewMap(categories),
		store:   store,
		logger:  logger.With(logging.String(logging.FieldComponent, "organize")),
	}
	for _, opt := range opts {
		opt(organizer)
	}
	return organizer
}

// Run scans the target directory and processes each file in enumeration
// order. It returns the per-category summary; per-file failures are logged
// and reflected in Summary.Failed but do not abort the run.
func (o *Organizer) Run(ctx context.Context, opts RunOptions) (*Summary, error) {
	target := o.cfg.Paths.TargetDir
	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTargetMissing, target)
		}
		return nil, fmt.Errorf("stat target directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrTargetMissing, target)
	}

	files, err := o.scan(target)
	if err != nil {
		return nil, err
	}
	o.logger.Info("found files to inspect",
		logging.Int("count", len(files)),
		logging.String("target", target),
		logging.Bool("dry_run", opts.DryRun),
	)

	summary := newSummary(o.classes.Names(), opts.DryRun)
	for _, entry := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		o.processFile(target, entry, opts, summary)
		if opts.PreviewLimit > 0 && summary.Processed >= opts.PreviewLimit {
			summary.Partial = true
			o.logger.Info("preview limit reached; stopping early",
				logging.Int("limit", opts.PreviewLimit),
			)
			break
		}
	}

	o.logger.Info("run finished",
		logging.Int("processed", summary.Processed),
		logging.Int("placed", summary.Placed()),
		logging.Int("failed", summary.Failed),
	)
	return summary, nil
}

// scan enumerates direct-child regular files of target, excluding ignored
// names. Subdirectories and non-regular entries are not visited and not
// counted.
func (o *Organizer) scan(target string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("read target directory: %w", err)
	}

	ignored := make(map[string]struct{}, len(o.cfg.Organize.Ignore))
	for _, name := range o.cfg.Organize.Ignore {
		ignored[name] = struct{}{}
	}

	files := entries[:0]
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if _, skip := ignored[entry.Name()]; skip {
			o.logger.Debug("ignoring file", logging.String(logging.FieldFile, entry.Name()))
			continue
		}
		files = append(files, entry)
	}
	return files, nil
}

func (o *Organizer) processFile(target string, entry os.DirEntry, opts RunOptions, summary *Summary) {
	name := entry.Name()
	src := filepath.Join(target, name)
	summary.Processed++

	info, err := entry.Info()
	if err != nil {
		// Source vanished between enumeration and processing.
		o.logger.Warn("skipping unreadable file",
			logging.String(logging.FieldFile, name),
			logging.Error(err),
		)
		summary.Failed++
		o.notify(Event{Name: name, DryRun: opts.DryRun, Err: err})
		return
	}

	ext := strings.ToLower(filepath.Ext(name))
	category := o.classes.Classify(ext)
	threshold := o.cfg.Organize.LargeFileThresholdMB
	if isLarge(info.Size(), threshold) {
		o.logger.Debug("large file",
			logging.String(logging.FieldFile, name),
			logging.String("size", humanize.IBytes(uint64(info.Size()))),
		)
	}
	dest := ResolveDestination(target, category, name, info.Size(), threshold)

	if opts.DryRun {
		o.logger.Info("dry run: would move",
			logging.String(logging.FieldFile, name),
			logging.String(logging.FieldCategory, category),
			logging.String("dest", dest),
		)
		summary.add(category)
		o.notify(Event{Name: name, Category: category, Dest: dest, Size: info.Size(), DryRun: true})
		return
	}

	if err := fileutil.MoveFile(src, dest); err != nil {
		o.logger.Error("move failed",
			logging.String(logging.FieldFile, name),
			logging.Error(err),
		)
		summary.Failed++
		o.notify(Event{Name: name, Category: category, Dest: dest, Size: info.Size(), Err: err})
		return
	}
	// Append only after the physical move succeeded so the journal never
	// references a move that did not happen.
	if err := o.store.Append(journal.NewRecord(src, dest)); err != nil {
		o.logger.Error("journal append failed; move will not be undoable",
			logging.String(logging.FieldFile, name),
			logging.String("dest", dest),
			logging.Error(err),
		)
	}
	summary.add(category)
	o.logger.Info("moved",
		logging.String(logging.FieldFile, name),
		logging.String(logging.FieldCategory, category),
		logging.String("dest", dest),
	)
	o.notify(Event{Name: name, Category: category, Dest: dest, Size: info.Size()})
}

func (o *Organizer) notify(event Event) {
	if o.observer != nil {
		o.observer(event)
	}
}
