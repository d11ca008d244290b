// Package testsupport provides shared helpers for package tests: configs
// seeded with per-test temp directories and sized file fixtures.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"tidy/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	def := config.Default()
	cfg := &def
	cfg.Paths.TargetDir = filepath.Join(base, "downloads")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.JournalFile = filepath.Join(base, "logs", "actions.jsonl")
	cfg.Categories = []config.Category{
		{Name: "Images", Extensions: []string{".jpg", ".png"}},
		{Name: "Documents", Extensions: []string{".pdf", ".txt"}},
	}
	cfg.Organize.LargeFileThresholdMB = 500
	cfg.Organize.Ignore = []string{"desktop.ini"}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := os.MkdirAll(cfg.Paths.TargetDir, 0o755); err != nil {
		t.Fatalf("create target dir: %v", err)
	}
	return cfg
}

// WithCategories overrides the category routing table.
func WithCategories(categories []config.Category) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Categories = categories
	}
}

// WithThreshold overrides the large-file threshold in megabytes.
func WithThreshold(mb int64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.LargeFileThresholdMB = mb
	}
}

// WithIgnore overrides the ignored filename list.
func WithIgnore(names []string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.Ignore = names
	}
}

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	const chunkSize = 32 * 1024
	buf := make([]byte, chunkSize)
	for i := range buf {
		buf[i] = 0x42
	}

	remaining := size
	for remaining > 0 {
		toWrite := int64(chunkSize)
		if remaining < toWrite {
			toWrite = remaining
		}
		if _, err := f.Write(buf[:toWrite]); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		remaining -= toWrite
	}
}
