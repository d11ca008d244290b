package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RotateIfNeeded shifts path to numbered backups (path.1, path.2, ...) when
// it has grown to maxMB megabytes or more, keeping at most backups copies.
// A maxMB of 0 or fewer backups than 1 disables rotation. Called before the
// log file is opened for a run; tidy never rotates mid-run.
func RotateIfNeeded(path string, maxMB, backups int) error {
	if maxMB <= 0 || backups <= 0 {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() < int64(maxMB)*1024*1024 {
		return nil
	}

	// Shift oldest first: path.(n-1) -> path.n, ..., path -> path.1.
	oldest := fmt.Sprintf("%s.%d", path, backups)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("drop oldest log backup: %w", err)
	}
	for n := backups - 1; n >= 1; n-- {
		from := fmt.Sprintf("%s.%d", path, n)
		to := fmt.Sprintf("%s.%d", path, n+1)
		if err := os.Rename(from, to); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("shift log backup %s: %w", from, err)
		}
	}
	if err := os.Rename(path, path+".1"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

// CleanupOldLogs removes rotated backups of logFile older than
// retentionDays. A retentionDays value of 0 disables pruning. Best effort;
// unreadable directories are skipped silently.
func CleanupOldLogs(logFile string, retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	dir := filepath.Dir(logFile)
	base := filepath.Base(logFile)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, base+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		_ = os.Remove(filepath.Join(dir, name))
	}
}
