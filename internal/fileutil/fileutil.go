// Package fileutil provides the filesystem primitives behind organize and
// undo: collision-resolved destination names and safe single-file moves.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolveCollision returns path when nothing occupies it, otherwise the
// first "stem (n)suffix" variant that is free, probing n = 1, 2, ...
//
// Existence is checked against live filesystem state on every call. The
// check is racy against external writers; tidy assumes a single user on a
// local filesystem. Lstat is used so dangling symlinks count as occupied.
func ResolveCollision(path string) string {
	if !exists(path) {
		return path
	}
	suffix := filepath.Ext(path)
	stem := strings.TrimSuffix(path, suffix)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, suffix)
		if !exists(candidate) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// MoveFile relocates src to dst, creating any missing ancestor directories
// of dst. It renames when possible and falls back to a verified copy plus
// source removal when rename fails (typically a cross-device boundary).
func MoveFile(src, dst string) error {
	if dir := filepath.Dir(dst); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create destination directory: %w", err)
		}
	}

	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	if err := copyAndRemove(src, dst); err != nil {
		return fmt.Errorf("rename failed (%v); copy fallback: %w", renameErr, err)
	}
	return nil
}

// copyAndRemove is the cross-device move fallback. On any failure dst is
// removed, so a retried move never finds a stale copy occupying its
// destination.
func copyAndRemove(src, dst string) error {
	if err := CopyFileVerified(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

// CopyFileVerified streams src to dst with SHA256 + size integrity verification.
// Removes dst on mismatch.
func CopyFileVerified(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	srcSize := srcInfo.Size()

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if written != srcSize {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcSize, written)
	}

	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}

	return nil
}
