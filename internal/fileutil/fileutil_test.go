package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveCollisionFreePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	if got := ResolveCollision(path); got != path {
		t.Fatalf("ResolveCollision(%q) = %q, want unchanged", path, got)
	}
}

func TestResolveCollisionCountsUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	want1 := filepath.Join(dir, "report (1).pdf")
	if got := ResolveCollision(path); got != want1 {
		t.Fatalf("first collision = %q, want %q", got, want1)
	}

	if err := os.WriteFile(want1, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	want2 := filepath.Join(dir, "report (2).pdf")
	if got := ResolveCollision(path); got != want2 {
		t.Fatalf("second collision = %q, want %q", got, want2)
	}
}

func TestResolveCollisionNoExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Makefile")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "Makefile (1)")
	if got := ResolveCollision(path); got != want {
		t.Fatalf("ResolveCollision = %q, want %q", got, want)
	}
}

func TestResolveCollisionDanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "link.txt")
	if err := os.Symlink(filepath.Join(dir, "gone"), path); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	want := filepath.Join(dir, "link (1).txt")
	if got := ResolveCollision(path); got != want {
		t.Fatalf("ResolveCollision over dangling symlink = %q, want %q", got, want)
	}
}

func TestMoveFileCreatesAncestors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "Documents", "LargeFiles", "a.txt")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source still present: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read destination: %v", err)
	}
	if string(got) != "payload" {
		t.Fatalf("content mismatch: %q", got)
	}
}

func TestMoveFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := MoveFile(filepath.Join(dir, "nope"), filepath.Join(dir, "sub", "dst"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCopyFileVerified(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")

	content := []byte("verified copy content")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFileVerified(src, dst); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestCopyFileVerified_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFileVerified(filepath.Join(dir, "nonexistent"), filepath.Join(dir, "dst.bin"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestMoveFileManySiblings(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		src := filepath.Join(dir, fmt.Sprintf("f%d.txt", i))
		if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		dst := ResolveCollision(filepath.Join(dir, "out", "same.txt"))
		if err := MoveFile(src, dst); err != nil {
			t.Fatalf("MoveFile %d: %v", i, err)
		}
	}
	entries, err := os.ReadDir(filepath.Join(dir, "out"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 distinct destinations, got %d", len(entries))
	}
}

func TestCopyAndRemoveRollsBackOnRemoveFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not bind root")
	}

	dir := t.TempDir()
	lockedDir := filepath.Join(dir, "locked")
	if err := os.Mkdir(lockedDir, 0o755); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(lockedDir, "src.bin")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}
	// A read-only parent makes unlinking src fail after the copy succeeds.
	if err := os.Chmod(lockedDir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(lockedDir, 0o755)
	})

	dst := filepath.Join(dir, "dst.bin")
	if err := copyAndRemove(src, dst); err == nil {
		t.Fatal("expected error when source cannot be removed")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("destination not rolled back: stat err = %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("source should be untouched: %v", err)
	}
}
