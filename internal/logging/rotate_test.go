package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRotateIfNeededBelowThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tidy.log")
	if err := os.WriteFile(path, []byte("small"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := RotateIfNeeded(path, 1, 3); err != nil {
		t.Fatalf("RotateIfNeeded: %v", err)
	}
	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Fatal("rotation happened below threshold")
	}
}

func TestRotateIfNeededShiftsBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tidy.log")

	big := make([]byte, 1024*1024)
	if err := os.WriteFile(path, big, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path+".1", []byte("old-1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path+".2", []byte("old-2"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := RotateIfNeeded(path, 1, 2); err != nil {
		t.Fatalf("RotateIfNeeded: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("active log not rotated away")
	}
	got1, err := os.ReadFile(path + ".1")
	if err != nil {
		t.Fatalf("read .1: %v", err)
	}
	if len(got1) != len(big) {
		t.Fatalf(".1 is not the rotated active log (%d bytes)", len(got1))
	}
	got2, err := os.ReadFile(path + ".2")
	if err != nil {
		t.Fatalf("read .2: %v", err)
	}
	if string(got2) != "old-1" {
		t.Fatalf(".2 = %q, want old-1 (old .2 dropped)", got2)
	}
}

func TestRotateIfNeededDisabled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tidy.log")
	if err := os.WriteFile(path, make([]byte, 2*1024*1024), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := RotateIfNeeded(path, 0, 3); err != nil {
		t.Fatalf("RotateIfNeeded: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal("disabled rotation still moved the log")
	}
}

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "tidy.log")
	oldBackup := logFile + ".3"
	freshBackup := logFile + ".1"
	unrelated := filepath.Join(dir, "other.log")

	for _, p := range []string{logFile, oldBackup, freshBackup, unrelated} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	stale := time.Now().AddDate(0, 0, -10)
	if err := os.Chtimes(oldBackup, stale, stale); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(unrelated, stale, stale); err != nil {
		t.Fatal(err)
	}

	CleanupOldLogs(logFile, 7)

	if _, err := os.Stat(oldBackup); !os.IsNotExist(err) {
		t.Fatal("stale backup not pruned")
	}
	for _, p := range []string{logFile, freshBackup, unrelated} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("%s should survive pruning: %v", p, err)
		}
	}
}
