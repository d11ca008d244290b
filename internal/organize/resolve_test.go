package organize

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDestinationPlain(t *testing.T) {
	dir := t.TempDir()
	got := ResolveDestination(dir, "Images", "a.jpg", 1024, 500)
	want := filepath.Join(dir, "Images", "a.jpg")
	if got != want {
		t.Fatalf("ResolveDestination = %q, want %q", got, want)
	}
}

func TestResolveDestinationLargeFileBoundary(t *testing.T) {
	dir := t.TempDir()
	const mb = 1024 * 1024

	cases := []struct {
		name  string
		size  int64
		large bool
	}{
		{"strictly below", 500*mb - 1, false},
		{"exactly at", 500 * mb, true},
		{"above", 501 * mb, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveDestination(dir, "Videos", "v.mkv", tc.size, 500)
			want := filepath.Join(dir, "Videos", "v.mkv")
			if tc.large {
				want = filepath.Join(dir, "Videos", LargeFilesDir, "v.mkv")
			}
			if got != want {
				t.Fatalf("size %d: got %q, want %q", tc.size, got, want)
			}
		})
	}
}

func TestResolveDestinationThresholdDisabled(t *testing.T) {
	dir := t.TempDir()
	got := ResolveDestination(dir, "Videos", "v.mkv", 1<<40, 0)
	want := filepath.Join(dir, "Videos", "v.mkv")
	if got != want {
		t.Fatalf("threshold 0 should disable the rule: got %q", got)
	}
}

func TestResolveDestinationCollision(t *testing.T) {
	dir := t.TempDir()
	occupied := filepath.Join(dir, "Images", "a.jpg")
	if err := os.MkdirAll(filepath.Dir(occupied), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(occupied, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := ResolveDestination(dir, "Images", "a.jpg", 10, 0)
	want := filepath.Join(dir, "Images", "a (1).jpg")
	if got != want {
		t.Fatalf("collision not resolved: got %q, want %q", got, want)
	}
}
