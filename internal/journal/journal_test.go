package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "logs", "actions.jsonl"), nil)
}

func TestAppendAndReadAll(t *testing.T) {
	store := newStore(t)

	first := NewRecord("/dl/a.jpg", "/dl/Images/a.jpg")
	second := NewRecord("/dl/b.png", "/dl/Images/b.png")
	if err := store.Append(first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := store.Append(second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	records, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Src != first.Src || records[1].Src != second.Src {
		t.Fatalf("order not chronological: %+v", records)
	}
	if records[0].Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp not UTC: %v", records[0].Timestamp)
	}
}

func TestJournalLineFormat(t *testing.T) {
	store := newStore(t)
	rec := Record{
		Timestamp: time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC),
		Src:       "/dl/a.jpg",
		Dest:      "/dl/Images/a.jpg",
	}
	if err := store.Append(rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read journal: %v", err)
	}
	line := strings.TrimSuffix(string(data), "\n")
	want := `{"timestamp":"2026-08-26T10:30:00Z","src":"/dl/a.jpg","dest":"/dl/Images/a.jpg"}`
	if line != want {
		t.Fatalf("journal line = %s, want %s", line, want)
	}
}

func TestReadAllMissingJournal(t *testing.T) {
	store := newStore(t)
	records, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing journal: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty, got %d records", len(records))
	}
}

func TestReadAllSkipsMalformedLines(t *testing.T) {
	store := newStore(t)
	if err := store.Append(NewRecord("/dl/a.jpg", "/dl/Images/a.jpg")); err != nil {
		t.Fatal(err)
	}

	f, err := os.OpenFile(store.Path(), os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("{not json}\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()
	if err := store.Append(NewRecord("/dl/b.png", "/dl/Images/b.png")); err != nil {
		t.Fatal(err)
	}

	records, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (malformed skipped)", len(records))
	}
}

func TestReadAllToleratesMissingFinalNewline(t *testing.T) {
	store := newStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	contents := `{"timestamp":"2026-08-26T10:30:00Z","src":"/dl/a.jpg","dest":"/dl/Images/a.jpg"}`
	if err := os.WriteFile(store.Path(), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(records) != 1 || records[0].Src != "/dl/a.jpg" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestTruncateTail(t *testing.T) {
	store := newStore(t)
	for _, name := range []string{"a", "b", "c"} {
		if err := store.Append(NewRecord("/dl/"+name, "/dl/Others/"+name)); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.TruncateTail(2); err != nil {
		t.Fatalf("TruncateTail: %v", err)
	}

	records, err := store.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Src != "/dl/a" {
		t.Fatalf("tail truncation kept wrong records: %+v", records)
	}
}

func TestTruncateTailBeyondLength(t *testing.T) {
	store := newStore(t)
	if err := store.Append(NewRecord("/dl/a", "/dl/Others/a")); err != nil {
		t.Fatal(err)
	}
	if err := store.TruncateTail(5); err != nil {
		t.Fatalf("TruncateTail: %v", err)
	}
	records, err := store.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty journal, got %+v", records)
	}
}

func TestTruncateTailZeroIsNoop(t *testing.T) {
	store := newStore(t)
	if err := store.Append(NewRecord("/dl/a", "/dl/Others/a")); err != nil {
		t.Fatal(err)
	}
	if err := store.TruncateTail(0); err != nil {
		t.Fatalf("TruncateTail(0): %v", err)
	}
	records, err := store.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("noop truncation changed the journal: %+v", records)
	}
}
