package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"tidy/internal/logging"
)

// Record is one completed move. Immutable once written.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Src       string    `json:"src"`
	Dest      string    `json:"dest"`
}

// NewRecord stamps a move with the current UTC time.
func NewRecord(src, dest string) Record {
	return Record{Timestamp: time.Now().UTC(), Src: src, Dest: dest}
}

// Store owns the journal file and serializes access to it.
type Store struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// NewStore returns a Store for the journal at path. The advisory lock file
// lives next to the journal.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger.With(logging.String(logging.FieldComponent, "journal")),
	}
}

// Path returns the journal file location.
func (s *Store) Path() string {
	return s.path
}

// Append serializes rec as one JSON line and appends it to the journal,
// creating parent directories and the file itself if absent. Callers append
// only after the physical move succeeded, so the journal never references a
// move that did not happen.
func (s *Store) Append(rec Record) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock journal: %w", err)
	}
	defer s.unlock()

	rec.Timestamp = rec.Timestamp.UTC()
	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode journal record: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append journal record: %w", err)
	}
	return file.Close()
}

// ReadAll parses the journal line by line and returns records in
// chronological order. A missing journal reads as empty. Malformed lines
// are skipped with a warning, never a fatal error, and a trailing newline
// is not required.
func (s *Store) ReadAll() ([]Record, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	if err := s.lock.RLock(); err != nil {
		return nil, fmt.Errorf("lock journal: %w", err)
	}
	defer s.unlock()

	return s.readLocked()
}

// TruncateTail rewrites the journal keeping only the first len-n records.
// Malformed lines warned about during the read are dropped at this point.
func (s *Store) TruncateTail(n int) error {
	if n <= 0 {
		return nil
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock journal: %w", err)
	}
	defer s.unlock()

	records, err := s.readLocked()
	if err != nil {
		return err
	}
	if n > len(records) {
		n = len(records)
	}
	return s.rewriteLocked(records[:len(records)-n])
}

func (s *Store) readLocked() ([]Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			s.logger.Warn("skipping malformed journal line",
				logging.Int("line", lineNo),
				logging.Error(err),
			)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return records, nil
}

// rewriteLocked replaces the journal contents via a temp file and rename so
// a crash mid-truncation cannot leave a half-written journal.
func (s *Store) rewriteLocked(records []Record) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create journal temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmp)
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			_ = tmp.Close()
			return fmt.Errorf("encode journal record: %w", err)
		}
		if _, err := writer.Write(append(line, '\n')); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("write journal: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("flush journal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close journal temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace journal: %w", err)
	}
	return nil
}

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}
	return nil
}

func (s *Store) unlock() {
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("failed to release journal lock", logging.Error(err))
	}
}
