package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atomicstack/trackmoney/internal/ledger"
	"github.com/atomicstack/trackmoney/internal/logging/events"
)

type jsonRecord struct {
	Date   time.Time `json:"Date"`
	Title  string    `json:"Title"`
	Amount int64     `json:"Amount"`
}

// JSONFile stores the ledger as a flat JSON array.
type JSONFile struct {
	path string
	now  func() time.Time
}

// NewJSONFile returns a store backed by the file at path.
func NewJSONFile(path string, now func() time.Time) *JSONFile {
	if now == nil {
		now = time.Now
	}
	return &JSONFile{path: path, now: now}
}

func (s *JSONFile) Name() string { return s.path }

func (s *JSONFile) Close() error { return nil }

// Load reads the records. A missing or blank file yields the seed set,
// which is saved straight away.
func (s *JSONFile) Load(ctx context.Context) ([]ledger.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		seed := Seed(s.now())
		if err := s.Save(ctx, seed); err != nil {
			return nil, err
		}
		events.Ledger.Load(s.path, len(seed), true)
		return seed, nil
	}
	var raw []jsonRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	records := make([]ledger.Record, len(raw))
	for i, r := range raw {
		records[i] = ledger.Record{Date: r.Date, Title: r.Title, Amount: r.Amount}
	}
	events.Ledger.Load(s.path, len(records), false)
	return records, nil
}

// Save replaces the file contents. The data is written to a temporary file
// in the same directory and renamed over the target.
func (s *JSONFile) Save(_ context.Context, records []ledger.Record) error {
	raw := make([]jsonRecord, len(records))
	for i, r := range records {
		raw[i] = jsonRecord{Date: r.Date, Title: r.Title, Amount: r.Amount}
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".trackmoney-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
