package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/teledex/internal/models"
)

// CSVStore persists the record collection as a single CSV file with the
// schema header in the first row.
type CSVStore struct {
	path string
}

// NewCSVStore creates a CSV adapter backed by the given file path.
// The file is created on the first save.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Load reads the full collection from the CSV file. A missing file is not
// an error: it loads as an empty collection.
func (s *CSVStore) Load() ([]models.Record, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return []models.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return []models.Record{}, nil
	}

	// First row is the schema header.
	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec, err := models.FromRow(row)
		if err != nil {
			return nil, fmt.Errorf("bad row in %s: %w", s.path, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save rewrites the whole file with the given collection. The snapshot is
// written to a temp file in the same directory and renamed over the old
// one so a crash mid-write never leaves a torn file behind.
func (s *CSVStore) Save(records []models.Record) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, models.Schema)
	for _, rec := range records {
		rows = append(rows, rec.Row())
	}
	if err := writer.WriteAll(rows); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
