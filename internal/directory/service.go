// Package directory implements the record store: the single authoritative
// holder of the contact collection. It enforces every data invariant before
// a mutation is accepted and delegates durability to a storage adapter,
// committing the full collection after each successful change.
package directory

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/teledex/internal/models"
	"github.com/thenoetrevino/teledex/internal/storage"
)

// FieldSource supplies a candidate value for one schema column during an
// edit. The presentation layer binds this to whatever collects input (a
// form, a flag set, a prompt). An empty candidate means "keep the current
// value" — a field cannot be cleared through an edit.
type FieldSource func(column string) (string, error)

// Store owns the in-memory record collection and the next-ID counter.
// It is built for exactly one synchronous caller: no locking, one
// instance per process, every operation runs to completion before the
// next begins.
type Store struct {
	adapter storage.Adapter
	records []models.Record
	nextID  int
}

// NewStore constructs a store by loading all existing records from the
// adapter. The next ID is derived from the record count, not the maximum
// existing ID; the original tool behaves this way and external consumers
// of the data file depend on it (see DESIGN.md).
func NewStore(adapter storage.Adapter) (*Store, error) {
	records, err := adapter.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return &Store{
		adapter: adapter,
		records: records,
		nextID:  len(records) + 1,
	}, nil
}

// Len returns the number of records in the collection.
func (s *Store) Len() int {
	return len(s.records)
}

// List returns all records in insertion order. The returned records are
// clones; mutating them does not touch the collection.
func (s *Store) List() []models.Record {
	out := make([]models.Record, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Clone()
	}
	return out
}

// Get returns the record with the given ID, or ErrRecordNotFound.
func (s *Store) Get(id int) (models.Record, error) {
	for _, rec := range s.records {
		if rec.ID == id {
			return rec.Clone(), nil
		}
	}
	return models.Record{}, ErrRecordNotFound
}

// Add validates the supplied fields, assigns the next ID, appends the new
// record and commits the full collection. fields must hold a value for
// every non-ID schema column.
//
// Validation short-circuits on the first failure: a missing column, then
// any blank value, then a non-digit phone. A rejected add never consumes
// an ID. A failed save leaves the record in memory ahead of durable
// storage; the error is propagated, not swallowed.
func (s *Store) Add(fields map[string]string) (models.Record, error) {
	for _, col := range models.UserFields() {
		if _, ok := fields[col]; !ok {
			return models.Record{}, fmt.Errorf("%w: %s", ErrMissingField, col)
		}
	}
	for _, col := range models.UserFields() {
		if strings.TrimSpace(fields[col]) == "" {
			return models.Record{}, ErrEmptyField
		}
	}
	for _, col := range models.PhoneFields {
		if !ValidPhone(fields[col]) {
			return models.Record{}, ErrInvalidPhone
		}
	}

	rec := models.Record{ID: s.nextID, Fields: make(map[string]string, len(fields))}
	for _, col := range models.UserFields() {
		rec.Fields[col] = fields[col]
	}

	s.records = append(s.records, rec)
	s.nextID++

	if err := s.adapter.Save(s.records); err != nil {
		return rec.Clone(), fmt.Errorf("failed to save records: %w", err)
	}
	return rec.Clone(), nil
}

// Search returns the records where keyword appears as a substring in any
// column's text form, the rendered ID included. Matching is case-sensitive
// and the empty keyword matches everything. Original order is preserved
// and nothing is persisted.
func (s *Store) Search(keyword string) []models.Record {
	var out []models.Record
	for _, rec := range s.records {
		for _, col := range models.Schema {
			if strings.Contains(rec.Value(col), keyword) {
				out = append(out, rec.Clone())
				break
			}
		}
	}
	return out
}

// Edit updates the record with the given ID, pulling one candidate value
// per non-ID column from source. Empty candidates keep the current value.
//
// Phone candidates are validated as the loop applies them: an invalid one
// aborts the edit immediately, and columns already applied in this call
// stay changed in memory while nothing is saved. That partial-apply
// behavior is inherited from the original tool and is covered by tests;
// the next successful mutation overwrites the divergent snapshot.
func (s *Store) Edit(id int, source FieldSource) error {
	idx := -1
	for i, rec := range s.records {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrRecordNotFound
	}

	for _, col := range models.UserFields() {
		candidate, err := source(col)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", col, err)
		}
		if candidate == "" {
			continue
		}
		if models.IsPhoneField(col) && !ValidPhone(candidate) {
			return fmt.Errorf("%w: %s", ErrInvalidPhone, col)
		}
		s.records[idx].Fields[col] = candidate
	}

	if err := s.adapter.Save(s.records); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}
