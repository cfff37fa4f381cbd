// Package storage provides the persistence adapters behind the directory
// store. Every adapter holds the full record set as a single snapshot:
// Load reads the whole collection, Save replaces it entirely.
package storage

import (
	"fmt"

	"github.com/thenoetrevino/teledex/internal/config"
	"github.com/thenoetrevino/teledex/internal/models"
)

// Adapter is the durable-storage collaborator consumed by the store.
//
// Load must return an empty collection, not an error, when no prior data
// exists. Save durably rewrites the entire collection, replacing any
// previous content; there is no append mode.
type Adapter interface {
	Load() ([]models.Record, error)
	Save(records []models.Record) error
}

// Open selects and constructs an adapter from the configured backend.
func Open(cfg *config.Config) (Adapter, error) {
	switch cfg.Storage.Backend {
	case config.BackendCSV:
		return NewCSVStore(cfg.Storage.Path), nil
	case config.BackendSQLite:
		return NewSQLiteStore(cfg.Storage.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
