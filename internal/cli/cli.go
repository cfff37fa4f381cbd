// Package cli implements the scriptable command surface. Interactive use
// goes through the TUI; these commands exist so the directory can be
// driven from shell scripts and agents.
package cli

import (
	"fmt"

	"github.com/thenoetrevino/teledex/internal/config"
	"github.com/thenoetrevino/teledex/internal/directory"
	"github.com/thenoetrevino/teledex/internal/storage"
)

// CLI represents the CLI application context
type CLI struct {
	Store   *directory.Store
	adapter storage.Adapter
}

// NewCLI loads the configuration, opens the configured storage backend and
// builds the directory store on top of it.
func NewCLI() (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	adapter, err := storage.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	store, err := directory.NewStore(adapter)
	if err != nil {
		closeAdapter(adapter)
		return nil, fmt.Errorf("failed to initialize directory: %w", err)
	}

	return &CLI{Store: store, adapter: adapter}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return closeAdapter(c.adapter)
}

func closeAdapter(adapter storage.Adapter) error {
	if closer, ok := adapter.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
