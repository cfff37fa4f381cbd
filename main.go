package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/thenoetrevino/teledex/cmd"
	"github.com/thenoetrevino/teledex/internal/logging"
)

func main() {
	// Logs go to a file; stdout belongs to the TUI and command output
	if err := logging.Init(); err != nil {
		log.Printf("Failed to initialize logging: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
