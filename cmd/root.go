package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/teledex/internal/cli"
	"github.com/thenoetrevino/teledex/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "teledex",
	Short: "Teledex - a terminal contact directory",
	Long: `Teledex is a terminal contact directory. Run it without arguments
for the interactive interface, or use the subcommands for scripting.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.SearchCmd())
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.EditCmd())
	rootCmd.AddCommand(cli.ShowCmd())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cliInstance, err := cli.NewCLI()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = cliInstance.Close() }()

	model := tui.InitialModel(cliInstance.Store)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
