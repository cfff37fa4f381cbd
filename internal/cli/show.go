package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/teledex/internal/models"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one record",
		Long:  "Show the record with the given ID as a formatted card.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		if fmtErr := formatter.Error("BAD_ID", fmt.Sprintf("%q is not a record ID", args[0])); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(ExitUsage)
	}

	cliInstance, err := NewCLI()
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(ExitError)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	rec, err := cliInstance.Store.Get(id)
	if err != nil {
		code, exit := classify(err)
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(exit)
	}

	if jsonOutput || quietMode {
		return formatter.Record(rec)
	}

	out, err := renderCard(rec)
	if err != nil {
		// Fall back to the plain table when the terminal renderer fails
		fmt.Println(RenderTable([]models.Record{rec}))
		return nil
	}
	fmt.Print(out)
	return nil
}

// renderCard renders a record as markdown through glamour.
func renderCard(rec models.Record) (string, error) {
	var md strings.Builder
	fmt.Fprintf(&md, "# Запись %d\n\n", rec.ID)
	for _, col := range models.UserFields() {
		fmt.Fprintf(&md, "- **%s**: %s\n", col, rec.Fields[col])
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md.String())
}
