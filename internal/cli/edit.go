package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/teledex/internal/directory"
	"github.com/thenoetrevino/teledex/internal/tui/huhforms"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a record",
		Long: `Edit the record with the given ID.

Only the fields passed as flags change; an omitted or empty flag keeps
the current value, so a field can never be cleared through edit. With
--interactive the changes are collected through a form showing the
current values.

Examples:
  teledex edit 1 --mobile-phone=000
  teledex edit 1 -i
`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	for _, f := range fieldFlags {
		cmd.Flags().String(f.Flag, "", f.Usage)
	}
	cmd.Flags().BoolP("interactive", "i", false, "Collect changes through an interactive form")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	interactive, _ := cmd.Flags().GetBool("interactive")
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

	var source directory.FieldSource
	if interactive {
		current, err := cliInstance.Store.Get(id)
		if err != nil {
			code, exit := classify(err)
			if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(exit)
		}

		values := huhforms.NewValues()
		if err := huhforms.EditRecordForm(current, values).Run(); err != nil {
			if fmtErr := formatter.Error("FORM_ABORTED", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(ExitError)
		}
		source = directory.MapSource(values.Fields())
	} else {
		changes := make(map[string]string, len(fieldFlags))
		for _, f := range fieldFlags {
			value, _ := cmd.Flags().GetString(f.Flag)
			if value != "" {
				changes[f.Column] = value
			}
		}
		source = directory.MapSource(changes)
	}

	if err := cliInstance.Store.Edit(id, source); err != nil {
		code, exit := classify(err)
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(exit)
	}

	rec, err := cliInstance.Store.Get(id)
	if err != nil {
		return err
	}
	if !jsonOutput && !quietMode {
		fmt.Printf("Record %d updated.\n", rec.ID)
		return nil
	}
	return formatter.Record(rec)
}
