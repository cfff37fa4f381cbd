package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/teledex/internal/directory"
	"github.com/thenoetrevino/teledex/internal/models"
	"github.com/thenoetrevino/teledex/internal/tui/huhforms"
)

// fieldFlags maps CLI flag names to schema columns. Flags stay ASCII so
// they are typeable everywhere; the schema keeps the original headers.
var fieldFlags = []struct {
	Flag   string
	Column string
	Usage  string
}{
	{"surname", models.FieldSurname, "Surname (Фамилия)"},
	{"name", models.FieldGivenName, "Given name (Имя)"},
	{"patronymic", models.FieldPatronymic, "Patronymic (Отчество)"},
	{"organization", models.FieldOrganization, "Organization (Организация)"},
	{"work-phone", models.FieldWorkPhone, "Work phone, digits only (Рабочий телефон)"},
	{"mobile-phone", models.FieldMobilePhone, "Mobile phone, digits only (Сотовый телефон)"},
}

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record",
		Long: `Add a new record to the directory.

All six fields are required and both phone numbers must contain digits
only. With --interactive the fields are collected through a form instead
of flags.

Examples:
  teledex add --surname=Ivanov --name=Ivan --patronymic=Ivanovich \
    --organization=Acme --work-phone=1234567 --mobile-phone=7654321

  # Form-driven entry
  teledex add -i

  # Capture the new ID in a script
  ID=$(teledex add --surname=... --quiet)
`,
		RunE: runAdd,
	}

	for _, f := range fieldFlags {
		cmd.Flags().String(f.Flag, "", f.Usage)
	}
	cmd.Flags().BoolP("interactive", "i", false, "Collect fields through an interactive form")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	interactive, _ := cmd.Flags().GetBool("interactive")
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	fields := make(map[string]string, len(fieldFlags))
	if interactive {
		values := huhforms.NewValues()
		if err := huhforms.AddRecordForm(values).Run(); err != nil {
			if fmtErr := formatter.Error("FORM_ABORTED", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(ExitError)
		}
		fields = values.Fields()
	} else {
		for _, f := range fieldFlags {
			value, _ := cmd.Flags().GetString(f.Flag)
			fields[f.Column] = value
		}
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

	rec, err := cliInstance.Store.Add(fields)
	if err != nil {
		code, exit := classify(err)
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(exit)
	}

	if !jsonOutput && !quietMode {
		fmt.Printf("Record %d added.\n", rec.ID)
		return nil
	}
	return formatter.Record(rec)
}

// classify maps a store error onto an output code and exit code.
func classify(err error) (string, int) {
	switch {
	case errors.Is(err, directory.ErrRecordNotFound):
		return "RECORD_NOT_FOUND", ExitNotFound
	case errors.Is(err, directory.ErrEmptyField),
		errors.Is(err, directory.ErrMissingField),
		errors.Is(err, directory.ErrInvalidPhone):
		return "VALIDATION_ERROR", ExitValidation
	default:
		return "STORAGE_ERROR", ExitError
	}
}
