package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/thenoetrevino/teledex/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// recordPayload is the JSON shape of a record: the integer ID plus the
// user-supplied columns keyed by their schema names.
type recordPayload struct {
	ID     int               `json:"id"`
	Fields map[string]string `json:"fields"`
}

func payload(rec models.Record) recordPayload {
	return recordPayload{ID: rec.ID, Fields: rec.Fields}
}

// Records outputs a record list in the selected mode: IDs only for quiet,
// a JSON envelope for JSON, a bordered table otherwise.
func (f *OutputFormatter) Records(records []models.Record) error {
	if f.Quiet {
		for _, rec := range records {
			fmt.Printf("%d\n", rec.ID)
		}
		return nil
	}

	if f.JSON {
		payloads := make([]recordPayload, len(records))
		for i, rec := range records {
			payloads[i] = payload(rec)
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    payloads,
		})
	}

	fmt.Println(RenderTable(records))
	return nil
}

// Record outputs a single record.
func (f *OutputFormatter) Record(rec models.Record) error {
	if f.Quiet {
		fmt.Printf("%d\n", rec.ID)
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    payload(rec),
		})
	}

	fmt.Println(RenderTable([]models.Record{rec}))
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    code,
				"message": message,
			},
		})
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	return nil
}

// RenderTable renders records as a bordered table with the schema header.
func RenderTable(records []models.Record) string {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = rec.Row()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(models.Schema...).
		Rows(rows...)

	return t.String()
}
