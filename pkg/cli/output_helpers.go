package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"athena-connect/domain"
)

// getOutputFormat returns the effective output format from the root command's
// persistent flags.
func getOutputFormat(cmd *cobra.Command) string {
	v, _ := cmd.Root().PersistentFlags().GetString("output")
	return v
}

func validateOutputFormat(output string) error {
	if output != "" && output != "table" && output != "csv" && output != "json" {
		return fmt.Errorf("unsupported output format %q: use 'table', 'csv', or 'json'", output)
	}
	return nil
}

// printJSON writes v as indented JSON. Nil table cells become JSON null.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printCSV writes the table as CSV. Nil cells become empty fields.
func printCSV(w io.Writer, table domain.Table) error {
	cw := csv.NewWriter(w)
	for _, row := range table {
		record := make([]string, len(row))
		for i, cell := range row {
			if cell != nil {
				record[i] = *cell
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// printTable writes tab-separated rows. Nil cells render as NULL to keep
// them distinguishable from empty strings.
func printTable(w io.Writer, table domain.Table) {
	for _, row := range table {
		parts := make([]string, len(row))
		for i, cell := range row {
			if cell == nil {
				parts[i] = "NULL"
			} else {
				parts[i] = *cell
			}
		}
		fmt.Fprintln(w, strings.Join(parts, "\t"))
	}
	if len(table) == 0 {
		fmt.Fprintln(os.Stderr, "(no rows)")
	}
}
