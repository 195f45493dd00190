package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newQueryCmd(opts *rootOptions) *cobra.Command {
	var sql string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a SQL query to completion and print the result table",
		Long: "Submit a query, poll until it reaches a terminal state, and print the " +
			"normalized result table. Blocks for the query's full runtime.",
		Example: `  # Run a query from a flag
  athena query --database sales --sql "SELECT region, total FROM revenue"

  # Pipe SQL via stdin and print CSV
  echo "SELECT region, total FROM revenue" | athena query --output csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sql == "" {
				stat, _ := os.Stdin.Stat()
				if (stat.Mode() & os.ModeCharDevice) == 0 {
					data, err := io.ReadAll(os.Stdin)
					if err != nil {
						return fmt.Errorf("read stdin: %w", err)
					}
					sql = strings.TrimSpace(string(data))
				}
			}
			if sql == "" {
				return fmt.Errorf("provide SQL via --sql flag or stdin pipe")
			}

			output := getOutputFormat(cmd)
			if err := validateOutputFormat(output); err != nil {
				return err
			}

			conn, err := opts.connector(cmd.Context())
			if err != nil {
				return err
			}
			table, err := conn.Execute(cmd.Context(), sql)
			if err != nil {
				return err
			}

			switch output {
			case "json":
				return printJSON(os.Stdout, table)
			case "csv":
				return printCSV(os.Stdout, table)
			default:
				printTable(os.Stdout, table)
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&sql, "sql", "", "SQL text to execute (reads stdin when omitted)")
	return cmd
}
