package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSavedQueriesCmd(opts *rootOptions) *cobra.Command {
	var idsOnly bool

	cmd := &cobra.Command{
		Use:   "saved-queries",
		Short: "List saved queries in a workgroup",
		Long: "Fetch every saved query in the workgroup (one read per id, fanned out " +
			"over a bounded worker pool). Use --ids-only to list ids without fetching records.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := opts.connector(cmd.Context())
			if err != nil {
				return err
			}

			if idsOnly {
				ids, err := conn.SavedQueryIDs(cmd.Context(), opts.workgroup)
				if err != nil {
					return err
				}
				return printNames(cmd, ids)
			}

			queries, err := conn.SavedQueries(cmd.Context(), opts.workgroup)
			if err != nil {
				return err
			}

			output := getOutputFormat(cmd)
			if err := validateOutputFormat(output); err != nil {
				return err
			}
			if output == "json" {
				return printJSON(os.Stdout, queries)
			}
			for _, q := range queries {
				fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", q.ID, q.Name, q.Database)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&idsOnly, "ids-only", false, "list saved-query ids without fetching records")
	return cmd
}

func newSavedQueryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "saved-query <id>",
		Short: "Show one saved query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := opts.connector(cmd.Context())
			if err != nil {
				return err
			}
			q, err := conn.SavedQuery(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			output := getOutputFormat(cmd)
			if err := validateOutputFormat(output); err != nil {
				return err
			}
			if output == "json" {
				return printJSON(os.Stdout, q)
			}
			fmt.Fprintf(os.Stdout, "ID:          %s\n", q.ID)
			fmt.Fprintf(os.Stdout, "Name:        %s\n", q.Name)
			fmt.Fprintf(os.Stdout, "Database:    %s\n", q.Database)
			fmt.Fprintf(os.Stdout, "Workgroup:   %s\n", q.Workgroup)
			if q.Description != "" {
				fmt.Fprintf(os.Stdout, "Description: %s\n", q.Description)
			}
			fmt.Fprintf(os.Stdout, "SQL:\n%s\n", q.SQL)
			return nil
		},
	}
}
