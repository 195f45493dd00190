package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newWorkgroupsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "workgroups",
		Short: "List workgroup names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := opts.connector(cmd.Context())
			if err != nil {
				return err
			}
			names, err := conn.Workgroups(cmd.Context())
			if err != nil {
				return err
			}
			return printNames(cmd, names)
		},
	}
}

func newCatalogsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalogs",
		Short: "List data catalog names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := opts.connector(cmd.Context())
			if err != nil {
				return err
			}
			names, err := conn.DataCatalogs(cmd.Context())
			if err != nil {
				return err
			}
			return printNames(cmd, names)
		},
	}
}

func printNames(cmd *cobra.Command, names []string) error {
	output := getOutputFormat(cmd)
	if err := validateOutputFormat(output); err != nil {
		return err
	}
	if output == "json" {
		return printJSON(os.Stdout, names)
	}
	for _, n := range names {
		fmt.Fprintln(os.Stdout, n)
	}
	return nil
}
