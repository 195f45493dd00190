// Package cli implements the athena command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"athena-connect/config"
	"athena-connect/connector"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// rootOptions carries flag values and the resolved configuration shared by
// all subcommands.
type rootOptions struct {
	region         string
	database       string
	workgroup      string
	dataCatalog    string
	outputBucket   string
	outputLocation string
	pollInterval   time.Duration

	cfg    *config.Config
	logger *slog.Logger
}

// connector builds a Connector from the resolved configuration.
func (o *rootOptions) connector(ctx context.Context) (*connector.Connector, error) {
	c, err := connector.New(ctx, o.cfg, o.logger)
	if err != nil {
		return nil, err
	}
	if o.pollInterval > 0 {
		c.SetPollInterval(o.pollInterval)
	}
	return c, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "athena",
		Short:         "Athena query connector CLI",
		Long:          "Run Athena queries to completion and inspect workgroups, data catalogs, and saved queries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// .env values fill in anything missing from the environment.
			if err := config.LoadDotEnv(".env"); err != nil {
				return err
			}
			cfg := config.LoadFromEnv()

			// Precedence: flag > env > .env
			if cmd.Flags().Changed("region") {
				cfg.Region = opts.region
			}
			if cmd.Flags().Changed("database") {
				cfg.Database = opts.database
			}
			if cmd.Flags().Changed("workgroup") {
				cfg.Workgroup = opts.workgroup
			}
			if cmd.Flags().Changed("data-catalog") {
				cfg.DataCatalog = opts.dataCatalog
			}
			if cmd.Flags().Changed("output-bucket") {
				cfg.OutputBucket = opts.outputBucket
			}
			if cmd.Flags().Changed("output-location") {
				cfg.OutputLocation = opts.outputLocation
			}

			opts.cfg = cfg
			opts.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			}))
			slog.SetDefault(opts.logger)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.region, "region", "", "service region (env ATHENA_REGION)")
	pf.StringVar(&opts.database, "database", "", "database for query execution (env ATHENA_DATABASE)")
	pf.StringVar(&opts.workgroup, "workgroup", "", "workgroup for saved-query operations (env ATHENA_WORKGROUP)")
	pf.StringVar(&opts.dataCatalog, "data-catalog", "", "data catalog name (env ATHENA_DATA_CATALOG)")
	pf.StringVar(&opts.outputBucket, "output-bucket", "", "bucket receiving query results (env ATHENA_OUTPUT_BUCKET)")
	pf.StringVar(&opts.outputLocation, "output-location", "", "key prefix under the output bucket (env ATHENA_OUTPUT_LOCATION)")
	pf.DurationVar(&opts.pollInterval, "poll-interval", 0, "status polling interval (default 5s)")
	pf.String("output", "table", "output format: table, csv, or json")

	rootCmd.AddCommand(
		newQueryCmd(opts),
		newWorkgroupsCmd(opts),
		newCatalogsCmd(opts),
		newSavedQueriesCmd(opts),
		newSavedQueryCmd(opts),
	)
	return rootCmd
}
