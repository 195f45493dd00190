// Package connector exposes the public facade over the Athena query service:
// query execution run to completion, plus workgroup, data-catalog, and
// saved-query reads.
package connector

import (
	"context"
	"log/slog"
	"time"

	"athena-connect/config"
	"athena-connect/domain"
	"athena-connect/executor"
	"athena-connect/gateway"
)

// Connector composes the configuration, the service gateway, and the
// execution orchestrator. The gateway is owned by the Connector instance;
// there is no process-wide client. Configuration is shared read-only across
// calls; each call owns its own execution handle.
type Connector struct {
	cfg  *config.Config
	gw   domain.ServiceGateway
	exec *executor.Executor
}

// New builds a Connector for the given configuration. Only the region is
// required up front; every other field is validated by the first operation
// that needs it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Connector, error) {
	gw, err := gateway.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Connector{cfg: cfg, gw: gw, exec: executor.New(gw, logger)}, nil
}

// NewWithGateway builds a Connector over an existing gateway. Used by tests
// and by callers bringing their own transport.
func NewWithGateway(cfg *config.Config, gw domain.ServiceGateway, logger *slog.Logger) *Connector {
	return &Connector{cfg: cfg, gw: gw, exec: executor.New(gw, logger)}
}

// SetPollInterval overrides the execution status polling interval.
func (c *Connector) SetPollInterval(d time.Duration) {
	c.exec.SetPollInterval(d)
}

// Config returns the connector's configuration for field updates between
// calls.
func (c *Connector) Config() *config.Config { return c.cfg }

// Execute runs a SQL query to completion and returns the normalized result
// table. The database and result location must be configured; missing fields
// fail here with a ConfigurationError before anything is submitted.
//
// The call blocks for the query's full runtime. Cancel ctx to abort the
// poll loop early.
func (c *Connector) Execute(ctx context.Context, sql string) (domain.Table, error) {
	if sql == "" {
		return nil, domain.ErrValidation("sql query is required")
	}
	database, err := c.cfg.DatabaseName()
	if err != nil {
		return nil, err
	}
	location, err := c.cfg.ResultLocation()
	if err != nil {
		return nil, err
	}

	return c.exec.RunToCompletion(ctx, domain.QueryRequest{
		SQL:            sql,
		Database:       database,
		OutputLocation: location,
	})
}

// Workgroups returns the names of all workgroups.
func (c *Connector) Workgroups(ctx context.Context) ([]string, error) {
	return c.gw.ListWorkgroups(ctx)
}

// DataCatalogs returns the names of all data catalogs.
func (c *Connector) DataCatalogs(ctx context.Context) ([]string, error) {
	return c.gw.ListDataCatalogs(ctx)
}

// SavedQueryIDs returns the saved-query ids in a workgroup. An explicit
// workgroup wins over the configured default.
func (c *Connector) SavedQueryIDs(ctx context.Context, workgroup string) ([]string, error) {
	wg, err := c.resolveWorkgroup(workgroup)
	if err != nil {
		return nil, err
	}
	return c.gw.ListSavedQueryIDs(ctx, wg)
}

// SavedQueries fetches every saved query in a workgroup, fanning out one
// read per id. Results come back in id order.
func (c *Connector) SavedQueries(ctx context.Context, workgroup string) ([]domain.SavedQuery, error) {
	wg, err := c.resolveWorkgroup(workgroup)
	if err != nil {
		return nil, err
	}
	return c.exec.FetchSavedQueries(ctx, wg)
}

// SavedQuery returns one saved query by id.
func (c *Connector) SavedQuery(ctx context.Context, id string) (domain.SavedQuery, error) {
	return c.gw.GetSavedQuery(ctx, id)
}

func (c *Connector) resolveWorkgroup(workgroup string) (string, error) {
	if workgroup != "" {
		return workgroup, nil
	}
	return c.cfg.WorkgroupName()
}
