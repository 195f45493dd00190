package connector

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"athena-connect/config"
	"athena-connect/domain"
)

func sp(s string) *string { return &s }

// recordingGateway returns canned responses and records the requests it saw.
type recordingGateway struct {
	mu          sync.Mutex
	submitted   []domain.QueryRequest
	listedWGs   []string
	state       domain.ExecutionState
	rows        []domain.RawRow
	savedIDs    []string
	savedByID   map[string]domain.SavedQuery
	workgroups  []string
	catalogs    []string
	submitCalls int
}

func (g *recordingGateway) Submit(_ context.Context, req domain.QueryRequest) (domain.ExecutionHandle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.submitCalls++
	g.submitted = append(g.submitted, req)
	return "h1", nil
}

func (g *recordingGateway) GetStatus(_ context.Context, _ domain.ExecutionHandle) (domain.ExecutionState, error) {
	return g.state, nil
}

func (g *recordingGateway) FetchResultRows(_ context.Context, _ domain.ExecutionHandle) ([]domain.RawRow, error) {
	return g.rows, nil
}

func (g *recordingGateway) ListWorkgroups(_ context.Context) ([]string, error) {
	return g.workgroups, nil
}

func (g *recordingGateway) ListDataCatalogs(_ context.Context) ([]string, error) {
	return g.catalogs, nil
}

func (g *recordingGateway) ListSavedQueryIDs(_ context.Context, workgroup string) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listedWGs = append(g.listedWGs, workgroup)
	return g.savedIDs, nil
}

func (g *recordingGateway) GetSavedQuery(_ context.Context, id string) (domain.SavedQuery, error) {
	return g.savedByID[id], nil
}

func validConfig() *config.Config {
	return &config.Config{
		Region:         "us-west-1",
		Database:       "testing",
		Workgroup:      "primary",
		OutputBucket:   "results-bucket",
		OutputLocation: "athena_query_results/",
	}
}

func newTestConnector(cfg *config.Config, gw domain.ServiceGateway) *Connector {
	c := NewWithGateway(cfg, gw, nil)
	c.SetPollInterval(time.Millisecond)
	return c
}

func TestExecute_BuildsRequestFromConfig(t *testing.T) {
	gw := &recordingGateway{state: domain.StateSucceeded}
	c := newTestConnector(validConfig(), gw)

	_, err := c.Execute(context.Background(), "SELECT 1")
	require.NoError(t, err)

	require.Len(t, gw.submitted, 1)
	assert.Equal(t, domain.QueryRequest{
		SQL:            "SELECT 1",
		Database:       "testing",
		OutputLocation: "s3://results-bucket/athena_query_results/",
	}, gw.submitted[0])
}

func TestExecute_ReturnsNormalizedTable(t *testing.T) {
	gw := &recordingGateway{
		state: domain.StateSucceeded,
		rows: []domain.RawRow{
			{Cells: []*string{sp("region"), sp("total")}},
			{Cells: []*string{sp("west"), sp("42")}},
			{Cells: []*string{sp("orphan")}},
		},
	}
	c := newTestConnector(validConfig(), gw)

	table, err := c.Execute(context.Background(), "SELECT region, total FROM revenue")
	require.NoError(t, err)
	assert.Equal(t, domain.Table{
		{sp("region"), sp("total")},
		{sp("west"), sp("42")},
	}, table)
}

func TestExecute_EmptySQL(t *testing.T) {
	gw := &recordingGateway{}
	c := newTestConnector(validConfig(), gw)

	_, err := c.Execute(context.Background(), "")

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Zero(t, gw.submitCalls)
}

func TestExecute_MissingDatabase(t *testing.T) {
	cfg := validConfig()
	cfg.Database = ""
	gw := &recordingGateway{}
	c := newTestConnector(cfg, gw)

	_, err := c.Execute(context.Background(), "SELECT 1")

	var ce *domain.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Zero(t, gw.submitCalls, "nothing is submitted when configuration is incomplete")
}

func TestExecute_MissingOutputBucket(t *testing.T) {
	cfg := validConfig()
	cfg.OutputBucket = ""
	c := newTestConnector(cfg, &recordingGateway{})

	_, err := c.Execute(context.Background(), "SELECT 1")

	var ce *domain.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, err.Error(), "output bucket")
}

func TestSavedQueryIDs_ExplicitWorkgroupWins(t *testing.T) {
	gw := &recordingGateway{savedIDs: []string{"q1"}}
	c := newTestConnector(validConfig(), gw)

	_, err := c.SavedQueryIDs(context.Background(), "analytics")
	require.NoError(t, err)
	assert.Equal(t, []string{"analytics"}, gw.listedWGs)
}

func TestSavedQueryIDs_FallsBackToConfigured(t *testing.T) {
	gw := &recordingGateway{savedIDs: []string{"q1"}}
	c := newTestConnector(validConfig(), gw)

	_, err := c.SavedQueryIDs(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"primary"}, gw.listedWGs)
}

func TestSavedQueryIDs_NoWorkgroupAnywhere(t *testing.T) {
	cfg := validConfig()
	cfg.Workgroup = ""
	c := newTestConnector(cfg, &recordingGateway{})

	_, err := c.SavedQueryIDs(context.Background(), "")

	var ce *domain.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, err.Error(), "workgroup")
}

func TestSavedQueries_FanOutInOrder(t *testing.T) {
	gw := &recordingGateway{
		savedIDs: []string{"q1", "q2", "q3"},
		savedByID: map[string]domain.SavedQuery{
			"q1": {ID: "q1", Name: "q1-record"},
			"q2": {ID: "q2", Name: "q2-record"},
			"q3": {ID: "q3", Name: "q3-record"},
		},
	}
	c := newTestConnector(validConfig(), gw)

	queries, err := c.SavedQueries(context.Background(), "")
	require.NoError(t, err)

	names := make([]string, len(queries))
	for i, q := range queries {
		names[i] = q.Name
	}
	assert.Equal(t, []string{"q1-record", "q2-record", "q3-record"}, names)
}

func TestWorkgroupsAndCatalogs(t *testing.T) {
	gw := &recordingGateway{
		workgroups: []string{"primary", "analytics"},
		catalogs:   []string{"AwsDataCatalog"},
	}
	c := newTestConnector(validConfig(), gw)

	wgs, err := c.Workgroups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"primary", "analytics"}, wgs)

	cats, err := c.DataCatalogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"AwsDataCatalog"}, cats)
}

func TestConfigUpdatesBetweenCalls(t *testing.T) {
	gw := &recordingGateway{state: domain.StateSucceeded}
	c := newTestConnector(validConfig(), gw)

	require.NoError(t, c.Config().SetDatabase("marketing"))

	_, err := c.Execute(context.Background(), "SELECT 1")
	require.NoError(t, err)
	assert.Equal(t, "marketing", gw.submitted[0].Database)
}
