// Package gateway implements the remote boundary to the AWS Athena service.
package gateway

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
	"github.com/google/uuid"

	"athena-connect/config"
	"athena-connect/domain"
)

// Compile-time check: AthenaGateway implements the service gateway boundary.
var _ domain.ServiceGateway = (*AthenaGateway)(nil)

// AthenaAPI is the subset of the Athena SDK client used by the gateway.
type AthenaAPI interface {
	StartQueryExecution(ctx context.Context, params *athena.StartQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error)
	GetQueryExecution(ctx context.Context, params *athena.GetQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.GetQueryExecutionOutput, error)
	GetQueryResults(ctx context.Context, params *athena.GetQueryResultsInput, optFns ...func(*athena.Options)) (*athena.GetQueryResultsOutput, error)
	ListWorkGroups(ctx context.Context, params *athena.ListWorkGroupsInput, optFns ...func(*athena.Options)) (*athena.ListWorkGroupsOutput, error)
	ListDataCatalogs(ctx context.Context, params *athena.ListDataCatalogsInput, optFns ...func(*athena.Options)) (*athena.ListDataCatalogsOutput, error)
	ListNamedQueries(ctx context.Context, params *athena.ListNamedQueriesInput, optFns ...func(*athena.Options)) (*athena.ListNamedQueriesOutput, error)
	GetNamedQuery(ctx context.Context, params *athena.GetNamedQueryInput, optFns ...func(*athena.Options)) (*athena.GetNamedQueryOutput, error)
}

// AthenaGateway wraps the Athena SDK client behind the ServiceGateway
// boundary. Every remote failure is wrapped exactly once as a TransportError
// carrying the operation name, the handle when applicable, and the SDK error
// as cause.
type AthenaGateway struct {
	client AthenaAPI
}

// New creates a gateway for the configured region. A static credential pair
// is used when both halves are present; otherwise credentials resolve through
// the ambient default chain (environment, shared config, instance role).
func New(ctx context.Context, cfg *config.Config) (*AthenaGateway, error) {
	if cfg.Region == "" {
		return nil, domain.ErrConfiguration("region")
	}

	if cfg.HasStaticCredentials() {
		client := athena.New(athena.Options{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID, cfg.SecretAccessKey, "",
			),
		})
		return &AthenaGateway{client: client}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, domain.ErrTransport("load default credentials", "", err)
	}
	return &AthenaGateway{client: athena.NewFromConfig(awsCfg)}, nil
}

// NewWithClient creates a gateway over an existing Athena API client.
func NewWithClient(client AthenaAPI) *AthenaGateway {
	return &AthenaGateway{client: client}
}

// Submit starts a query execution and returns its handle. A fresh client
// request token is attached so the service deduplicates accidental
// resubmission; the gateway itself never retries this call.
func (g *AthenaGateway) Submit(ctx context.Context, req domain.QueryRequest) (domain.ExecutionHandle, error) {
	out, err := g.client.StartQueryExecution(ctx, &athena.StartQueryExecutionInput{
		QueryString: aws.String(req.SQL),
		QueryExecutionContext: &types.QueryExecutionContext{
			Database: aws.String(req.Database),
		},
		ResultConfiguration: &types.ResultConfiguration{
			OutputLocation: aws.String(req.OutputLocation),
		},
		ClientRequestToken: aws.String(uuid.NewString()),
	})
	if err != nil {
		return "", domain.ErrTransport("start query execution", "", err)
	}
	return domain.ExecutionHandle(aws.ToString(out.QueryExecutionId)), nil
}

// GetStatus returns the current execution state for a handle.
func (g *AthenaGateway) GetStatus(ctx context.Context, handle domain.ExecutionHandle) (domain.ExecutionState, error) {
	out, err := g.client.GetQueryExecution(ctx, &athena.GetQueryExecutionInput{
		QueryExecutionId: aws.String(string(handle)),
	})
	if err != nil {
		return "", domain.ErrTransport("get query execution", handle, err)
	}
	if out.QueryExecution == nil || out.QueryExecution.Status == nil {
		return "", domain.ErrTransport("get query execution", handle,
			domain.ErrValidation("response carried no execution status"))
	}
	return domain.ExecutionState(out.QueryExecution.Status.State), nil
}

// FetchResultRows returns the first page of raw result rows for an
// execution. Continuation tokens are not followed: result sets larger than
// one page are truncated, matching the connector's documented behavior.
func (g *AthenaGateway) FetchResultRows(ctx context.Context, handle domain.ExecutionHandle) ([]domain.RawRow, error) {
	out, err := g.client.GetQueryResults(ctx, &athena.GetQueryResultsInput{
		QueryExecutionId: aws.String(string(handle)),
	})
	if err != nil {
		return nil, domain.ErrTransport("get query results", handle, err)
	}
	if out.ResultSet == nil {
		return nil, nil
	}

	rows := make([]domain.RawRow, 0, len(out.ResultSet.Rows))
	for _, r := range out.ResultSet.Rows {
		cells := make([]*string, 0, len(r.Data))
		for _, d := range r.Data {
			cells = append(cells, d.VarCharValue)
		}
		rows = append(rows, domain.RawRow{Cells: cells})
	}
	return rows, nil
}

// ListWorkgroups returns the names of all workgroups.
func (g *AthenaGateway) ListWorkgroups(ctx context.Context) ([]string, error) {
	out, err := g.client.ListWorkGroups(ctx, &athena.ListWorkGroupsInput{})
	if err != nil {
		return nil, domain.ErrTransport("list workgroups", "", err)
	}
	names := make([]string, 0, len(out.WorkGroups))
	for _, wg := range out.WorkGroups {
		names = append(names, aws.ToString(wg.Name))
	}
	return names, nil
}

// ListDataCatalogs returns the names of all data catalogs.
func (g *AthenaGateway) ListDataCatalogs(ctx context.Context) ([]string, error) {
	out, err := g.client.ListDataCatalogs(ctx, &athena.ListDataCatalogsInput{})
	if err != nil {
		return nil, domain.ErrTransport("list data catalogs", "", err)
	}
	names := make([]string, 0, len(out.DataCatalogsSummary))
	for _, c := range out.DataCatalogsSummary {
		names = append(names, aws.ToString(c.CatalogName))
	}
	return names, nil
}

// ListSavedQueryIDs returns the ids of saved queries in a workgroup.
func (g *AthenaGateway) ListSavedQueryIDs(ctx context.Context, workgroup string) ([]string, error) {
	out, err := g.client.ListNamedQueries(ctx, &athena.ListNamedQueriesInput{
		WorkGroup: aws.String(workgroup),
	})
	if err != nil {
		return nil, domain.ErrTransport("list saved queries", "", err)
	}
	return out.NamedQueryIds, nil
}

// GetSavedQuery returns one saved query by id.
func (g *AthenaGateway) GetSavedQuery(ctx context.Context, id string) (domain.SavedQuery, error) {
	if id == "" {
		return domain.SavedQuery{}, domain.ErrValidation("query id is required")
	}
	out, err := g.client.GetNamedQuery(ctx, &athena.GetNamedQueryInput{
		NamedQueryId: aws.String(id),
	})
	if err != nil {
		return domain.SavedQuery{}, domain.ErrTransport("get saved query", "", err)
	}
	if out.NamedQuery == nil {
		return domain.SavedQuery{}, domain.ErrTransport("get saved query", "",
			domain.ErrValidation("response carried no saved query"))
	}
	nq := out.NamedQuery
	return domain.SavedQuery{
		ID:          aws.ToString(nq.NamedQueryId),
		Name:        aws.ToString(nq.Name),
		Description: aws.ToString(nq.Description),
		Database:    aws.ToString(nq.Database),
		Workgroup:   aws.ToString(nq.WorkGroup),
		SQL:         aws.ToString(nq.QueryString),
	}, nil
}
