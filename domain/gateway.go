package domain

import "context"

// ServiceGateway is the boundary wrapping all remote calls to the backing
// managed query service. Implementations wrap every failure as a
// TransportError; callers never see raw SDK errors.
type ServiceGateway interface {
	// Submit starts a query execution and returns its handle. Submission is
	// not idempotent and must never be retried by callers.
	Submit(ctx context.Context, req QueryRequest) (ExecutionHandle, error)

	// GetStatus returns the current execution state for a handle.
	GetStatus(ctx context.Context, handle ExecutionHandle) (ExecutionState, error)

	// FetchResultRows returns the first page of raw result rows for a
	// succeeded execution. Continuation tokens are not followed.
	FetchResultRows(ctx context.Context, handle ExecutionHandle) ([]RawRow, error)

	// ListWorkgroups returns the names of all workgroups.
	ListWorkgroups(ctx context.Context) ([]string, error)

	// ListDataCatalogs returns the names of all data catalogs.
	ListDataCatalogs(ctx context.Context) ([]string, error)

	// ListSavedQueryIDs returns the ids of saved queries in a workgroup.
	ListSavedQueryIDs(ctx context.Context, workgroup string) ([]string, error)

	// GetSavedQuery returns one saved query by id.
	GetSavedQuery(ctx context.Context, id string) (SavedQuery, error)
}
