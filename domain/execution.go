// Package domain defines core types, interfaces, and errors for the Athena connector.
package domain

// ExecutionState represents the lifecycle state of a query execution as
// reported by the service. Values are passed through unchanged from the
// service's own vocabulary.
type ExecutionState string

// Query execution lifecycle states.
const (
	StateQueued    ExecutionState = "QUEUED"
	StateRunning   ExecutionState = "RUNNING"
	StateSucceeded ExecutionState = "SUCCEEDED"
	StateFailed    ExecutionState = "FAILED"
	StateCancelled ExecutionState = "CANCELLED"
)

// IsTerminal reports whether no further state transition can occur.
func (s ExecutionState) IsTerminal() bool {
	switch s {
	case StateSucceeded, StateFailed, StateCancelled:
		return true
	}
	return false
}

// ExecutionHandle is the opaque correlation id for one in-flight query
// submission. It is valid only for the duration of a single run.
type ExecutionHandle string

// QueryRequest is the immutable submission payload for one query execution.
type QueryRequest struct {
	SQL            string
	Database       string
	OutputLocation string
}

// RawRow is one row of a raw result page: a sequence of nullable string
// cells. A nil cell means the service omitted the value, which is distinct
// from an empty string.
type RawRow struct {
	Cells []*string
}

// Row is one normalized result row of nullable string cells.
type Row []*string

// Table is an ordered sequence of normalized rows. Column counts are not
// guaranteed uniform across rows.
type Table []Row

// SavedQuery is a named query stored in the service.
type SavedQuery struct {
	ID          string
	Name        string
	Description string
	Database    string
	Workgroup   string
	SQL         string
}
