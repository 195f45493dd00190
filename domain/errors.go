package domain

import "fmt"

// TransportError indicates a remote call to the query service failed
// (network, auth, region, or parameter problems). The underlying cause is
// preserved for inspection via errors.As/Is.
type TransportError struct {
	Op     string
	Handle ExecutionHandle
	Cause  error
}

func (e *TransportError) Error() string {
	if e.Handle != "" {
		return fmt.Sprintf("%s (handle %s): %v", e.Op, e.Handle, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// ConfigurationError indicates a required configuration field was missing at
// the point an operation needed it.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string { return e.Field + " not provided" }

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotSucceededError indicates a query execution reached a terminal state
// other than SUCCEEDED. It is not a transport failure: the submit and poll
// round-trips all succeeded, the query itself did not.
type NotSucceededError struct {
	Handle ExecutionHandle
	State  ExecutionState
}

func (e *NotSucceededError) Error() string {
	return fmt.Sprintf("query execution %s completed with state %s", e.Handle, e.State)
}

// ErrTransport creates a TransportError for the given operation and cause.
func ErrTransport(op string, handle ExecutionHandle, cause error) *TransportError {
	return &TransportError{Op: op, Handle: handle, Cause: cause}
}

// ErrConfiguration creates a ConfigurationError for the named field.
func ErrConfiguration(field string) *ConfigurationError {
	return &ConfigurationError{Field: field}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrNotSucceeded creates a NotSucceededError for the given handle and
// terminal state.
func ErrNotSucceeded(handle ExecutionHandle, state ExecutionState) *NotSucceededError {
	return &NotSucceededError{Handle: handle, State: state}
}
