// Package executor drives the submit, poll, fetch, normalize lifecycle for
// query executions.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"athena-connect/domain"
)

const (
	defaultPollInterval = 5 * time.Second
	readRetryBudget     = 2
	readRetryBase       = 250 * time.Millisecond
	savedQueryFanout    = 8
)

// Executor runs query executions to completion against a ServiceGateway.
// Each invocation owns its own handle end-to-end; no state is shared across
// calls, so a single Executor is safe for concurrent use.
type Executor struct {
	gw           domain.ServiceGateway
	logger       *slog.Logger
	pollInterval time.Duration
}

// New creates an Executor over the given gateway.
func New(gw domain.ServiceGateway, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{gw: gw, logger: logger, pollInterval: defaultPollInterval}
}

// SetPollInterval overrides the status polling interval (default 5s).
func (e *Executor) SetPollInterval(d time.Duration) {
	if d > 0 {
		e.pollInterval = d
	}
}

// RunToCompletion submits the request, polls until a terminal state, fetches
// the result page, and returns the normalized table.
//
// A FAILED or CANCELLED execution returns a NotSucceededError carrying the
// terminal state; results are never fetched for it. Transport failures
// surface as TransportError. Cancelling ctx aborts the poll loop without
// fetching and returns the context error.
func (e *Executor) RunToCompletion(ctx context.Context, req domain.QueryRequest) (domain.Table, error) {
	handle, err := e.gw.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("query execution submitted", "handle", handle, "database", req.Database)

	state, err := e.pollUntilTerminal(ctx, handle)
	if err != nil {
		return nil, err
	}
	if state != domain.StateSucceeded {
		e.logger.Info("query execution completed without success", "handle", handle, "state", state)
		return nil, domain.ErrNotSucceeded(handle, state)
	}
	e.logger.Info("query execution completed", "handle", handle, "state", state)

	raw, err := e.fetchWithRetry(ctx, handle)
	if err != nil {
		return nil, err
	}
	return Flatten(raw), nil
}

// pollUntilTerminal checks execution status at the configured interval until
// a terminal state is observed. No further status calls are made once a
// terminal state has been seen.
func (e *Executor) pollUntilTerminal(ctx context.Context, handle domain.ExecutionHandle) (domain.ExecutionState, error) {
	for {
		state, err := e.statusWithRetry(ctx, handle)
		if err != nil {
			return "", err
		}
		if state.IsTerminal() {
			return state, nil
		}

		e.logger.Info("query execution in progress", "handle", handle, "state", state)
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("poll query execution %s: %w", handle, ctx.Err())
		case <-time.After(e.pollInterval):
		}
	}
}

// statusWithRetry wraps GetStatus with a small bounded retry. Status checks
// are idempotent reads, unlike Submit, which is never retried.
func (e *Executor) statusWithRetry(ctx context.Context, handle domain.ExecutionHandle) (domain.ExecutionState, error) {
	var state domain.ExecutionState
	err := retry.Do(ctx, readBackoff(), func(ctx context.Context) error {
		s, err := e.gw.GetStatus(ctx, handle)
		if err != nil {
			return markRetryable(err)
		}
		state = s
		return nil
	})
	return state, err
}

func (e *Executor) fetchWithRetry(ctx context.Context, handle domain.ExecutionHandle) ([]domain.RawRow, error) {
	var raw []domain.RawRow
	err := retry.Do(ctx, readBackoff(), func(ctx context.Context) error {
		rows, err := e.gw.FetchResultRows(ctx, handle)
		if err != nil {
			return markRetryable(err)
		}
		raw = rows
		return nil
	})
	return raw, err
}

func readBackoff() retry.Backoff {
	return retry.WithMaxRetries(readRetryBudget, retry.NewExponential(readRetryBase))
}

// markRetryable flags transport failures for retry; anything else aborts.
func markRetryable(err error) error {
	var te *domain.TransportError
	if errors.As(err, &te) {
		return retry.RetryableError(err)
	}
	return err
}

// FetchSavedQueries lists the saved-query ids in a workgroup and fetches
// each record over a bounded worker pool. Results are returned in input-id
// order regardless of completion order.
func (e *Executor) FetchSavedQueries(ctx context.Context, workgroup string) ([]domain.SavedQuery, error) {
	ids, err := e.gw.ListSavedQueryIDs(ctx, workgroup)
	if err != nil {
		return nil, err
	}

	queries := make([]domain.SavedQuery, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(savedQueryFanout)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			q, err := e.gw.GetSavedQuery(gctx, id)
			if err != nil {
				return err
			}
			queries[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return queries, nil
}
