package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutionState_IsTerminal(t *testing.T) {
	tests := []struct {
		state ExecutionState
		want  bool
	}{
		{StateQueued, false},
		{StateRunning, false},
		{StateSucceeded, true},
		{StateFailed, true},
		{StateCancelled, true},
		{ExecutionState("UNKNOWN"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.IsTerminal())
		})
	}
}

func TestExecutionState_ServiceVocabulary(t *testing.T) {
	// The wire strings match the backing service verbatim; callers may depend
	// on them.
	assert.Equal(t, "QUEUED", string(StateQueued))
	assert.Equal(t, "RUNNING", string(StateRunning))
	assert.Equal(t, "SUCCEEDED", string(StateSucceeded))
	assert.Equal(t, "FAILED", string(StateFailed))
	assert.Equal(t, "CANCELLED", string(StateCancelled))
}
