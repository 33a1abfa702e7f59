package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerformAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		action     string
		wantCall   string
		wantBubble string
	}{
		{"start", "start:abc", "Container abc started successfully"},
		{"stop", "stop:abc", "Container abc stopped successfully"},
		{"restart", "restart:abc", "Container abc restarted successfully"},
		{"pause", "pause:abc", "Container abc paused successfully"},
		{"unpause", "unpause:abc", "Container abc unpaused successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			t.Parallel()
			cli := &fakeClient{}
			eng := newTestEngine(cli, &fakeSampler{})

			result := eng.PerformAction(context.Background(), "abc", tt.action)
			assert.True(t, result.Success)
			assert.Equal(t, tt.wantBubble, result.Message)
			assert.Equal(t, []string{tt.wantCall}, cli.actions)
		})
	}
}

func TestPerformActionUnknownVerb(t *testing.T) {
	t.Parallel()

	cli := &fakeClient{}
	eng := newTestEngine(cli, &fakeSampler{})

	result := eng.PerformAction(context.Background(), "abc", "kill")
	assert.False(t, result.Success)
	assert.Equal(t, "Unknown action: kill", result.Message)
	// rejected client-side without contacting the runtime
	assert.Empty(t, cli.actions)
}

func TestPerformActionRuntimeFailure(t *testing.T) {
	t.Parallel()

	// No local precondition check: the verb is forwarded and the daemon's
	// rejection comes back as a failed result, not an error.
	cli := &fakeClient{failAction: true}
	eng := newTestEngine(cli, &fakeSampler{})

	result := eng.PerformAction(context.Background(), "abc", "pause")
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Failed to perform action:")
	assert.Contains(t, result.Message, "daemon unreachable")
	assert.Equal(t, []string{"pause:abc"}, cli.actions)
}
