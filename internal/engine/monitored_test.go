package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitoredContainersDeduplicates(t *testing.T) {
	t.Parallel()

	cli := &fakeClient{containers: testContainers()}
	eng := newTestEngine(cli, &fakeSampler{})

	// both patterns match container "abc"
	result := eng.MonitoredContainers(context.Background(), []string{"*web*", "nginx*"})

	require.Len(t, result.Containers, 1)
	assert.Equal(t, "abc", result.Containers[0].ID)
	assert.Equal(t, []string{"*web*", "nginx*"}, result.Patterns)
	assert.Equal(t, 1, result.TotalFound)
}

func TestMonitoredContainersMultiplePatterns(t *testing.T) {
	t.Parallel()

	cli := &fakeClient{containers: testContainers()}
	eng := newTestEngine(cli, &fakeSampler{})

	result := eng.MonitoredContainers(context.Background(), []string{"*web*", "*db"})

	require.Len(t, result.Containers, 2)
	// first-seen ordering
	assert.Equal(t, "abc", result.Containers[0].ID)
	assert.Equal(t, "def", result.Containers[1].ID)
	assert.Equal(t, 2, result.TotalFound)
}

func TestMonitoredContainersFailedPatternContributesNothing(t *testing.T) {
	t.Parallel()

	// first scan fails, second succeeds; the failure must not abort the rest
	cli := &fakeClient{containers: testContainers(), failList: 1}
	eng := newTestEngine(cli, &fakeSampler{})

	result := eng.MonitoredContainers(context.Background(), []string{"*web*", "*db"})

	require.Len(t, result.Containers, 1)
	assert.Equal(t, "def", result.Containers[0].ID)
}

func TestMonitoredMetricsDoesNotDeduplicate(t *testing.T) {
	t.Parallel()

	cli := &fakeClient{containers: testContainers()}
	eng := newTestEngine(cli, &fakeSampler{})

	// both patterns match container "abc": two entries, two fresh fetches
	result := eng.MonitoredMetrics(context.Background(), []string{"*web*", "nginx*"})

	require.Len(t, result.ContainersMetrics, 2)
	assert.Equal(t, 2, result.TotalContainers)
	assert.Equal(t, 2, cli.statsCalls)

	for _, entry := range result.ContainersMetrics {
		assert.Equal(t, "nginx-web-1", entry.Name)
		assert.Equal(t, "running", entry.Status)
	}
}

func TestMonitoredMetricsAnnotatesDegradedSnapshots(t *testing.T) {
	t.Parallel()

	// stats fetch fails: entries still appear, zero-valued but annotated
	cli := &fakeClient{containers: testContainers(), failStats: true}
	eng := newTestEngine(cli, &fakeSampler{})

	result := eng.MonitoredMetrics(context.Background(), []string{"*web*"})

	require.Len(t, result.ContainersMetrics, 1)
	entry := result.ContainersMetrics[0]
	assert.Equal(t, "nginx-web-1", entry.Name)
	assert.Zero(t, entry.CPUPercent)
	assert.NotEmpty(t, entry.Timestamp)
}

func TestParsePatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain list", "web,db", []string{"web", "db"}},
		{"whitespace trimmed", " web , db ", []string{"web", "db"}},
		{"empty entries dropped", "web,,db,", []string{"web", "db"}},
		{"single pattern", "*web*", []string{"*web*"}},
		{"empty string", "", []string{}},
		{"only commas", ",,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParsePatterns(tt.input))
		})
	}
}
