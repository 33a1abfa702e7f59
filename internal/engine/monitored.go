package engine

import (
	"context"
	"strings"
)

// MonitoredContainers resolves a monitored group: one full-list scan per
// pattern, concatenated, then deduplicated by container id. Deduplication is
// last-write-wins with first-seen ordering, so a container matched by two
// patterns appears once, as whichever scan saw it last. A pattern whose scan
// degrades contributes nothing; the remaining patterns still run.
func (e *Engine) MonitoredContainers(ctx context.Context, patterns []string) MonitoredContainers {
	byID := map[string]ContainerRecord{}
	order := []string{}

	for _, pattern := range patterns {
		outcome := e.Containers(ctx, pattern)
		for _, record := range outcome.Value {
			if _, seen := byID[record.ID]; !seen {
				order = append(order, record.ID)
			}
			byID[record.ID] = record
		}
	}

	unique := make([]ContainerRecord, 0, len(order))
	for _, id := range order {
		unique = append(unique, byID[id])
	}

	return MonitoredContainers{
		Containers: unique,
		Patterns:   patterns,
		TotalFound: len(unique),
	}
}

// MonitoredMetrics fetches a fresh metrics snapshot for every container
// matching every pattern, annotated with the container's name and status.
// No deduplication: a container matched by two patterns yields two entries,
// each from its own stats fetch. This asymmetry with MonitoredContainers is
// part of the interface contract.
func (e *Engine) MonitoredMetrics(ctx context.Context, patterns []string) MonitoredMetrics {
	all := []AnnotatedMetrics{}

	for _, pattern := range patterns {
		outcome := e.Containers(ctx, pattern)
		for _, record := range outcome.Value {
			metrics := e.ContainerMetrics(ctx, record.ID)
			all = append(all, AnnotatedMetrics{
				MetricsSnapshot: metrics.Value,
				Name:            record.Name,
				Status:          record.Status,
			})
		}
	}

	return MonitoredMetrics{
		ContainersMetrics: all,
		Patterns:          patterns,
		TotalContainers:   len(all),
	}
}

// ParsePatterns splits a comma-separated pattern list, trimming whitespace
// and dropping empty entries.
func ParsePatterns(names string) []string {
	patterns := []string{}
	for _, part := range strings.Split(names, ",") {
		if p := strings.TrimSpace(part); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
