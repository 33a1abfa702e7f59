package engine

import (
	"math"
	"time"

	"github.com/docker/docker/api/types/container"
)

// ComputeMetrics derives a MetricsSnapshot from one daemon stats sample.
// The sample carries both the current and the immediately preceding CPU
// counters, which is all the rate math needs. Internal computation keeps
// full precision; percentages are rounded to 2 decimals at the edge.
func ComputeMetrics(stats container.StatsResponse, restartCount int, startedAt string, now time.Time) MetricsSnapshot {
	memoryUsage := stats.MemoryStats.Usage
	memoryLimit := stats.MemoryStats.Limit

	memoryPercent := 0.0
	if memoryLimit > 0 {
		memoryPercent = float64(memoryUsage) / float64(memoryLimit) * 100.0
	}

	rx, tx := networkTotals(stats)

	return MetricsSnapshot{
		CPUPercent:    round2(cpuPercent(stats)),
		MemoryPercent: round2(memoryPercent),
		MemoryUsage:   memoryUsage,
		MemoryLimit:   memoryLimit,
		NetworkRx:     rx,
		NetworkTx:     tx,
		RestartCount:  restartCount,
		UptimeSeconds: uptimeSeconds(startedAt, now),
		Timestamp:     now.UTC().Format(time.RFC3339),
	}
}

// ZeroMetrics returns the all-zero snapshot handed out when a stats fetch
// fails. The timestamp is still valid so dashboard consumers always get a
// renderable record.
func ZeroMetrics(now time.Time) MetricsSnapshot {
	return MetricsSnapshot{Timestamp: now.UTC().Format(time.RFC3339)}
}

// cpuPercent computes CPU utilization from the counter deltas between the
// sample's current and previous readings:
//
//	(cpuDelta / systemDelta) * activeCores * 100
//
// A system delta of zero or less yields 0.0, guarding against division by
// zero and negative artifacts from clock skew or first-sample reads.
func cpuPercent(stats container.StatsResponse) float64 {
	cpuDelta := float64(stats.CPUStats.CPUUsage.TotalUsage) - float64(stats.PreCPUStats.CPUUsage.TotalUsage)
	systemDelta := float64(stats.CPUStats.SystemUsage) - float64(stats.PreCPUStats.SystemUsage)

	if systemDelta <= 0 {
		return 0.0
	}

	// Per-core usage entries give the active core count. Daemons on cgroup v2
	// no longer report the per-core breakdown, so fall back to OnlineCPUs.
	cores := float64(len(stats.CPUStats.CPUUsage.PercpuUsage))
	if cores == 0 {
		cores = float64(stats.CPUStats.OnlineCPUs)
	}

	return (cpuDelta / systemDelta) * cores * 100.0
}

// networkTotals sums cumulative rx/tx bytes across every virtual interface.
// An absent network block yields zero totals.
func networkTotals(stats container.StatsResponse) (rx, tx uint64) {
	for _, network := range stats.Networks {
		rx += network.RxBytes
		tx += network.TxBytes
	}
	return rx, tx
}

// uptimeSeconds returns now minus the container start time, floored to whole
// seconds. Unparseable or future start times (clock skew) yield 0.
func uptimeSeconds(startedAt string, now time.Time) int64 {
	started, err := time.Parse(time.RFC3339Nano, startedAt)
	if err != nil || started.IsZero() {
		return 0
	}

	seconds := int64(math.Floor(now.Sub(started).Seconds()))
	if seconds < 0 {
		return 0
	}
	return seconds
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
