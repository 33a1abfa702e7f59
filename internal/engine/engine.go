// Package engine implements the container observability and control core:
// discovery, name-pattern filtering, derived metrics, lifecycle actions and
// monitored-group aggregation. The HTTP layer is a thin collaborator that
// serializes what the engine returns.
package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dockwatch/agent/internal/docker"
	"github.com/dockwatch/agent/internal/hostmetrics"
)

// Engine owns the shared runtime client handle and the host sampler. It is
// stateless per call; every query rebuilds its records from the daemon.
// Safe for concurrent use.
type Engine struct {
	cli  docker.Client
	host hostmetrics.Sampler
	log  *zap.Logger
}

// New constructs an Engine around an established runtime client.
func New(cli docker.Client, host hostmetrics.Sampler, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cli: cli, host: host, log: log}
}

// Availability is the tagged startup state handed to the transport layer:
// either a ready engine or the reason it could not be initialized. It
// replaces the nullable shared global the naive design would use.
type Availability struct {
	engine *Engine
	reason string
}

// Ready wraps an initialized engine.
func Ready(e *Engine) Availability {
	return Availability{engine: e}
}

// Unavailable records why no engine could be built.
func Unavailable(reason string) Availability {
	return Availability{reason: reason}
}

// Engine returns the engine and whether one is available.
func (a Availability) Engine() (*Engine, bool) {
	return a.engine, a.engine != nil
}

// Reason returns the recorded unavailability reason.
func (a Availability) Reason() string {
	return a.reason
}

// Ping verifies the runtime daemon is reachable.
func (e *Engine) Ping(ctx context.Context) error {
	return e.cli.Ping(ctx)
}

// Close releases the runtime client handle.
func (e *Engine) Close() error {
	return e.cli.Close()
}

// Containers returns all containers (running and stopped), optionally
// filtered by a name pattern. A runtime failure degrades to an empty list;
// the cause is logged for operators, never surfaced to the caller.
func (e *Engine) Containers(ctx context.Context, nameFilter string) Outcome[[]ContainerRecord] {
	raw, err := e.cli.ListContainers(ctx, true)
	if err != nil {
		e.log.Warn("container list degraded to empty", zap.Error(err))
		return Degraded([]ContainerRecord{}, err)
	}

	records := make([]ContainerRecord, 0, len(raw))
	for _, rc := range raw {
		if nameFilter != "" && !MatchName(nameFilter, rc.Name) {
			continue
		}
		records = append(records, newContainerRecord(rc))
	}

	return Ok(records)
}

// ContainerMetrics derives a metrics snapshot for one container. Any failure
// (unknown id, unreachable daemon, undecodable sample) degrades to a
// zero-value snapshot with a valid timestamp so dashboards keep rendering.
func (e *Engine) ContainerMetrics(ctx context.Context, containerID string) Outcome[MetricsSnapshot] {
	now := time.Now()

	raw, err := e.cli.InspectContainer(ctx, containerID)
	if err != nil {
		e.log.Warn("container metrics degraded to zero",
			zap.String("container_id", containerID), zap.Error(err))
		return Degraded(ZeroMetrics(now), err)
	}

	stats, err := e.cli.ContainerStats(ctx, containerID)
	if err != nil {
		e.log.Warn("container metrics degraded to zero",
			zap.String("container_id", containerID), zap.Error(err))
		return Degraded(ZeroMetrics(now), err)
	}

	return Ok(ComputeMetrics(stats, raw.RestartCount, raw.State.StartedAt, now))
}

// HostMetrics samples host-level CPU (over a fixed 1-second window), memory
// and disk, plus container counts. The sampling window is a deliberate,
// bounded blocking point; shortening it would change the accuracy contract.
// Degrades to a zero-value snapshot on any failure.
func (e *Engine) HostMetrics(ctx context.Context) Outcome[ServerMetrics] {
	now := time.Now()

	sample, err := e.host.Sample(ctx)
	if err != nil {
		e.log.Warn("host metrics degraded to zero", zap.Error(err))
		return Degraded(zeroServerMetrics(now), err)
	}

	running, err := e.cli.ListContainers(ctx, false)
	if err != nil {
		e.log.Warn("host metrics degraded to zero", zap.Error(err))
		return Degraded(zeroServerMetrics(now), err)
	}

	all, err := e.cli.ListContainers(ctx, true)
	if err != nil {
		e.log.Warn("host metrics degraded to zero", zap.Error(err))
		return Degraded(zeroServerMetrics(now), err)
	}

	return Ok(ServerMetrics{
		CPUPercent:        round2(sample.CPUPercent),
		MemoryPercent:     round2(sample.MemoryPercent),
		MemoryUsage:       sample.MemoryUsed,
		MemoryTotal:       sample.MemoryTotal,
		DiskUsagePercent:  round2(sample.DiskPercent),
		DiskUsage:         sample.DiskUsed,
		DiskTotal:         sample.DiskTotal,
		RunningContainers: len(running),
		TotalContainers:   len(all),
		Timestamp:         now.UTC().Format(time.RFC3339),
	})
}

// Logs returns the newest tail lines of the container's log stream with
// per-line timestamps. Failures are embedded as text in the returned string,
// not reported on a distinct error channel.
func (e *Engine) Logs(ctx context.Context, containerID string, tail int) string {
	logs, err := e.cli.ContainerLogs(ctx, containerID, tail)
	if err != nil {
		return fmt.Sprintf("Error getting logs: %v", err)
	}
	return logs
}

// RuntimeInfo reports daemon version and host details. Unlike the metrics
// operations this surfaces failure to the caller.
func (e *Engine) RuntimeInfo(ctx context.Context) (RuntimeInfo, error) {
	info, err := e.cli.Info(ctx)
	if err != nil {
		return RuntimeInfo{}, err
	}

	return RuntimeInfo{
		Version:         info.ServerVersion,
		Containers:      info.Containers,
		Images:          info.Images,
		Driver:          info.Driver,
		KernelVersion:   info.KernelVersion,
		OperatingSystem: info.OperatingSystem,
		Architecture:    info.Architecture,
	}, nil
}

func newContainerRecord(raw docker.RawContainer) ContainerRecord {
	labels := raw.Labels
	if labels == nil {
		labels = map[string]string{}
	}

	return ContainerRecord{
		ID:           raw.ID,
		Name:         raw.Name,
		Image:        raw.Image,
		Status:       raw.Status,
		Created:      raw.Created,
		Ports:        FormatPorts(raw.Ports),
		Labels:       labels,
		RestartCount: raw.RestartCount,
		State: ContainerState{
			Status:    raw.State.Status,
			StartedAt: raw.State.StartedAt,
			Running:   raw.State.Running,
		},
	}
}

func zeroServerMetrics(now time.Time) ServerMetrics {
	return ServerMetrics{Timestamp: now.UTC().Format(time.RFC3339)}
}
