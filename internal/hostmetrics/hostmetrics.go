// Package hostmetrics samples host-level resource usage.
package hostmetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// cpuSampleWindow is the fixed window CPU utilization is averaged over.
// Shortening it changes the accuracy contract, so it is not configurable.
const cpuSampleWindow = time.Second

// Snapshot is one host resource reading.
type Snapshot struct {
	CPUPercent    float64
	MemoryPercent float64
	MemoryUsed    uint64
	MemoryTotal   uint64
	DiskPercent   float64
	DiskUsed      uint64
	DiskTotal     uint64
}

// Sampler produces host resource snapshots.
type Sampler interface {
	// Sample blocks for the CPU sampling window and returns one reading.
	Sample(ctx context.Context) (Snapshot, error)
}

// SystemSampler reads host metrics from the operating system.
type SystemSampler struct {
	diskPath string
}

// Compile-time verification that SystemSampler implements Sampler
var _ Sampler = (*SystemSampler)(nil)

// NewSystemSampler measures disk usage for the filesystem mounted at diskPath
// (defaults to "/" when empty).
func NewSystemSampler(diskPath string) *SystemSampler {
	if diskPath == "" {
		diskPath = "/"
	}
	return &SystemSampler{diskPath: diskPath}
}

// Sample reads CPU (averaged over the fixed 1-second window), virtual memory
// and disk usage in one pass.
func (s *SystemSampler) Sample(ctx context.Context) (Snapshot, error) {
	cpuPercents, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to sample CPU: %w", err)
	}
	cpuPercent := 0.0
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read virtual memory: %w", err)
	}

	du, err := disk.UsageWithContext(ctx, s.diskPath)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read disk usage for %s: %w", s.diskPath, err)
	}

	return Snapshot{
		CPUPercent:    cpuPercent,
		MemoryPercent: vm.UsedPercent,
		MemoryUsed:    vm.Used,
		MemoryTotal:   vm.Total,
		DiskPercent:   du.UsedPercent,
		DiskUsed:      du.Used,
		DiskTotal:     du.Total,
	}, nil
}
