// Package docker provides a client for interacting with the Docker API.
package docker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	"github.com/dockwatch/agent/internal/apperrors"
)

// Common errors
var (
	ErrConnectionFailed = errors.New("docker connection failed")
	ErrNotFound         = errors.New("container not found")
)

// Client defines the interface for Docker daemon operations used by the engine.
// All methods accept context.Context for cancellation and timeout support.
// The underlying SDK client is safe for concurrent use, so a single Client
// value may be shared across simultaneous requests.
type Client interface {
	// Ping verifies the Docker daemon is accessible. Returns error if connection fails.
	Ping(ctx context.Context) error
	// Close closes the Docker client connection and releases resources.
	Close() error

	// ListContainers returns full records for every container known to the
	// daemon. When includeStopped is false only running containers are listed.
	ListContainers(ctx context.Context, includeStopped bool) ([]RawContainer, error)
	// InspectContainer returns the full record for one container.
	// Returns an error wrapping ErrNotFound for unknown IDs.
	InspectContainer(ctx context.Context, containerID string) (RawContainer, error)
	// ContainerStats returns a one-shot resource sample. The daemon includes
	// both the current and the immediately preceding CPU counters in a single
	// response, which is what rate derivation needs.
	ContainerStats(ctx context.Context, containerID string) (container.StatsResponse, error)

	// Lifecycle transitions. No client-side precondition checks; the daemon's
	// own state validation is authoritative.
	StartContainer(ctx context.Context, containerID string) error
	StopContainer(ctx context.Context, containerID string) error
	RestartContainer(ctx context.Context, containerID string) error
	PauseContainer(ctx context.Context, containerID string) error
	UnpauseContainer(ctx context.Context, containerID string) error

	// ContainerLogs returns the newest tail lines of the container's combined
	// stdout/stderr stream, each line prefixed with its timestamp.
	ContainerLogs(ctx context.Context, containerID string, tail int) (string, error)
	// Info returns daemon version and host details.
	Info(ctx context.Context) (HostInfo, error)
}

// apiClient wraps the Docker SDK client to implement Client
type apiClient struct {
	cli        *client.Client
	socketPath string
}

// Compile-time verification that apiClient implements Client
var _ Client = (*apiClient)(nil)

// NewClient connects to the Docker daemon at socketPath (or default if empty).
func NewClient(socketPath string) (Client, error) {
	opts := []client.Opt{
		client.WithAPIVersionNegotiation(),
	}

	// Add host option if socket path is specified
	if socketPath != "" {
		opts = append(opts, client.WithHost(socketPath))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, &apperrors.DockerConnectionError{SocketPath: socketPath, Operation: "Initialize", Err: err}
	}

	return &apiClient{
		cli:        cli,
		socketPath: socketPath,
	}, nil
}

func (c *apiClient) Ping(ctx context.Context) error {
	_, err := c.cli.Ping(ctx)
	if err != nil {
		return &apperrors.DockerConnectionError{
			SocketPath: c.socketPath,
			Operation:  "Ping",
			Err:        fmt.Errorf("%w: %v", ErrConnectionFailed, err),
		}
	}
	return nil
}

func (c *apiClient) Close() error {
	return c.cli.Close()
}

func (c *apiClient) ListContainers(ctx context.Context, includeStopped bool) ([]RawContainer, error) {
	summaries, err := c.cli.ContainerList(ctx, container.ListOptions{All: includeStopped})
	if err != nil {
		return nil, &apperrors.DockerConnectionError{SocketPath: c.socketPath, Operation: "ContainerList", Err: err}
	}

	result := make([]RawContainer, 0, len(summaries))
	for _, summary := range summaries {
		record, err := c.InspectContainer(ctx, summary.ID)
		if err != nil {
			// Container removed between list and inspect
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		// The list endpoint resolves the image reference the container was
		// created from; inspect only carries the immutable digest.
		if summary.Image != "" {
			record.Image = summary.Image
		}
		result = append(result, record)
	}

	return result, nil
}

func (c *apiClient) InspectContainer(ctx context.Context, containerID string) (RawContainer, error) {
	inspect, err := c.cli.ContainerInspect(ctx, containerID)
	if err != nil {
		return RawContainer{}, wrapContainerError(containerID, err)
	}

	record := RawContainer{
		ID:           inspect.ID,
		Name:         trimNameSlash(inspect.Name),
		Image:        inspect.Image,
		Created:      inspect.Created,
		RestartCount: inspect.RestartCount,
		Labels:       map[string]string{},
	}

	if inspect.Config != nil {
		if inspect.Config.Image != "" {
			record.Image = inspect.Config.Image
		}
		if inspect.Config.Labels != nil {
			record.Labels = inspect.Config.Labels
		}
	}

	if inspect.State != nil {
		record.Status = inspect.State.Status
		record.State = RawState{
			Status:    inspect.State.Status,
			StartedAt: inspect.State.StartedAt,
			Running:   inspect.State.Running,
		}
	}

	if inspect.NetworkSettings != nil {
		record.Ports = inspect.NetworkSettings.Ports
	}

	return record, nil
}

func (c *apiClient) ContainerStats(ctx context.Context, containerID string) (container.StatsResponse, error) {
	resp, err := c.cli.ContainerStats(ctx, containerID, false)
	if err != nil {
		return container.StatsResponse{}, wrapContainerError(containerID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var stats container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return container.StatsResponse{}, fmt.Errorf("failed to decode stats for container %s: %w", containerID, err)
	}

	return stats, nil
}

func (c *apiClient) StartContainer(ctx context.Context, containerID string) error {
	return wrapContainerError(containerID, c.cli.ContainerStart(ctx, containerID, container.StartOptions{}))
}

func (c *apiClient) StopContainer(ctx context.Context, containerID string) error {
	return wrapContainerError(containerID, c.cli.ContainerStop(ctx, containerID, container.StopOptions{}))
}

func (c *apiClient) RestartContainer(ctx context.Context, containerID string) error {
	return wrapContainerError(containerID, c.cli.ContainerRestart(ctx, containerID, container.StopOptions{}))
}

func (c *apiClient) PauseContainer(ctx context.Context, containerID string) error {
	return wrapContainerError(containerID, c.cli.ContainerPause(ctx, containerID))
}

func (c *apiClient) UnpauseContainer(ctx context.Context, containerID string) error {
	return wrapContainerError(containerID, c.cli.ContainerUnpause(ctx, containerID))
}

func (c *apiClient) ContainerLogs(ctx context.Context, containerID string, tail int) (string, error) {
	logOpts := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Timestamps: true,
		Tail:       strconv.Itoa(tail),
	}

	reader, err := c.cli.ContainerLogs(ctx, containerID, logOpts)
	if err != nil {
		return "", wrapContainerError(containerID, err)
	}
	// Close reader after demuxing; error not actionable in defer context as stream is already consumed
	defer func() { _ = reader.Close() }()

	return demuxLogStream(reader)
}

func (c *apiClient) Info(ctx context.Context) (HostInfo, error) {
	info, err := c.cli.Info(ctx)
	if err != nil {
		return HostInfo{}, &apperrors.DockerConnectionError{SocketPath: c.socketPath, Operation: "Info", Err: err}
	}

	return HostInfo{
		ServerVersion:   info.ServerVersion,
		Containers:      info.Containers,
		Images:          info.Images,
		Driver:          info.Driver,
		KernelVersion:   info.KernelVersion,
		OperatingSystem: info.OperatingSystem,
		Architecture:    info.Architecture,
	}, nil
}

// wrapContainerError maps SDK errors for per-container operations onto the
// package sentinels so callers can use errors.Is without importing the SDK's
// error definitions. Unknown IDs become ContainerNotFoundError carrying
// ErrNotFound in its chain; anything else passes through with the daemon's
// message intact (the action dispatcher surfaces it verbatim).
func wrapContainerError(containerID string, err error) error {
	if err == nil {
		return nil
	}
	if cerrdefs.IsNotFound(err) {
		return &apperrors.ContainerNotFoundError{
			ContainerID: containerID,
			Err:         fmt.Errorf("%w: %v", ErrNotFound, err),
		}
	}
	return err
}

// trimNameSlash strips the leading slash the daemon prepends to container names.
func trimNameSlash(name string) string {
	return strings.TrimPrefix(name, "/")
}
