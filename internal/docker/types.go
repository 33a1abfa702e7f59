package docker

import "github.com/docker/go-connections/nat"

// RawContainer is an unopinionated snapshot of a container as reported by the
// daemon. It is valid only at fetch time and is rebuilt on every query.
type RawContainer struct {
	ID           string
	Name         string
	Image        string
	Status       string // created, running, paused, restarting, removing, exited, dead
	Created      string // RFC3339 creation timestamp as reported by the daemon
	Ports        nat.PortMap
	Labels       map[string]string
	RestartCount int
	State        RawState
}

// RawState is the container state sub-record.
type RawState struct {
	Status    string
	StartedAt string // RFC3339Nano start timestamp
	Running   bool
}

// HostInfo describes the Docker daemon and its host.
type HostInfo struct {
	ServerVersion   string
	Containers      int
	Images          int
	Driver          string
	KernelVersion   string
	OperatingSystem string
	Architecture    string
}
