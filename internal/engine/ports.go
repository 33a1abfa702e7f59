package engine

import (
	"fmt"

	"github.com/docker/go-connections/nat"
)

// FormatPorts renders a daemon port map as human-readable binding strings.
// Bound ports emit one entry per host binding as "hostIp:hostPort->containerPort";
// declared-but-unbound ports emit the bare container port spec. Ordering
// follows map iteration and is unspecified across calls.
func FormatPorts(ports nat.PortMap) []string {
	formatted := []string{}
	for containerPort, hostBindings := range ports {
		if len(hostBindings) == 0 {
			formatted = append(formatted, string(containerPort))
			continue
		}
		for _, binding := range hostBindings {
			formatted = append(formatted, fmt.Sprintf("%s:%s->%s", binding.HostIP, binding.HostPort, containerPort))
		}
	}
	return formatted
}
