package engine

// ContainerRecord is the normalized point-in-time view of one container.
// Records are rebuilt on every query and never mutated.
type ContainerRecord struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Image        string            `json:"image"`
	Status       string            `json:"status"`
	Created      string            `json:"created"`
	Ports        []string          `json:"ports"`
	Labels       map[string]string `json:"labels"`
	RestartCount int               `json:"restart_count"`
	State        ContainerState    `json:"state"`
}

// ContainerState is the raw state sub-record exposed alongside the
// normalized status.
type ContainerState struct {
	Status    string `json:"status"`
	StartedAt string `json:"started_at"`
	Running   bool   `json:"running"`
}

// MetricsSnapshot holds metrics derived from one stats sample of a container.
// All fields are zero (with a valid timestamp) when the fetch failed.
type MetricsSnapshot struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsage   uint64  `json:"memory_usage"`
	MemoryLimit   uint64  `json:"memory_limit"`
	NetworkRx     uint64  `json:"network_rx"`
	NetworkTx     uint64  `json:"network_tx"`
	RestartCount  int     `json:"restart_count"`
	UptimeSeconds int64   `json:"uptime_seconds"`
	Timestamp     string  `json:"timestamp"`
}

// AnnotatedMetrics is a MetricsSnapshot tagged with the container it belongs
// to, used by the monitored-group metrics aggregation.
type AnnotatedMetrics struct {
	MetricsSnapshot
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ServerMetrics is a host-level resource snapshot.
type ServerMetrics struct {
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	MemoryUsage       uint64  `json:"memory_usage"`
	MemoryTotal       uint64  `json:"memory_total"`
	DiskUsagePercent  float64 `json:"disk_usage_percent"`
	DiskUsage         uint64  `json:"disk_usage"`
	DiskTotal         uint64  `json:"disk_total"`
	RunningContainers int     `json:"running_containers"`
	TotalContainers   int     `json:"total_containers"`
	Timestamp         string  `json:"timestamp"`
}

// ActionResult reports the outcome of a lifecycle action. It never carries an
// error past the dispatcher boundary; failures become Success=false.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RuntimeInfo describes the container daemon and its host.
type RuntimeInfo struct {
	Version         string `json:"version"`
	Containers      int    `json:"containers"`
	Images          int    `json:"images"`
	Driver          string `json:"driver"`
	KernelVersion   string `json:"kernel_version"`
	OperatingSystem string `json:"operating_system"`
	Architecture    string `json:"architecture"`
}

// MonitoredContainers is the deduplicated result of a multi-pattern container
// query.
type MonitoredContainers struct {
	Containers []ContainerRecord `json:"containers"`
	Patterns   []string          `json:"monitored_patterns"`
	TotalFound int               `json:"total_found"`
}

// MonitoredMetrics is the result of a multi-pattern metrics query. Unlike
// MonitoredContainers it is not deduplicated: a container matched by two
// patterns appears twice, each time with a fresh sample.
type MonitoredMetrics struct {
	ContainersMetrics []AnnotatedMetrics `json:"containers_metrics"`
	Patterns          []string           `json:"monitored_patterns"`
	TotalContainers   int                `json:"total_containers"`
}
