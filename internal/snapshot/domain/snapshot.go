package domain

import "encoding/json"

// Run states reported for systemd units and the Docker daemon.
const (
	StatusRunning = "running"
	StatusStopped = "stopped"
	StatusUnknown = "unknown"
)

// Connectivity states reported for the cloudflared tunnel.
const (
	TunnelConnected    = "connected"
	TunnelDisconnected = "disconnected"
	TunnelError        = "error"
)

// Placeholder values reported when a reading cannot be acquired.
const (
	Unknown          = "Unknown"
	UnknownField     = "unknown"
	UsageUnavailable = "unavailable"
	NotAvailable     = "N/A"
	NotRunning       = "Not running"
)

// SystemInfo represents host identity and uptime readings
type SystemInfo struct {
	Hostname     string `json:"hostname"`
	Uptime       string `json:"uptime"`
	Date         string `json:"date"`
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`
}

// CPUInfo represents processor load, temperature and topology readings.
// Temperature and frequency are nil when the host exposes no usable source.
type CPUInfo struct {
	UsagePercent       float64  `json:"usage_percent"`
	TemperatureCelsius *float64 `json:"temperature_celsius"`
	CoreCount          int      `json:"core_count"`
	FrequencyMHz       *float64 `json:"frequency_mhz"`
}

// MemoryInfo represents virtual memory readings in GiB
type MemoryInfo struct {
	TotalGB     float64 `json:"total_gb"`
	UsedGB      float64 `json:"used_gb"`
	AvailableGB float64 `json:"available_gb"`
	PercentUsed float64 `json:"percent_used"`
}

// Usage represents filesystem usage for a single mountpoint, sizes in GiB
type Usage struct {
	Total   float64 `json:"total"`
	Used    float64 `json:"used"`
	Free    float64 `json:"free"`
	Percent float64 `json:"percent"`
}

// NewUsage converts raw filesystem byte counters into a rounded Usage.
// Percent is used/total, not the kernel's reserved-block-adjusted figure.
func NewUsage(fs FSUsage) Usage {
	u := Usage{
		Total: Round1(BytesToGiB(fs.Total)),
		Used:  Round1(BytesToGiB(fs.Used)),
		Free:  Round1(BytesToGiB(fs.Free)),
	}
	if fs.Total > 0 {
		u.Percent = Round1(float64(fs.Used) / float64(fs.Total) * 100)
	}
	return u
}

// UsageValue is a Usage that degrades to the string "unavailable" on the
// wire when the statfs lookup for a mounted filesystem failed.
type UsageValue struct {
	Usage       *Usage
	Unavailable bool
}

// NewUsageValue wraps a successful usage reading
func NewUsageValue(u Usage) *UsageValue {
	return &UsageValue{Usage: &u}
}

// UnavailableUsage marks a mountpoint whose usage could not be read
func UnavailableUsage() *UsageValue {
	return &UsageValue{Unavailable: true}
}

// MarshalJSON emits either the usage object or the "unavailable" sentinel
func (v UsageValue) MarshalJSON() ([]byte, error) {
	if v.Unavailable {
		return json.Marshal(UsageUnavailable)
	}
	return json.Marshal(v.Usage)
}

// Partition represents a child block device in the disk topology.
// Usage is nil for unmounted partitions.
type Partition struct {
	Name       string      `json:"name"`
	Size       string      `json:"size"`
	Type       string      `json:"type"`
	Mountpoint *string     `json:"mountpoint"`
	Usage      *UsageValue `json:"usage,omitempty"`
}

// Device represents a top-level block device with its partitions.
// Mountpoints aggregates the device's own mountpoint and its children's.
type Device struct {
	Name        string      `json:"name"`
	Size        string      `json:"size"`
	Type        string      `json:"type"`
	Mountpoint  *string     `json:"mountpoint"`
	Usage       *UsageValue `json:"usage,omitempty"`
	Children    []Partition `json:"children"`
	Mountpoints []string    `json:"mountpoints"`
}

// DiskInfo represents the storage topology reading. Error carries the
// probe failure when the payload fell back to the root filesystem only.
type DiskInfo struct {
	Devices      []Device `json:"devices"`
	TotalDevices int      `json:"total_devices"`
	Error        string   `json:"error,omitempty"`
}

// Container represents a single Docker container in the status payload
type Container struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Image  string `json:"image"`
}

// DockerInfo represents the Docker daemon reading. Status reflects
// reachability of the daemon, not an aggregate of container states.
type DockerInfo struct {
	Status        string      `json:"status"`
	Containers    int         `json:"containers"`
	Running       int         `json:"running"`
	ContainerList []Container `json:"container_list"`
	Error         string      `json:"error,omitempty"`
}

// CloudflaredInfo represents the tunnel daemon reading
type CloudflaredInfo struct {
	Status string `json:"status"`
	Tunnel string `json:"tunnel"`
	Uptime string `json:"uptime"`
	Error  string `json:"error,omitempty"`
}

// ServiceStatus represents the run state of one monitored systemd unit
type ServiceStatus struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// AllInfo represents the aggregate snapshot of every reading
type AllInfo struct {
	System      SystemInfo      `json:"system"`
	CPU         CPUInfo         `json:"cpu"`
	Memory      MemoryInfo      `json:"memory"`
	Disk        DiskInfo        `json:"disk"`
	Docker      DockerInfo      `json:"docker"`
	Cloudflared CloudflaredInfo `json:"cloudflared"`
	Services    []ServiceStatus `json:"services"`
}
