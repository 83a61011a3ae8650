package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNonZeroExit reports a probe command that started but exited non-zero.
// Callers that treat the exit code as signal still receive the output.
var ErrNonZeroExit = errors.New("command exited non-zero")

// ErrProcessNotFound reports that no live process matched the given name
var ErrProcessNotFound = errors.New("process not found")

// MemoryStat carries raw virtual memory counters in bytes
type MemoryStat struct {
	Total       uint64
	Used        uint64
	Available   uint64
	UsedPercent float64
}

// FSUsage carries raw filesystem usage counters in bytes
type FSUsage struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// HostGauges defines the interface for point-in-time host readings
// This interface abstracts gopsutil, procfs and sysfs access from the service layer
type HostGauges interface {
	Hostname(ctx context.Context) (string, error)
	UptimeSeconds(ctx context.Context) (uint64, error)
	// PlatformName resolves the human-readable OS name from os-release
	PlatformName(ctx context.Context) (string, error)
	KernelArch(ctx context.Context) (string, error)
	// CPUPercent samples total CPU utilization over the given interval
	CPUPercent(ctx context.Context, interval time.Duration) (float64, error)
	// CPUTemperature reads the SoC temperature in degrees Celsius
	CPUTemperature(ctx context.Context) (float64, error)
	CPUCount(ctx context.Context) (int, error)
	CPUFrequencyMHz(ctx context.Context) (float64, error)
	VirtualMemory(ctx context.Context) (MemoryStat, error)
	DiskUsage(ctx context.Context, path string) (FSUsage, error)
	// ProcessCreateTime finds the start time of the first process whose
	// name contains the given string, or ErrProcessNotFound
	ProcessCreateTime(ctx context.Context, name string) (time.Time, error)
}

// Runner defines the interface for executing host probe commands
type Runner interface {
	// Run executes a command under the given timeout and returns its
	// stdout. A non-zero exit wraps ErrNonZeroExit with output intact.
	Run(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error)
}

// ContainerLister defines the interface for enumerating Docker containers
type ContainerLister interface {
	ListContainers(ctx context.Context) ([]ContainerState, error)
}
