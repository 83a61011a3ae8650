package infrastructure

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"pidash/internal/snapshot/domain"
)

const (
	osReleasePath   = "/etc/os-release"
	thermalZonePath = "/sys/class/thermal/thermal_zone0/temp"
)

// HostGaugesImpl implements the domain HostGauges interface on top of
// gopsutil plus direct procfs/sysfs reads for Pi-specific sources
type HostGaugesImpl struct{}

// NewHostGauges creates a new host gauges implementation
func NewHostGauges() domain.HostGauges {
	return &HostGaugesImpl{}
}

// Hostname returns the kernel hostname
func (g *HostGaugesImpl) Hostname(ctx context.Context) (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("failed to read hostname: %w", err)
	}
	return name, nil
}

// UptimeSeconds returns seconds elapsed since boot
func (g *HostGaugesImpl) UptimeSeconds(ctx context.Context) (uint64, error) {
	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read uptime: %w", err)
	}
	return uptime, nil
}

// PlatformName resolves the distribution name from /etc/os-release
func (g *HostGaugesImpl) PlatformName(ctx context.Context) (string, error) {
	contents, err := os.ReadFile(osReleasePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", osReleasePath, err)
	}
	return domain.PlatformName(domain.ParseOSRelease(contents)), nil
}

// KernelArch returns the machine architecture, falling back to the
// compile-time architecture when uname is unavailable
func (g *HostGaugesImpl) KernelArch(ctx context.Context) (string, error) {
	arch, err := host.KernelArch()
	if err != nil || arch == "" {
		return runtime.GOARCH, nil
	}
	return arch, nil
}

// CPUPercent samples total CPU utilization over the given interval
func (g *HostGaugesImpl) CPUPercent(ctx context.Context, interval time.Duration) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, interval, false)
	if err != nil {
		return 0, fmt.Errorf("failed to sample cpu usage: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("cpu usage sample returned no values")
	}
	return percents[0], nil
}

// CPUTemperature reads the SoC temperature from the first thermal zone.
// The sysfs file holds millidegrees Celsius as a bare integer.
func (g *HostGaugesImpl) CPUTemperature(ctx context.Context) (float64, error) {
	contents, err := os.ReadFile(thermalZonePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", thermalZonePath, err)
	}
	milli, err := strconv.Atoi(strings.TrimSpace(string(contents)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse thermal zone value: %w", err)
	}
	return float64(milli) / 1000, nil
}

// CPUCount returns the number of logical cores
func (g *HostGaugesImpl) CPUCount(ctx context.Context) (int, error) {
	count, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("failed to count cpus: %w", err)
	}
	return count, nil
}

// CPUFrequencyMHz returns the reported clock of the first CPU. Some ARM
// boards report no frequency at all, which surfaces as zero.
func (g *HostGaugesImpl) CPUFrequencyMHz(ctx context.Context) (float64, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read cpu info: %w", err)
	}
	if len(infos) == 0 {
		return 0, fmt.Errorf("cpu info returned no entries")
	}
	return infos[0].Mhz, nil
}

// VirtualMemory returns raw virtual memory counters
func (g *HostGaugesImpl) VirtualMemory(ctx context.Context) (domain.MemoryStat, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return domain.MemoryStat{}, fmt.Errorf("failed to read virtual memory: %w", err)
	}
	return domain.MemoryStat{
		Total:       vm.Total,
		Used:        vm.Used,
		Available:   vm.Available,
		UsedPercent: vm.UsedPercent,
	}, nil
}

// DiskUsage returns raw usage counters for the filesystem at path
func (g *HostGaugesImpl) DiskUsage(ctx context.Context, path string) (domain.FSUsage, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return domain.FSUsage{}, fmt.Errorf("failed to stat filesystem %s: %w", path, err)
	}
	return domain.FSUsage{
		Total: usage.Total,
		Used:  usage.Used,
		Free:  usage.Free,
	}, nil
}

// ProcessCreateTime finds the start time of the first process whose name
// contains the given string
func (g *HostGaugesImpl) ProcessCreateTime(ctx context.Context, name string) (time.Time, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to list processes: %w", err)
	}

	for _, p := range procs {
		procName, err := p.NameWithContext(ctx)
		if err != nil {
			// Processes can exit mid-scan
			continue
		}
		if !strings.Contains(procName, name) {
			continue
		}
		createdMs, err := p.CreateTimeWithContext(ctx)
		if err != nil {
			continue
		}
		return time.UnixMilli(createdMs), nil
	}

	return time.Time{}, fmt.Errorf("process %q: %w", name, domain.ErrProcessNotFound)
}
