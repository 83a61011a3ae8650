package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	configdomain "pidash/internal/config/domain"
	"pidash/internal/shared/logger"
	"pidash/internal/snapshot/domain"
)

// Probe deadlines. The aggregate endpoint runs every section sequentially,
// so the server's write timeout must absorb their sum.
const (
	cpuSampleInterval   = time.Second
	serviceProbeTimeout = 5 * time.Second
	tunnelListTimeout   = 10 * time.Second
	lsblkTimeout        = 10 * time.Second
)

// cloudflaredService is both the systemd unit and the process name of
// the tunnel daemon
const cloudflaredService = "cloudflared"

// Service assembles point-in-time host status payloads. Every reading
// degrades internally: all methods except GetAll always return a payload,
// substituting placeholder values for sources that cannot be read.
type Service struct {
	logger   logger.Logger
	gauges   domain.HostGauges
	runner   domain.Runner
	docker   domain.ContainerLister
	services []configdomain.ServiceEntry
}

// NewService creates a new snapshot service over the given readers.
// The service list fixes which systemd units GetServices reports on.
func NewService(logger logger.Logger, gauges domain.HostGauges, runner domain.Runner, docker domain.ContainerLister, services []configdomain.ServiceEntry) *Service {
	return &Service{
		logger:   logger,
		gauges:   gauges,
		runner:   runner,
		docker:   docker,
		services: services,
	}
}

// GetSystem reads host identity and uptime. Fields degrade to Unknown
// individually.
func (s *Service) GetSystem(ctx context.Context) domain.SystemInfo {
	info := domain.SystemInfo{
		Hostname:     domain.Unknown,
		Uptime:       domain.Unknown,
		Date:         time.Now().Format(domain.DateLayout),
		Platform:     domain.Unknown,
		Architecture: domain.Unknown,
	}

	if hostname, err := s.gauges.Hostname(ctx); err == nil {
		info.Hostname = hostname
	} else {
		s.logger.Debug("Hostname read failed", "err", err)
	}

	if uptime, err := s.gauges.UptimeSeconds(ctx); err == nil {
		info.Uptime = domain.FormatUptime(uptime)
	} else {
		s.logger.Debug("Uptime read failed", "err", err)
	}

	if platform, err := s.gauges.PlatformName(ctx); err == nil {
		info.Platform = platform
	} else {
		s.logger.Debug("Platform read failed", "err", err)
	}

	if arch, err := s.gauges.KernelArch(ctx); err == nil {
		info.Architecture = arch
	} else {
		s.logger.Debug("Architecture read failed", "err", err)
	}

	return info
}

// GetCPU samples processor load and reads temperature and topology.
// The usage sample blocks for cpuSampleInterval. Temperature and
// frequency stay nil when the host exposes no usable source.
func (s *Service) GetCPU(ctx context.Context) domain.CPUInfo {
	var info domain.CPUInfo

	if usage, err := s.gauges.CPUPercent(ctx, cpuSampleInterval); err == nil {
		info.UsagePercent = domain.Round1(usage)
	} else {
		s.logger.Debug("CPU usage sample failed", "err", err)
	}

	if temp, err := s.gauges.CPUTemperature(ctx); err == nil {
		rounded := domain.Round1(temp)
		info.TemperatureCelsius = &rounded
	} else {
		s.logger.Debug("CPU temperature read failed", "err", err)
	}

	if count, err := s.gauges.CPUCount(ctx); err == nil {
		info.CoreCount = count
	} else {
		s.logger.Debug("CPU count read failed", "err", err)
	}

	if mhz, err := s.gauges.CPUFrequencyMHz(ctx); err == nil && mhz > 0 {
		info.FrequencyMHz = &mhz
	} else if err != nil {
		s.logger.Debug("CPU frequency read failed", "err", err)
	}

	return info
}

// GetMemory reads virtual memory counters in GiB. An unreadable source
// yields an all-zero payload.
func (s *Service) GetMemory(ctx context.Context) domain.MemoryInfo {
	vm, err := s.gauges.VirtualMemory(ctx)
	if err != nil {
		s.logger.Debug("Memory read failed", "err", err)
		return domain.MemoryInfo{}
	}

	return domain.MemoryInfo{
		TotalGB:     domain.Round2(domain.BytesToGiB(vm.Total)),
		UsedGB:      domain.Round2(domain.BytesToGiB(vm.Used)),
		AvailableGB: domain.Round2(domain.BytesToGiB(vm.Available)),
		PercentUsed: domain.Round1(vm.UsedPercent),
	}
}

// GetDisk reads the block device topology via lsblk, degrading to a
// root-filesystem-only view when the probe or its output is unusable
func (s *Service) GetDisk(ctx context.Context) domain.DiskInfo {
	out, err := s.runner.Run(ctx, lsblkTimeout, "lsblk", "-J", "-o", "NAME,SIZE,TYPE,MOUNTPOINT")
	if err == nil {
		var devices []domain.LsblkDevice
		devices, err = domain.ParseLsblk([]byte(out))
		if err == nil {
			return s.buildDisk(ctx, devices)
		}
	}

	s.logger.Debug("Disk topology probe failed", "err", err)
	return s.rootOnlyDisk(ctx, err)
}

func (s *Service) buildDisk(ctx context.Context, tree []domain.LsblkDevice) domain.DiskInfo {
	devices := make([]domain.Device, 0, len(tree))
	for _, node := range tree {
		devices = append(devices, s.buildDevice(ctx, node))
	}
	return domain.DiskInfo{Devices: devices, TotalDevices: len(devices)}
}

func (s *Service) buildDevice(ctx context.Context, node domain.LsblkDevice) domain.Device {
	device := domain.Device{
		Name:        fieldOrUnknown(node.Name),
		Size:        fieldOrUnknown(node.Size),
		Type:        fieldOrUnknown(node.Type),
		Mountpoint:  node.Mountpoint,
		Children:    make([]domain.Partition, 0, len(node.Children)),
		Mountpoints: []string{},
	}

	if mounted(node.Mountpoint) {
		device.Usage = s.usageFor(ctx, *node.Mountpoint)
		device.Mountpoints = append(device.Mountpoints, *node.Mountpoint)
	}

	for _, child := range node.Children {
		partition := domain.Partition{
			Name:       fieldOrUnknown(child.Name),
			Size:       fieldOrUnknown(child.Size),
			Type:       fieldOrUnknown(child.Type),
			Mountpoint: child.Mountpoint,
		}
		if mounted(child.Mountpoint) {
			partition.Usage = s.usageFor(ctx, *child.Mountpoint)
			device.Mountpoints = append(device.Mountpoints, *child.Mountpoint)
		}
		device.Children = append(device.Children, partition)
	}

	return device
}

func (s *Service) usageFor(ctx context.Context, mountpoint string) *domain.UsageValue {
	fs, err := s.gauges.DiskUsage(ctx, mountpoint)
	if err != nil {
		s.logger.Debug("Filesystem stat failed", "mountpoint", mountpoint, "err", err)
		return domain.UnavailableUsage()
	}
	return domain.NewUsageValue(domain.NewUsage(fs))
}

// rootOnlyDisk synthesizes a single-device payload from the root
// filesystem when the topology probe failed. The probe failure is
// carried in the payload's error field.
func (s *Service) rootOnlyDisk(ctx context.Context, cause error) domain.DiskInfo {
	rootPath := "/"
	device := domain.Device{
		Name:        "root",
		Size:        domain.UnknownField,
		Type:        "disk",
		Mountpoint:  &rootPath,
		Children:    []domain.Partition{},
		Mountpoints: []string{rootPath},
	}

	if fs, err := s.gauges.DiskUsage(ctx, rootPath); err == nil {
		device.Size = fmt.Sprintf("%.1fG", domain.BytesToGiB(fs.Total))
		device.Usage = domain.NewUsageValue(domain.NewUsage(fs))
	} else {
		s.logger.Debug("Root filesystem stat failed", "err", err)
		device.Usage = domain.UnavailableUsage()
	}

	return domain.DiskInfo{
		Devices:      []domain.Device{device},
		TotalDevices: 1,
		Error:        cause.Error(),
	}
}

// GetDocker reports daemon reachability and per-container states.
// Status reflects whether the daemon answered, not container health.
func (s *Service) GetDocker(ctx context.Context) domain.DockerInfo {
	states, err := s.docker.ListContainers(ctx)
	if err != nil {
		s.logger.Debug("Docker list failed", "err", err)
		return domain.DockerInfo{
			Status:        domain.StatusStopped,
			ContainerList: []domain.Container{},
			Error:         err.Error(),
		}
	}

	info := domain.DockerInfo{
		Status:        domain.StatusRunning,
		Containers:    len(states),
		ContainerList: make([]domain.Container, 0, len(states)),
	}
	for _, state := range states {
		if state.State == domain.StatusRunning {
			info.Running++
		}
		info.ContainerList = append(info.ContainerList, domain.Container{
			Name:   state.Name,
			Status: state.State,
			Image:  domain.ImageName(state.Image),
		})
	}

	return info
}

// GetCloudflared reports tunnel daemon state. The tunnel name comes
// from the cloudflared CLI and the uptime from the daemon process age.
func (s *Service) GetCloudflared(ctx context.Context) domain.CloudflaredInfo {
	if s.GetServiceStatus(ctx, cloudflaredService) != domain.StatusRunning {
		return domain.CloudflaredInfo{
			Status: domain.TunnelDisconnected,
			Tunnel: domain.NotAvailable,
			Uptime: domain.NotAvailable,
		}
	}

	out, err := s.runner.Run(ctx, tunnelListTimeout, cloudflaredService, "tunnel", "list")
	if err != nil && !errors.Is(err, domain.ErrNonZeroExit) {
		s.logger.Debug("Tunnel list failed", "err", err)
		return domain.CloudflaredInfo{
			Status: domain.TunnelError,
			Tunnel: "Error",
			Uptime: domain.NotAvailable,
			Error:  err.Error(),
		}
	}

	// A non-zero exit still means the daemon is up, only the listing
	// is unusable
	tunnel := domain.Unknown
	if err == nil {
		tunnel = domain.TunnelNameFromList(out)
	}

	return domain.CloudflaredInfo{
		Status: domain.TunnelConnected,
		Tunnel: tunnel,
		Uptime: s.processUptime(ctx, cloudflaredService),
	}
}

func (s *Service) processUptime(ctx context.Context, name string) string {
	created, err := s.gauges.ProcessCreateTime(ctx, name)
	if errors.Is(err, domain.ErrProcessNotFound) {
		return domain.NotRunning
	}
	if err != nil {
		s.logger.Debug("Process scan failed", "process", name, "err", err)
		return domain.Unknown
	}
	return domain.FormatProcessUptime(time.Since(created))
}

// GetServiceStatus probes one systemd unit. A non-zero is-active exit
// means the unit is not active, a failed invocation means systemd
// itself could not be asked.
func (s *Service) GetServiceStatus(ctx context.Context, name string) string {
	out, err := s.runner.Run(ctx, serviceProbeTimeout, "systemctl", "is-active", name)
	if err != nil && !errors.Is(err, domain.ErrNonZeroExit) {
		s.logger.Debug("Service probe failed", "service", name, "err", err)
		return domain.StatusUnknown
	}
	if strings.TrimSpace(out) == "active" {
		return domain.StatusRunning
	}
	return domain.StatusStopped
}

// GetServices probes every configured unit, preserving config order
func (s *Service) GetServices(ctx context.Context) []domain.ServiceStatus {
	statuses := make([]domain.ServiceStatus, 0, len(s.services))
	for _, entry := range s.services {
		display := entry.DisplayName
		if display == "" {
			display = entry.Name
		}
		statuses = append(statuses, domain.ServiceStatus{
			Name:        entry.Name,
			DisplayName: display,
			Description: entry.Description,
			Status:      s.GetServiceStatus(ctx, entry.Name),
		})
	}
	return statuses
}

// GetAll assembles the aggregate payload. Unlike the per-section reads
// it is all-or-nothing: a request context that dies between sections
// aborts the whole snapshot.
func (s *Service) GetAll(ctx context.Context) (domain.AllInfo, error) {
	var all domain.AllInfo

	sections := []struct {
		name string
		read func(context.Context)
	}{
		{"system", func(ctx context.Context) { all.System = s.GetSystem(ctx) }},
		{"cpu", func(ctx context.Context) { all.CPU = s.GetCPU(ctx) }},
		{"memory", func(ctx context.Context) { all.Memory = s.GetMemory(ctx) }},
		{"disk", func(ctx context.Context) { all.Disk = s.GetDisk(ctx) }},
		{"docker", func(ctx context.Context) { all.Docker = s.GetDocker(ctx) }},
		{"cloudflared", func(ctx context.Context) { all.Cloudflared = s.GetCloudflared(ctx) }},
		{"services", func(ctx context.Context) { all.Services = s.GetServices(ctx) }},
	}

	for _, section := range sections {
		if err := ctx.Err(); err != nil {
			return domain.AllInfo{}, fmt.Errorf("aggregate snapshot aborted before %s: %w", section.name, err)
		}
		section.read(ctx)
	}

	return all, nil
}

func mounted(mountpoint *string) bool {
	return mountpoint != nil && *mountpoint != ""
}

func fieldOrUnknown(value string) string {
	if value == "" {
		return domain.UnknownField
	}
	return value
}
