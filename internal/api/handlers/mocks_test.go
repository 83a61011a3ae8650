package handlers

import (
	"context"
	"strings"
	"testing"
	"time"

	configdomain "pidash/internal/config/domain"
	"pidash/internal/infrastructure/logger"
	snapshotapp "pidash/internal/snapshot/application"
	snapshotdomain "pidash/internal/snapshot/domain"
)

// stubGauges returns fixed host readings for handler tests
type stubGauges struct{}

func (stubGauges) Hostname(context.Context) (string, error) {
	return "raspberrypi", nil
}

func (stubGauges) UptimeSeconds(context.Context) (uint64, error) {
	return 90061, nil
}

func (stubGauges) PlatformName(context.Context) (string, error) {
	return "Raspbian GNU/Linux 12 (bookworm)", nil
}

func (stubGauges) KernelArch(context.Context) (string, error) {
	return "aarch64", nil
}

func (stubGauges) CPUPercent(context.Context, time.Duration) (float64, error) {
	return 12.34, nil
}

func (stubGauges) CPUTemperature(context.Context) (float64, error) {
	return 47.8, nil
}

func (stubGauges) CPUCount(context.Context) (int, error) {
	return 4, nil
}

func (stubGauges) CPUFrequencyMHz(context.Context) (float64, error) {
	return 1800, nil
}

func (stubGauges) VirtualMemory(context.Context) (snapshotdomain.MemoryStat, error) {
	return snapshotdomain.MemoryStat{
		Total:       8 << 30,
		Used:        2 << 30,
		Available:   6 << 30,
		UsedPercent: 25,
	}, nil
}

func (stubGauges) DiskUsage(context.Context, string) (snapshotdomain.FSUsage, error) {
	return snapshotdomain.FSUsage{Total: 64 << 30, Used: 16 << 30, Free: 48 << 30}, nil
}

func (stubGauges) ProcessCreateTime(context.Context, string) (time.Time, error) {
	return time.Now().Add(-time.Hour), nil
}

// stubRunner resolves probe commands from a canned output table keyed by
// the full command line
type stubRunner struct {
	outputs map[string]string
	errs    map[string]error
}

func (r *stubRunner) Run(_ context.Context, _ time.Duration, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	if err, ok := r.errs[key]; ok {
		return r.outputs[key], err
	}
	return r.outputs[key], nil
}

type stubLister struct {
	containers []snapshotdomain.ContainerState
	err        error
}

func (l *stubLister) ListContainers(context.Context) ([]snapshotdomain.ContainerState, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.containers, nil
}

func newTestService(t *testing.T, runner *stubRunner, lister *stubLister) *snapshotapp.Service {
	t.Helper()

	if runner == nil {
		runner = &stubRunner{}
	}
	if lister == nil {
		lister = &stubLister{}
	}
	return snapshotapp.NewService(logger.DefaultLogger(), stubGauges{}, runner, lister, configdomain.DefaultServices())
}
