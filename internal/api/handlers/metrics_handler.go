package handlers

import (
	"net/http"

	snapshotapp "pidash/internal/snapshot/application"
)

// MetricsHandler handles hardware gauge queries
type MetricsHandler struct {
	service *snapshotapp.Service
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(service *snapshotapp.Service) *MetricsHandler {
	return &MetricsHandler{
		service: service,
	}
}

// GetCPU handles GET /api/cpu
// @Summary      CPU load and temperature
// @Description  Sample CPU utilization over one second and read temperature, core count and clock. Missing sensors degrade to null.
// @Tags         metrics
// @Produce      json
// @Success      200  {object}  domain.CPUInfo
// @Router       /cpu [get]
func (h *MetricsHandler) GetCPU(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	info := h.service.GetCPU(r.Context())

	logger.Debug("Sampled cpu", "usage_percent", info.UsagePercent)
	respondJSON(w, http.StatusOK, info)
}

// GetMemory handles GET /api/memory
// @Summary      Memory usage
// @Description  Get virtual memory totals in GiB. An unreadable source yields a zeroed payload.
// @Tags         metrics
// @Produce      json
// @Success      200  {object}  domain.MemoryInfo
// @Router       /memory [get]
func (h *MetricsHandler) GetMemory(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	info := h.service.GetMemory(r.Context())

	logger.Debug("Read memory", "percent_used", info.PercentUsed)
	respondJSON(w, http.StatusOK, info)
}

// GetDisk handles GET /api/disk
// @Summary      Disk topology and usage
// @Description  Get the block device tree with per-mountpoint usage. When the topology probe fails the payload degrades to the root filesystem and carries the failure in its error field.
// @Tags         metrics
// @Produce      json
// @Success      200  {object}  domain.DiskInfo
// @Router       /disk [get]
func (h *MetricsHandler) GetDisk(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	info := h.service.GetDisk(r.Context())

	logger.Debug("Read disk topology", "devices", info.TotalDevices)
	respondJSON(w, http.StatusOK, info)
}
