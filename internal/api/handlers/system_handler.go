package handlers

import (
	"net/http"

	snapshotapp "pidash/internal/snapshot/application"
)

// SystemHandler handles host identity queries
type SystemHandler struct {
	service *snapshotapp.Service
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(service *snapshotapp.Service) *SystemHandler {
	return &SystemHandler{
		service: service,
	}
}

// GetSystem handles GET /api/system
// @Summary      Host identity and uptime
// @Description  Get hostname, formatted uptime, current date, OS name and architecture. Unreadable fields degrade to "Unknown".
// @Tags         system
// @Produce      json
// @Success      200  {object}  domain.SystemInfo
// @Router       /system [get]
func (h *SystemHandler) GetSystem(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	info := h.service.GetSystem(r.Context())

	logger.Debug("Read system info", "hostname", info.Hostname)
	respondJSON(w, http.StatusOK, info)
}
