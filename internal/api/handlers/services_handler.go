package handlers

import (
	"net/http"

	snapshotapp "pidash/internal/snapshot/application"
)

// ServicesHandler handles systemd service status queries
type ServicesHandler struct {
	service *snapshotapp.Service
}

// NewServicesHandler creates a new services handler
func NewServicesHandler(service *snapshotapp.Service) *ServicesHandler {
	return &ServicesHandler{
		service: service,
	}
}

// GetServices handles GET /api/services
// @Summary      Monitored service states
// @Description  Probe every configured systemd unit and report running, stopped or unknown per unit, in configuration order.
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.ServiceStatus
// @Router       /services [get]
func (h *ServicesHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	statuses := h.service.GetServices(r.Context())

	logger.Debug("Probed services", "count", len(statuses))
	respondJSON(w, http.StatusOK, statuses)
}
