package handlers

import (
	"net/http"

	snapshotapp "pidash/internal/snapshot/application"
)

// DockerHandler handles Docker daemon status queries
type DockerHandler struct {
	service *snapshotapp.Service
}

// NewDockerHandler creates a new docker handler
func NewDockerHandler(service *snapshotapp.Service) *DockerHandler {
	return &DockerHandler{
		service: service,
	}
}

// GetDocker handles GET /api/docker
// @Summary      Docker daemon and container status
// @Description  Get daemon reachability, container counts and per-container states. An unreachable daemon reads as stopped with the failure in the error field.
// @Tags         docker
// @Produce      json
// @Success      200  {object}  domain.DockerInfo
// @Router       /docker [get]
func (h *DockerHandler) GetDocker(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	info := h.service.GetDocker(r.Context())

	logger.Debug("Read docker status", "status", info.Status, "containers", info.Containers)
	respondJSON(w, http.StatusOK, info)
}
