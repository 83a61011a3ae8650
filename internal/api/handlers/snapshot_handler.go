package handlers

import (
	"net/http"

	api "pidash/internal/api/application"
	snapshotapp "pidash/internal/snapshot/application"
)

// SnapshotHandler handles the aggregate snapshot and liveness queries
type SnapshotHandler struct {
	service *snapshotapp.Service
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(service *snapshotapp.Service) *SnapshotHandler {
	return &SnapshotHandler{
		service: service,
	}
}

// GetAll handles GET /api/all
// @Summary      Aggregate snapshot
// @Description  Get every dashboard section in a single payload. Sections degrade internally like their dedicated endpoints, but a request that dies mid-assembly fails as a whole.
// @Tags         snapshot
// @Produce      json
// @Success      200  {object}  domain.AllInfo
// @Failure      500  {object}  application.ErrorResponse
// @Router       /all [get]
func (h *SnapshotHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	all, err := h.service.GetAll(r.Context())
	if err != nil {
		logger.Error("Failed to assemble aggregate snapshot", "err", err)
		respondJSONError(w, http.StatusInternalServerError, "Failed to read system status: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, all)
}

// HealthCheck handles GET /api/health
// @Summary      Liveness probe
// @Description  Report that the API process is up. Probes nothing else.
// @Tags         health
// @Produce      json
// @Success      200  {object}  application.HealthResponse
// @Router       /health [get]
func (h *SnapshotHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, api.NewHealthResponse())
}
