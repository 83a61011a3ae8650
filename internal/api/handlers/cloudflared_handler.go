package handlers

import (
	"net/http"

	snapshotapp "pidash/internal/snapshot/application"
)

// CloudflaredHandler handles tunnel daemon status queries
type CloudflaredHandler struct {
	service *snapshotapp.Service
}

// NewCloudflaredHandler creates a new cloudflared handler
func NewCloudflaredHandler(service *snapshotapp.Service) *CloudflaredHandler {
	return &CloudflaredHandler{
		service: service,
	}
}

// GetCloudflared handles GET /api/cloudflared
// @Summary      Cloudflare tunnel status
// @Description  Get tunnel connectivity, the configured tunnel name and the daemon process uptime.
// @Tags         cloudflared
// @Produce      json
// @Success      200  {object}  domain.CloudflaredInfo
// @Router       /cloudflared [get]
func (h *CloudflaredHandler) GetCloudflared(w http.ResponseWriter, r *http.Request) {
	logger := getLogger(r)

	info := h.service.GetCloudflared(r.Context())

	logger.Debug("Read cloudflared status", "status", info.Status, "tunnel", info.Tunnel)
	respondJSON(w, http.StatusOK, info)
}
