package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	snapshotdomain "pidash/internal/snapshot/domain"
)

const tunnelListOutput = "You can obtain more detailed information for each tunnel with `cloudflared tunnel info <name>`\n" +
	"ID                                   NAME    CREATED              CONNECTIONS\n" +
	"6a37f1f4-8c3a-4c91-a2bb-0f6b8b0b2f1d home-pi 2024-05-01T10:00:00Z 2xfra01, 2xams03\n"

func TestCloudflaredHandler_GetCloudflared(t *testing.T) {
	t.Run("tunnel connected", func(t *testing.T) {
		runner := &stubRunner{
			outputs: map[string]string{
				"systemctl is-active cloudflared": "active\n",
				"cloudflared tunnel list":         tunnelListOutput,
			},
		}
		handler := NewCloudflaredHandler(newTestService(t, runner, nil))

		req := httptest.NewRequest(http.MethodGet, "/api/cloudflared", nil)
		w := httptest.NewRecorder()

		handler.GetCloudflared(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}

		var info snapshotdomain.CloudflaredInfo
		if err := json.NewDecoder(w.Body).Decode(&info); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if info.Status != snapshotdomain.TunnelConnected {
			t.Errorf("expected status connected, got %q", info.Status)
		}
		if info.Tunnel != "home-pi" {
			t.Errorf("expected tunnel home-pi, got %q", info.Tunnel)
		}
		if info.Uptime != "0 days, 01 hrs, 00 mins" {
			t.Errorf("expected one hour process uptime, got %q", info.Uptime)
		}
	})

	t.Run("unit inactive", func(t *testing.T) {
		runner := &stubRunner{
			outputs: map[string]string{
				"systemctl is-active cloudflared": "inactive\n",
			},
			errs: map[string]error{
				"systemctl is-active cloudflared": snapshotdomain.ErrNonZeroExit,
			},
		}
		handler := NewCloudflaredHandler(newTestService(t, runner, nil))

		req := httptest.NewRequest(http.MethodGet, "/api/cloudflared", nil)
		w := httptest.NewRecorder()

		handler.GetCloudflared(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}

		var info snapshotdomain.CloudflaredInfo
		if err := json.NewDecoder(w.Body).Decode(&info); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if info.Status != snapshotdomain.TunnelDisconnected {
			t.Errorf("expected status disconnected, got %q", info.Status)
		}
		if info.Tunnel != snapshotdomain.NotAvailable {
			t.Errorf("expected tunnel N/A, got %q", info.Tunnel)
		}
		if info.Uptime != snapshotdomain.NotAvailable {
			t.Errorf("expected uptime N/A, got %q", info.Uptime)
		}
	})
}
