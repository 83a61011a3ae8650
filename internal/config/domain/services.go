package domain

import (
	"context"
	"fmt"

	"pidash/pkg/utils"
)

// ServiceEntry represents one systemd unit the dashboard reports on
type ServiceEntry struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

func (e *ServiceEntry) Valid(ctx context.Context) map[string]string {
	err := utils.CheckName(e.Name)
	if err != nil {
		return map[string]string{
			"name": err.Error(),
		}
	}

	return nil
}

// ServicesFile represents the on-disk service list configuration.
// A nil Services slice after decoding means the key was absent or null,
// which callers treat differently from an explicitly empty list.
type ServicesFile struct {
	Services []ServiceEntry `json:"services"`
}

func (f *ServicesFile) Valid(ctx context.Context) map[string]string {
	problems := make(map[string]string)

	for i, entry := range f.Services {
		for field, problem := range entry.Valid(ctx) {
			problems[fmt.Sprintf("services[%d].%s", i, field)] = problem
		}
	}

	return problems
}

// DefaultServices returns the built-in service list used when no valid
// configuration file is available
func DefaultServices() []ServiceEntry {
	return []ServiceEntry{
		{Name: "ssh", DisplayName: "SSH Server", Description: "Secure Shell daemon for remote access"},
		{Name: "nginx", DisplayName: "Nginx", Description: "Web server and reverse proxy"},
		{Name: "docker", DisplayName: "Docker", Description: "Container runtime platform"},
		{Name: "cloudflared", DisplayName: "Cloudflared", Description: "Cloudflare tunnel daemon"},
	}
}
