package application

import (
	"errors"
	"testing"
)

func TestLoadRuntimeConfig(t *testing.T) {
	t.Run("defaults apply when nothing is set", func(t *testing.T) {
		cfg := LoadRuntimeConfig("", "", "", "", "", false)

		if cfg.APIPort != "5555" {
			t.Errorf("expected default port 5555, got %q", cfg.APIPort)
		}
		if cfg.ServicesPath != "config/services.json" {
			t.Errorf("unexpected default services path: %q", cfg.ServicesPath)
		}
		if cfg.DevMode {
			t.Error("dev mode should default to off")
		}
		if cfg.LogLevel != "INFO" || cfg.LogFormat != "text" || cfg.LogOutput != "stdout" {
			t.Errorf("unexpected logging defaults: %+v", cfg)
		}
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("PIDASH_API_PORT", "8080")
		t.Setenv("PIDASH_SERVICES_CONFIG", "/etc/pidash/services.json")
		t.Setenv("PIDASH_DEV_MODE", "true")
		t.Setenv("PIDASH_LOG_LEVEL", "DEBUG")

		cfg := LoadRuntimeConfig("", "", "", "", "", false)

		if cfg.APIPort != "8080" {
			t.Errorf("expected port 8080, got %q", cfg.APIPort)
		}
		if cfg.ServicesPath != "/etc/pidash/services.json" {
			t.Errorf("unexpected services path: %q", cfg.ServicesPath)
		}
		if !cfg.DevMode {
			t.Error("expected dev mode on")
		}
		if cfg.LogLevel != "DEBUG" {
			t.Errorf("expected log level DEBUG, got %q", cfg.LogLevel)
		}
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("PIDASH_API_PORT", "8080")
		t.Setenv("PIDASH_LOG_FORMAT", "json")

		cfg := LoadRuntimeConfig("9000", "", "", "text", "", false)

		if cfg.APIPort != "9000" {
			t.Errorf("expected flag port 9000, got %q", cfg.APIPort)
		}
		if cfg.LogFormat != "text" {
			t.Errorf("expected flag format text, got %q", cfg.LogFormat)
		}
	})
}

func TestRuntimeConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		port      string
		services  string
		wantError bool
		wantField string
	}{
		{
			name:     "valid config",
			port:     "5555",
			services: "config/services.json",
		},
		{
			name:      "non-numeric port",
			port:      "http",
			services:  "config/services.json",
			wantError: true,
			wantField: "port",
		},
		{
			name:      "port out of range",
			port:      "70000",
			services:  "config/services.json",
			wantError: true,
			wantField: "port",
		},
		{
			name:      "empty services path",
			port:      "5555",
			services:  "",
			wantError: true,
			wantField: "services-config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &RuntimeConfig{APIPort: tt.port, ServicesPath: tt.services}

			err := cfg.Validate()

			if !tt.wantError {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, cfgErr.Field)
			}
		})
	}
}
