package application

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"pidash/internal/config/domain"
	"pidash/internal/infrastructure/logger"
	"pidash/internal/shared/validation"
)

// LoadServices reads the monitored service list from the JSON file at
// path. Any failure (missing file, bad JSON, validation problems) falls
// back to the built-in defaults so the dashboard never starts without a
// list. An explicitly empty list is honored as-is.
func LoadServices(logger *logger.Logger, path string) []domain.ServiceEntry {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Services config not readable, using defaults", "path", path, "err", err)
		return domain.DefaultServices()
	}

	entries, err := ParseServices(raw)
	if err != nil {
		logger.Warn("Services config rejected, using defaults", "path", path, "err", err)
		return domain.DefaultServices()
	}
	if entries == nil {
		logger.Debug("Services config carries no services key, using defaults", "path", path)
		return domain.DefaultServices()
	}

	logger.Debug("Loaded services config", "path", path, "services", len(entries))
	return entries
}

// ParseServices decodes and validates a raw service list. A nil result
// with a nil error means the services key was absent or null.
func ParseServices(raw []byte) ([]domain.ServiceEntry, error) {
	var file domain.ServicesFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse services config: %w", err)
	}

	if file.Services == nil {
		return nil, nil
	}

	problems := file.Valid(context.TODO())
	if len(problems) > 0 {
		return nil, validation.NewValidationError(problems, "services")
	}

	return file.Services, nil
}
