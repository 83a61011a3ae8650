package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		problems map[string]string
		path     []string
		wantMsg  string
	}{
		{
			name: "single problem",
			problems: map[string]string{
				"name": "name is required",
			},
			path:    []string{"services"},
			wantMsg: "validation errors found in 'services'",
		},
		{
			name: "multiple problems",
			problems: map[string]string{
				"services[0].name": "name is required",
				"services[2].name": "name is required",
			},
			path:    []string{"services"},
			wantMsg: "validation errors found in 'services'",
		},
		{
			name:     "joined path",
			problems: map[string]string{"name": "name is required"},
			path:     []string{"config", "services"},
			wantMsg:  "validation errors found in 'config.services'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.problems, tt.path...)

			msg := err.Error()
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("expected error message to contain %q, got %q", tt.wantMsg, msg)
			}

			// Check that all problems are in the error message
			for field, problem := range tt.problems {
				if !strings.Contains(msg, field) {
					t.Errorf("expected error message to contain field %q", field)
				}
				if !strings.Contains(msg, problem) {
					t.Errorf("expected error message to contain problem %q", problem)
				}
			}
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	err1 := NewValidationError(map[string]string{"name": "required"}, "services")
	err2 := NewValidationError(map[string]string{"services": "empty"}, "services")
	var validationErr *ValidationError

	if !errors.Is(err1, err2) {
		t.Error("expected ValidationError.Is to return true for another ValidationError")
	}

	if !errors.As(err1, &validationErr) {
		t.Error("expected errors.As to work with ValidationError")
	}
}
