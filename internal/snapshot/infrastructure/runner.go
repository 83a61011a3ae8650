package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"pidash/internal/snapshot/domain"
)

// ExecRunner implements the domain Runner interface with os/exec
type ExecRunner struct{}

// NewExecRunner creates a new exec-backed command runner
func NewExecRunner() domain.Runner {
	return &ExecRunner{}
}

// Run executes a command with a hard timeout and returns its stdout.
// A non-zero exit wraps domain.ErrNonZeroExit and keeps the captured
// output, since several probes read the exit code as a status signal.
func (r *ExecRunner) Run(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(cctx, name, args...).Output()
	if cctx.Err() != nil {
		// Timeout or parent cancellation, not a command verdict
		return "", fmt.Errorf("%s: %w", name, cctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), fmt.Errorf("%s exited %d: %w", name, exitErr.ExitCode(), domain.ErrNonZeroExit)
	}
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", name, err)
	}

	return string(out), nil
}
