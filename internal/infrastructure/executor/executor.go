package executor

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// LocalRunner executes commands on the local host.
type LocalRunner struct{}

// NewLocalRunner builds a new runner.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{}
}

// Run implements ports.CommandRunner. The command runs to completion; the
// returned result carries exit code, captured output and wall time even when
// err is non-nil.
func (r *LocalRunner) Run(ctx context.Context, name string, args ...string) (domain.ExecutionResult, error) {
	c := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
		return result, err
	}
	if err != nil {
		result.Err = err
		return result, err
	}
	return result, nil
}

// LookPath implements ports.CommandRunner.
func (r *LocalRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

var _ ports.CommandRunner = (*LocalRunner)(nil)
