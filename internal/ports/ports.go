// Package ports defines the interfaces between the application core and the
// infrastructure adapters.
//
// The application layer (scan aggregator, action dispatcher) depends only on
// these abstractions; concrete implementations live in the infrastructure
// layer and wrap external OS utilities, the terminal and local storage.
package ports

import (
	"context"

	"github.com/doeshing/macfix/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.macfix/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CommandRunner executes one external command to completion and reports its
// observable result. LookPath resolves a binary on PATH so probes and
// actions can degrade gracefully when an optional collaborator is absent.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (domain.ExecutionResult, error)
	LookPath(name string) (string, error)
}

// Probe is a single read-only health check. Run blocks until the underlying
// command finishes and never mutates system state. Remedy names the
// remedial action recommended when the probe does not pass ("" when none).
type Probe interface {
	Name() string
	Remedy() string
	Run(ctx context.Context) domain.HealthCheck
}

// Action is a mutating remedial operation. Actions targeting multiple
// resources iterate all of them and report a partial outcome instead of
// stopping at the first failure.
type Action interface {
	Name() string
	Title() string
	Destructive() bool
	Run(ctx context.Context) domain.Outcome
}

// ConfirmationPrompter asks the user to approve a destructive action.
type ConfirmationPrompter interface {
	Confirm(title string) (bool, error)
	Enabled() bool
}

// HistoryStore persists executed-action records for later inspection.
type HistoryStore interface {
	Save(record domain.ActionRecord) error
	Records(limit int, search string) ([]domain.ActionRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// Transcript appends human-readable log lines to an externally owned file.
type Transcript interface {
	Append(line string) error
}

// Logger provides leveled logging. Warn and Error output is always shown;
// Debug and Info are gated by verbosity.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
