// Package domain defines core entities and value objects for macfix.
//
// The domain layer is independent of infrastructure concerns: it knows
// nothing about which external commands produce a probe result or how a
// remedial action is carried out.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProbeStatus indicates the outcome of a single health probe.
type ProbeStatus string

const (
	StatusOK      ProbeStatus = "ok"
	StatusWarning ProbeStatus = "warning"
	StatusError   ProbeStatus = "error"
)

// HealthCheck captures a single diagnostic result. It is immutable once
// constructed; Status is derived purely from observed command output.
type HealthCheck struct {
	Name   string
	Status ProbeStatus
	Detail string
	// Remedy is the name of the remedial action recommended when the
	// check is not OK. Empty when no remedy applies.
	Remedy string
}

// RunReport aggregates the checks of one scan invocation. It is built once
// per scan and discarded after display; no cross-run state exists.
type RunReport struct {
	ID              string
	StartedAt       time.Time
	Checks          []HealthCheck
	Recommendations []string
	Warnings        int
	Errors          int
}

// NewRunReport creates an empty report stamped with a fresh run ID.
func NewRunReport() RunReport {
	return RunReport{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// Append records a check, updates the warning/error counters and collects
// the check's remedy. Recommendations keep insertion order and hold at most
// one entry per distinct action name, even when several checks suggest the
// same remedy.
func (r *RunReport) Append(check HealthCheck) {
	r.Checks = append(r.Checks, check)
	switch check.Status {
	case StatusWarning:
		r.Warnings++
	case StatusError:
		r.Errors++
	default:
		return
	}
	if check.Remedy == "" {
		return
	}
	for _, name := range r.Recommendations {
		if name == check.Remedy {
			return
		}
	}
	r.Recommendations = append(r.Recommendations, check.Remedy)
}

// Healthy reports whether the scan finished without warnings or errors.
func (r *RunReport) Healthy() bool {
	return r.Warnings == 0 && r.Errors == 0
}
