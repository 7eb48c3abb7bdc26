// Package batch composes the non-interactive subcommands: a full scan
// followed by every recommended fix, or a fixed action sequence.
package batch

import (
	"context"

	"github.com/doeshing/macfix/internal/application/dispatch"
	"github.com/doeshing/macfix/internal/application/scan"
	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// Service runs batch compositions.
type Service struct {
	Scanner    *scan.Service
	Dispatcher *dispatch.Service
	Logger     ports.Logger
}

// Result aggregates one batch run.
type Result struct {
	Report   domain.RunReport
	Outcomes []domain.Outcome
}

// Failed reports whether any step ended in a hard failure. Warnings,
// cancellations and skips do not count.
func (r Result) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Status == domain.OutcomeError {
			return true
		}
	}
	return false
}

// RunAll scans and then executes every recommended action in report order.
// A failing step never stops the remaining ones; the caller inspects
// Failed() to decide the process exit code after all steps reported.
func (s *Service) RunAll(ctx context.Context) Result {
	result := Result{Report: s.Scanner.Run(ctx)}
	for _, name := range result.Report.Recommendations {
		result.Outcomes = append(result.Outcomes, s.Dispatcher.Execute(ctx, name))
	}
	return result
}

// RunSequence executes a fixed action list, continuing past failures.
func (s *Service) RunSequence(ctx context.Context, names ...string) Result {
	var result Result
	for _, name := range names {
		result.Outcomes = append(result.Outcomes, s.Dispatcher.Execute(ctx, name))
	}
	return result
}
