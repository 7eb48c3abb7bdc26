// Package scan implements the diagnostic aggregator: a fixed battery of
// independent health probes assembled into one report with deduplicated
// remedial recommendations.
package scan

import (
	"context"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// Service runs the probe battery.
type Service struct {
	Probes []ports.Probe
	Logger ports.Logger
}

// Run executes every registered probe in order and builds a fresh report.
// The order affects only presentation. A probe blowing up yields an ERROR
// check for that probe; the rest of the scan still runs.
func (s *Service) Run(ctx context.Context) domain.RunReport {
	report := domain.NewRunReport()
	for _, p := range s.Probes {
		check := s.runProbe(ctx, p)
		if check.Status != domain.StatusOK && check.Remedy == "" {
			check.Remedy = p.Remedy()
		}
		if s.Logger != nil {
			s.Logger.Debug("probe finished", map[string]interface{}{
				"probe":  check.Name,
				"status": check.Status,
			})
		}
		report.Append(check)
	}
	return report
}

func (s *Service) runProbe(ctx context.Context, p ports.Probe) (check domain.HealthCheck) {
	defer func() {
		if r := recover(); r != nil {
			check = domain.HealthCheck{
				Name:   p.Name(),
				Status: domain.StatusError,
				Detail: "probe unavailable",
				Remedy: p.Remedy(),
			}
			if s.Logger != nil {
				s.Logger.Error("probe panicked", nil, map[string]interface{}{
					"probe": p.Name(),
					"panic": r,
				})
			}
		}
	}()
	return p.Run(ctx)
}
