package scan

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/pkg/logger"
	"github.com/doeshing/macfix/internal/ports"
)

type stubProbe struct {
	name   string
	remedy string
	check  domain.HealthCheck
	panics bool
}

func (s stubProbe) Name() string   { return s.name }
func (s stubProbe) Remedy() string { return s.remedy }
func (s stubProbe) Run(context.Context) domain.HealthCheck {
	if s.panics {
		panic("probe exploded")
	}
	return s.check
}

func TestRunDeduplicatesSharedRemedies(t *testing.T) {
	svc := &Service{
		Probes: []ports.Probe{
			stubProbe{name: "Internet connectivity", remedy: domain.ActionRenewDHCP,
				check: domain.HealthCheck{Name: "Internet connectivity", Status: domain.StatusError}},
			stubProbe{name: "Default gateway", remedy: domain.ActionRenewDHCP,
				check: domain.HealthCheck{Name: "Default gateway", Status: domain.StatusError}},
			stubProbe{name: "VPN", remedy: domain.ActionRenewDHCP,
				check: domain.HealthCheck{Name: "VPN", Status: domain.StatusWarning}},
		},
		Logger: logger.NewStd(false),
	}

	report := svc.Run(context.Background())

	// Three probes share one remedy; the list holds it once.
	want := []string{domain.ActionRenewDHCP}
	if diff := cmp.Diff(want, report.Recommendations); diff != "" {
		t.Fatalf("recommendations mismatch (-want +got):\n%s", diff)
	}
	if report.Warnings != 1 || report.Errors != 2 {
		t.Fatalf("counters = %d warnings, %d errors, want 1 and 2", report.Warnings, report.Errors)
	}
}

func TestRunRecommendsCleanSystemForFullDisk(t *testing.T) {
	svc := &Service{
		Probes: []ports.Probe{
			stubProbe{name: "Disk space", remedy: domain.ActionCleanSystem,
				check: domain.HealthCheck{Name: "Disk space", Status: domain.StatusError, Detail: "root volume 95% used"}},
		},
	}

	report := svc.Run(context.Background())

	if report.Checks[0].Status != domain.StatusError {
		t.Fatalf("disk status = %s, want error", report.Checks[0].Status)
	}
	if len(report.Recommendations) != 1 || report.Recommendations[0] != domain.ActionCleanSystem {
		t.Fatalf("recommendations = %v, want [%s]", report.Recommendations, domain.ActionCleanSystem)
	}
}

func TestRunSurvivesPanickingProbe(t *testing.T) {
	svc := &Service{
		Probes: []ports.Probe{
			stubProbe{name: "Firewall", remedy: domain.ActionEnableFirewall, panics: true},
			stubProbe{name: "Memory", remedy: domain.ActionRestartUI,
				check: domain.HealthCheck{Name: "Memory", Status: domain.StatusOK}},
		},
		Logger: logger.NewStd(false),
	}

	report := svc.Run(context.Background())

	if len(report.Checks) != 2 {
		t.Fatalf("got %d checks, want 2: a failing probe must not abort the scan", len(report.Checks))
	}
	broken := report.Checks[0]
	if broken.Status != domain.StatusError || !strings.Contains(broken.Detail, "probe unavailable") {
		t.Fatalf("broken probe check = %+v, want error with probe unavailable detail", broken)
	}
	if report.Checks[1].Status != domain.StatusOK {
		t.Fatalf("second probe did not run: %+v", report.Checks[1])
	}
}
