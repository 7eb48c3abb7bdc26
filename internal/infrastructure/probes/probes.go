// Package probes implements the read-only health checks behind the quick
// system scan. Each probe wraps one macOS command-line tool and derives its
// tri-state result from the tool's output.
package probes

import (
	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// DefaultSet returns the scan battery in its fixed report order.
func DefaultSet(runner ports.CommandRunner, cfg domain.Config) []ports.Probe {
	return []ports.Probe{
		&ConnectivityProbe{Runner: runner, Target: cfg.Network.PingTarget, Count: cfg.Network.PingCount},
		&GatewayProbe{Runner: runner},
		&DNSProbe{Runner: runner, Host: cfg.Network.DNSProbeHost},
		&VPNProbe{Runner: runner},
		&FirewallProbe{Runner: runner},
		&DiskProbe{Runner: runner, UsedPercentMax: cfg.Thresholds.DiskUsedPercentMax},
		&MemoryProbe{Runner: runner, MinFreePages: cfg.Thresholds.MinFreeMemoryPages},
		&UpdatesProbe{Runner: runner},
		&PrinterProbe{Runner: runner},
	}
}

func ok(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.StatusOK, Detail: detail}
}

func warn(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.StatusWarning, Detail: detail}
}

func fail(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.StatusError, Detail: detail}
}

// unavailable marks a probe whose own tooling failed. One broken probe must
// not abort the rest of the scan.
func unavailable(name, detail string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.StatusError, Detail: "probe unavailable: " + detail}
}

// skipped marks a probe whose collaborator binary is not installed.
func skipped(name, binary string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.StatusWarning, Detail: binary + " unavailable, skipped"}
}
