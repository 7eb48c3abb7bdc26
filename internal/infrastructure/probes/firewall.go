package probes

import (
	"context"
	"strings"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

const socketfilterfw = "/usr/libexec/ApplicationFirewall/socketfilterfw"

// FirewallProbe queries the application firewall's global state. Querying
// requires elevated privilege; without it the probe degrades instead of
// aborting the scan.
type FirewallProbe struct {
	Runner ports.CommandRunner
}

func (p *FirewallProbe) Name() string   { return "Firewall" }
func (p *FirewallProbe) Remedy() string { return domain.ActionEnableFirewall }

func (p *FirewallProbe) Run(ctx context.Context) domain.HealthCheck {
	res, err := p.Runner.Run(ctx, socketfilterfw, "--getglobalstate")
	if err != nil {
		return unavailable(p.Name(), "firewall state query failed (requires administrator privileges)")
	}
	if firewallEnabled(res.Stdout) {
		return ok(p.Name(), "application firewall enabled")
	}
	return warn(p.Name(), "application firewall disabled")
}

// firewallEnabled trusts the literal substring "enabled" anywhere in the
// status line, matching the behavior of the tooling this replaces.
func firewallEnabled(out string) bool {
	return strings.Contains(strings.ToLower(out), "enabled")
}
