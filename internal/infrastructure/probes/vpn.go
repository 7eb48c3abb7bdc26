package probes

import (
	"context"
	"strings"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// VPNProbe passes when a virtual tunnel interface carries an address or any
// named network service reports "Connected" via scutil.
type VPNProbe struct {
	Runner ports.CommandRunner
}

func (p *VPNProbe) Name() string   { return "VPN" }
func (p *VPNProbe) Remedy() string { return domain.ActionRenewDHCP }

func (p *VPNProbe) Run(ctx context.Context) domain.HealthCheck {
	res, err := p.Runner.Run(ctx, "ifconfig")
	if err != nil {
		return unavailable(p.Name(), err.Error())
	}
	if name := activeTunnelInterface(res.Stdout); name != "" {
		return ok(p.Name(), "tunnel interface "+name+" active")
	}
	if res, err := p.Runner.Run(ctx, "scutil", "--nc", "list"); err == nil {
		if hasConnectedService(res.Stdout) {
			return ok(p.Name(), "network service reports Connected")
		}
	}
	return warn(p.Name(), "no active VPN connection detected")
}

// activeTunnelInterface scans ifconfig output for a utun/ppp/ipsec stanza
// that carries an inet address and returns its interface name.
func activeTunnelInterface(out string) string {
	current := ""
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		if line[0] != ' ' && line[0] != '\t' {
			name, _, found := strings.Cut(line, ":")
			if !found {
				continue
			}
			if isTunnelName(name) {
				current = name
			} else {
				current = ""
			}
			continue
		}
		if current != "" && strings.Contains(strings.TrimSpace(line), "inet ") {
			return current
		}
	}
	return ""
}

func isTunnelName(name string) bool {
	return strings.HasPrefix(name, "utun") ||
		strings.HasPrefix(name, "ppp") ||
		strings.HasPrefix(name, "ipsec")
}

// hasConnectedService reports whether any line of `scutil --nc list` marks a
// service as Connected.
func hasConnectedService(out string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "(Connected)") {
			return true
		}
	}
	return false
}
