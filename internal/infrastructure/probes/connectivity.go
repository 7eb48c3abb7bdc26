package probes

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// ConnectivityProbe pings a well-known public address a fixed number of
// times. The ping count bounds worst-case latency; there is no separate
// timeout layer.
type ConnectivityProbe struct {
	Runner ports.CommandRunner
	Target string
	Count  int
}

func (p *ConnectivityProbe) Name() string   { return "Internet connectivity" }
func (p *ConnectivityProbe) Remedy() string { return domain.ActionRenewDHCP }

func (p *ConnectivityProbe) Run(ctx context.Context) domain.HealthCheck {
	count := p.Count
	if count <= 0 {
		count = 3
	}
	res, err := p.Runner.Run(ctx, "ping", "-c", strconv.Itoa(count), p.Target)
	if err != nil {
		if res.ExitCode > 0 {
			return fail(p.Name(), fmt.Sprintf("%s unreachable", p.Target))
		}
		return unavailable(p.Name(), err.Error())
	}
	return ok(p.Name(), fmt.Sprintf("%s reachable", p.Target))
}

// GatewayProbe resolves the default gateway from the routing table and
// checks it answers a ping.
type GatewayProbe struct {
	Runner ports.CommandRunner
}

func (p *GatewayProbe) Name() string   { return "Default gateway" }
func (p *GatewayProbe) Remedy() string { return domain.ActionRenewDHCP }

func (p *GatewayProbe) Run(ctx context.Context) domain.HealthCheck {
	res, err := p.Runner.Run(ctx, "route", "-n", "get", "default")
	if err != nil {
		return fail(p.Name(), "no default route")
	}
	gateway, err := parseGateway(res.Stdout)
	if err != nil {
		return fail(p.Name(), err.Error())
	}
	if _, err := p.Runner.Run(ctx, "ping", "-c", "1", gateway); err != nil {
		return fail(p.Name(), fmt.Sprintf("gateway %s not responding", gateway))
	}
	return ok(p.Name(), fmt.Sprintf("gateway %s responding", gateway))
}

// parseGateway extracts the gateway address from `route -n get default`.
func parseGateway(out string) (string, error) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if value, found := strings.CutPrefix(line, "gateway:"); found {
			gateway := strings.TrimSpace(value)
			if gateway != "" {
				return gateway, nil
			}
		}
	}
	return "", fmt.Errorf("no gateway in routing table")
}
