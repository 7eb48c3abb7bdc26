package probes

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// DNSProbe resolves a well-known hostname with dig and passes only when the
// answer is a syntactically valid IPv4/IPv6 literal.
type DNSProbe struct {
	Runner ports.CommandRunner
	Host   string
}

func (p *DNSProbe) Name() string   { return "DNS resolution" }
func (p *DNSProbe) Remedy() string { return domain.ActionFlushDNS }

func (p *DNSProbe) Run(ctx context.Context) domain.HealthCheck {
	if _, err := p.Runner.LookPath("dig"); err != nil {
		return skipped(p.Name(), "dig")
	}
	res, err := p.Runner.Run(ctx, "dig", "+short", p.Host)
	if err != nil {
		return fail(p.Name(), fmt.Sprintf("lookup of %s failed", p.Host))
	}
	addr := firstAnswer(res.Stdout)
	if addr == "" {
		return fail(p.Name(), fmt.Sprintf("%s did not resolve", p.Host))
	}
	if net.ParseIP(addr) == nil {
		return fail(p.Name(), fmt.Sprintf("%s resolved to %q, not an address", p.Host, addr))
	}
	return ok(p.Name(), fmt.Sprintf("%s -> %s", p.Host, addr))
}

// firstAnswer returns the first non-empty line of a `dig +short` answer.
// CNAME chains put the target address on a later line, so trailing lines are
// preferred when the first one is not an address.
func firstAnswer(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	answer := ""
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), "."))
		if line == "" {
			continue
		}
		answer = line
		if net.ParseIP(line) != nil {
			return line
		}
	}
	return answer
}
