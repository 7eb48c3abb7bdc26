package probes

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// UpdatesProbe lists pending OS updates via softwareupdate, plus pending App
// Store updates when the optional mas CLI is installed. A missing mas only
// adds a skipped note; the OS portion still yields a determinate result.
type UpdatesProbe struct {
	Runner ports.CommandRunner
}

func (p *UpdatesProbe) Name() string   { return "Software updates" }
func (p *UpdatesProbe) Remedy() string { return domain.ActionInstallUpdates }

func (p *UpdatesProbe) Run(ctx context.Context) domain.HealthCheck {
	res, err := p.Runner.Run(ctx, "softwareupdate", "-l")
	// softwareupdate exits non-zero when no updates are found on some
	// releases, so classify from output before giving up on the error.
	listing := res.Stdout + res.Stderr
	if err != nil && strings.TrimSpace(listing) == "" {
		return unavailable(p.Name(), err.Error())
	}
	pending := countPendingUpdates(listing)

	appNote := ""
	if _, err := p.Runner.LookPath("mas"); err != nil {
		appNote = ", App Store check skipped (mas not installed)"
	} else if res, err := p.Runner.Run(ctx, "mas", "outdated"); err == nil {
		if outdated := countNonEmptyLines(res.Stdout); outdated > 0 {
			appNote = fmt.Sprintf(", %d App Store updates pending", outdated)
			return warn(p.Name(), fmt.Sprintf("%d OS updates pending%s", pending, appNote))
		}
	}

	if pending > 0 {
		return warn(p.Name(), fmt.Sprintf("%d OS updates pending%s", pending, appNote))
	}
	return ok(p.Name(), "no updates pending"+appNote)
}

// countPendingUpdates counts listing entries marked available. softwareupdate
// prefixes each available item with "*".
func countPendingUpdates(out string) int {
	count := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "*") {
			count++
		}
	}
	return count
}

func countNonEmptyLines(out string) int {
	count := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
