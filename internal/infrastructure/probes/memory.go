package probes

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// MemoryProbe checks the free page count reported by vm_stat against a
// fixed threshold.
type MemoryProbe struct {
	Runner       ports.CommandRunner
	MinFreePages int64
}

func (p *MemoryProbe) Name() string   { return "Memory" }
func (p *MemoryProbe) Remedy() string { return domain.ActionRestartUI }

func (p *MemoryProbe) Run(ctx context.Context) domain.HealthCheck {
	res, err := p.Runner.Run(ctx, "vm_stat")
	if err != nil {
		return unavailable(p.Name(), err.Error())
	}
	free, err := parseFreePages(res.Stdout)
	if err != nil {
		return unavailable(p.Name(), err.Error())
	}
	detail := fmt.Sprintf("%s pages free (threshold %s)",
		humanize.Comma(free), humanize.Comma(p.MinFreePages))
	if free < p.MinFreePages {
		return warn(p.Name(), detail)
	}
	return ok(p.Name(), detail)
}

// parseFreePages extracts the "Pages free" counter from vm_stat output.
// vm_stat terminates every value with a period.
func parseFreePages(out string) (int64, error) {
	for _, line := range strings.Split(out, "\n") {
		value, found := strings.CutPrefix(strings.TrimSpace(line), "Pages free:")
		if !found {
			continue
		}
		value = strings.TrimSuffix(strings.TrimSpace(value), ".")
		free, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("unexpected page count %q", value)
		}
		return free, nil
	}
	return 0, fmt.Errorf("no Pages free line in vm_stat output")
}
