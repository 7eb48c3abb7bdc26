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

// DiskProbe checks used space on the root volume against a fixed threshold.
type DiskProbe struct {
	Runner         ports.CommandRunner
	UsedPercentMax int
}

func (p *DiskProbe) Name() string   { return "Disk space" }
func (p *DiskProbe) Remedy() string { return domain.ActionCleanSystem }

func (p *DiskProbe) Run(ctx context.Context) domain.HealthCheck {
	res, err := p.Runner.Run(ctx, "df", "-Pk", "/")
	if err != nil {
		return unavailable(p.Name(), err.Error())
	}
	usedPercent, availKB, err := parseDiskUsage(res.Stdout)
	if err != nil {
		return unavailable(p.Name(), err.Error())
	}
	detail := fmt.Sprintf("root volume %d%% used, %s free", usedPercent, humanize.IBytes(availKB*1024))
	if usedPercent >= p.UsedPercentMax {
		return fail(p.Name(), detail)
	}
	return ok(p.Name(), detail)
}

// parseDiskUsage reads the data row of `df -Pk /`. POSIX output pins the
// capacity column to the fifth field.
func parseDiskUsage(out string) (usedPercent int, availKB uint64, err error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return 0, 0, fmt.Errorf("unexpected df output")
	}
	fields := strings.Fields(lines[1])
	if len(fields) < 5 {
		return 0, 0, fmt.Errorf("unexpected df output")
	}
	usedPercent, err = strconv.Atoi(strings.TrimSuffix(fields[4], "%"))
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected capacity field %q", fields[4])
	}
	availKB, err = strconv.ParseUint(fields[3], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected available field %q", fields[3])
	}
	return usedPercent, availKB, nil
}
