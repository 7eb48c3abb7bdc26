package probes

import (
	"context"
	"strings"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// PrinterProbe passes when no configured printer reports a disabled state.
type PrinterProbe struct {
	Runner ports.CommandRunner
}

func (p *PrinterProbe) Name() string   { return "Printers" }
func (p *PrinterProbe) Remedy() string { return domain.ActionResetPrinting }

func (p *PrinterProbe) Run(ctx context.Context) domain.HealthCheck {
	if _, err := p.Runner.LookPath("lpstat"); err != nil {
		return skipped(p.Name(), "lpstat")
	}
	res, err := p.Runner.Run(ctx, "lpstat", "-p")
	if err != nil {
		// lpstat exits non-zero when no printers are configured.
		if strings.Contains(res.Stderr, "No destinations") || strings.Contains(res.Stdout, "No destinations") {
			return ok(p.Name(), "no printers configured")
		}
		return unavailable(p.Name(), err.Error())
	}
	if disabled := disabledPrinters(res.Stdout); len(disabled) > 0 {
		return warn(p.Name(), "disabled: "+strings.Join(disabled, ", "))
	}
	return ok(p.Name(), "all printer queues enabled")
}

// disabledPrinters collects printer names from `lpstat -p` lines that report
// a disabled queue, e.g. "printer Office_HP disabled since ...".
func disabledPrinters(out string) []string {
	var disabled []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 3 && fields[0] == "printer" && strings.Contains(line, "disabled") {
			disabled = append(disabled, fields[1])
		}
	}
	return disabled
}
