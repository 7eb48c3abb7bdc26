package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// FlushDNS clears the directory-service cache and signals mDNSResponder to
// drop its own.
type FlushDNS struct {
	Runner ports.CommandRunner
}

func (a *FlushDNS) Name() string      { return domain.ActionFlushDNS }
func (a *FlushDNS) Title() string     { return "Flush DNS Cache" }
func (a *FlushDNS) Destructive() bool { return false }

func (a *FlushDNS) Run(ctx context.Context) domain.Outcome {
	var succeeded, failed []string
	if _, err := a.Runner.Run(ctx, "dscacheutil", "-flushcache"); err != nil {
		failed = append(failed, "dscacheutil")
	} else {
		succeeded = append(succeeded, "dscacheutil")
	}
	if _, err := a.Runner.Run(ctx, "killall", "-HUP", "mDNSResponder"); err != nil {
		failed = append(failed, "mDNSResponder")
	} else {
		succeeded = append(succeeded, "mDNSResponder")
	}
	return resourceOutcome(a.Name(), "flushed", succeeded, failed)
}

// RenewDHCP renews the DHCP lease on every hardware network interface. All
// interfaces are attempted; a mixed result reports which ones failed.
type RenewDHCP struct {
	Runner ports.CommandRunner
}

func (a *RenewDHCP) Name() string      { return domain.ActionRenewDHCP }
func (a *RenewDHCP) Title() string     { return "Renew DHCP Lease" }
func (a *RenewDHCP) Destructive() bool { return false }

func (a *RenewDHCP) Run(ctx context.Context) domain.Outcome {
	res, err := a.Runner.Run(ctx, "networksetup", "-listallhardwareports")
	if err != nil {
		return errorOutcome(a.Name(), "could not list hardware ports: "+err.Error())
	}
	devices := parseHardwarePorts(res.Stdout)
	if len(devices) == 0 {
		return errorOutcome(a.Name(), "no network interfaces found")
	}
	var succeeded, failed []string
	for _, dev := range devices {
		if _, err := a.Runner.Run(ctx, "ipconfig", "set", dev, "DHCP"); err != nil {
			failed = append(failed, dev)
		} else {
			succeeded = append(succeeded, dev)
		}
	}
	return resourceOutcome(a.Name(), "renewed lease on", succeeded, failed)
}

// parseHardwarePorts extracts device names (en0, en1, ...) from
// `networksetup -listallhardwareports`.
func parseHardwarePorts(out string) []string {
	var devices []string
	for _, line := range strings.Split(out, "\n") {
		if value, found := strings.CutPrefix(strings.TrimSpace(line), "Device:"); found {
			if dev := strings.TrimSpace(value); dev != "" {
				devices = append(devices, dev)
			}
		}
	}
	return devices
}

// Traceroute traces the route to the configured target. It is long-running
// and blocks the session until the command completes.
type Traceroute struct {
	Runner ports.CommandRunner
	Target string
}

func (a *Traceroute) Name() string      { return domain.ActionTraceroute }
func (a *Traceroute) Title() string     { return "Traceroute" }
func (a *Traceroute) Destructive() bool { return false }

func (a *Traceroute) Run(ctx context.Context) domain.Outcome {
	res, err := a.Runner.Run(ctx, "traceroute", "-m", "15", a.Target)
	if err != nil && strings.TrimSpace(res.Stdout) == "" {
		return errorOutcome(a.Name(), fmt.Sprintf("traceroute to %s failed: %v", a.Target, err))
	}
	return successOutcome(a.Name(), strings.TrimRight(res.Stdout, "\n"))
}

// SpeedTest runs whichever speed-test CLI is installed: the built-in
// networkQuality on recent macOS, or the third-party speedtest-cli. With
// neither present the action is skipped, not failed.
type SpeedTest struct {
	Runner ports.CommandRunner
}

func (a *SpeedTest) Name() string      { return domain.ActionSpeedTest }
func (a *SpeedTest) Title() string     { return "Internet Speed Test" }
func (a *SpeedTest) Destructive() bool { return false }

func (a *SpeedTest) Run(ctx context.Context) domain.Outcome {
	for _, tool := range []string{"networkQuality", "speedtest-cli"} {
		if _, err := a.Runner.LookPath(tool); err != nil {
			continue
		}
		res, err := a.Runner.Run(ctx, tool)
		if err != nil {
			return errorOutcome(a.Name(), fmt.Sprintf("%s failed: %v", tool, err))
		}
		return successOutcome(a.Name(), strings.TrimRight(res.Stdout, "\n"))
	}
	return skippedOutcome(a.Name(), "no speed test CLI installed, skipped")
}
