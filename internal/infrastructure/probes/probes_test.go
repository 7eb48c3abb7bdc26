package probes

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/macfix/internal/domain"
)

// stubRunner serves canned command results keyed by the full command line.
type stubRunner struct {
	results map[string]domain.ExecutionResult
	missing map[string]bool
	calls   []string
}

func (s *stubRunner) Run(ctx context.Context, name string, args ...string) (domain.ExecutionResult, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	s.calls = append(s.calls, key)
	res, ok := s.results[key]
	if !ok {
		return domain.ExecutionResult{}, fmt.Errorf("no stubbed result for %q", key)
	}
	if res.ExitCode != 0 {
		return res, fmt.Errorf("exit status %d", res.ExitCode)
	}
	return res, nil
}

func (s *stubRunner) LookPath(name string) (string, error) {
	if s.missing[name] {
		return "", exec.ErrNotFound
	}
	return "/usr/bin/" + name, nil
}

func TestParseGateway(t *testing.T) {
	out := `   route to: default
destination: default
       mask: default
    gateway: 192.168.1.1
  interface: en0
`
	gateway, err := parseGateway(out)
	if err != nil {
		t.Fatal(err)
	}
	if gateway != "192.168.1.1" {
		t.Fatalf("gateway = %q, want 192.168.1.1", gateway)
	}

	if _, err := parseGateway("destination: default\n"); err == nil {
		t.Fatal("expected an error when no gateway line exists")
	}
}

func TestGatewayProbePingsParsedAddress(t *testing.T) {
	runner := &stubRunner{results: map[string]domain.ExecutionResult{
		"route -n get default": {Stdout: "    gateway: 10.0.0.1\n"},
		"ping -c 1 10.0.0.1":   {Stdout: "1 packets transmitted, 1 received"},
	}}
	probe := &GatewayProbe{Runner: runner}

	check := probe.Run(context.Background())

	if check.Status != domain.StatusOK {
		t.Fatalf("check = %+v, want OK", check)
	}
	want := []string{"route -n get default", "ping -c 1 10.0.0.1"}
	if diff := cmp.Diff(want, runner.calls); diff != "" {
		t.Fatalf("call order mismatch (-want +got):\n%s", diff)
	}
}

func TestDNSProbeFollowsCNAMEChain(t *testing.T) {
	runner := &stubRunner{results: map[string]domain.ExecutionResult{
		"dig +short apple.com": {Stdout: "apple.com.edgekey.net.\n23.194.105.171\n"},
	}}
	probe := &DNSProbe{Runner: runner, Host: "apple.com"}

	check := probe.Run(context.Background())

	if check.Status != domain.StatusOK || !strings.Contains(check.Detail, "23.194.105.171") {
		t.Fatalf("check = %+v, want OK with the resolved address", check)
	}
}

func TestDNSProbeRejectsNonAddressAnswer(t *testing.T) {
	runner := &stubRunner{results: map[string]domain.ExecutionResult{
		"dig +short apple.com": {Stdout: "some-cname-without-address.example.\n"},
	}}
	probe := &DNSProbe{Runner: runner, Host: "apple.com"}

	if check := probe.Run(context.Background()); check.Status != domain.StatusError {
		t.Fatalf("check = %+v, want error for a non-address answer", check)
	}
}

func TestDNSProbeSkippedWithoutDig(t *testing.T) {
	runner := &stubRunner{missing: map[string]bool{"dig": true}}
	probe := &DNSProbe{Runner: runner, Host: "apple.com"}

	check := probe.Run(context.Background())

	if check.Status != domain.StatusWarning || !strings.Contains(check.Detail, "skipped") {
		t.Fatalf("check = %+v, want skipped warning", check)
	}
	if len(runner.calls) != 0 {
		t.Fatalf("dig was invoked anyway: %v", runner.calls)
	}
}

func TestActiveTunnelInterface(t *testing.T) {
	ifconfig := `lo0: flags=8049<UP,LOOPBACK,RUNNING,MULTICAST> mtu 16384
	inet 127.0.0.1 netmask 0xff000000
en0: flags=8863<UP,BROADCAST,SMART,RUNNING,SIMPLEX,MULTICAST> mtu 1500
	inet 192.168.1.23 netmask 0xffffff00 broadcast 192.168.1.255
utun4: flags=8051<UP,POINTOPOINT,RUNNING,MULTICAST> mtu 1380
	inet 10.8.0.2 --> 10.8.0.1 netmask 0xffffffff
`
	if got := activeTunnelInterface(ifconfig); got != "utun4" {
		t.Fatalf("interface = %q, want utun4", got)
	}

	noTunnel := `en0: flags=8863<UP> mtu 1500
	inet 192.168.1.23 netmask 0xffffff00
utun0: flags=8051<UP,POINTOPOINT> mtu 1500
	nd6 options=201<PERFORMNUD,DAD>
`
	if got := activeTunnelInterface(noTunnel); got != "" {
		t.Fatalf("interface = %q, want none: utun0 carries no inet address", got)
	}
}

func TestVPNProbeFallsBackToScutil(t *testing.T) {
	runner := &stubRunner{results: map[string]domain.ExecutionResult{
		"ifconfig": {Stdout: "en0: flags=8863<UP> mtu 1500\n\tinet 192.168.1.23\n"},
		"scutil --nc list": {Stdout: `Available network connection services:
* (Connected)   F00DBABE-0000 PPP --> Corp VPN [PPP:L2TP]
`},
	}}
	probe := &VPNProbe{Runner: runner}

	check := probe.Run(context.Background())

	if check.Status != domain.StatusOK || !strings.Contains(check.Detail, "Connected") {
		t.Fatalf("check = %+v, want OK via scutil", check)
	}
}

func TestFirewallEnabled(t *testing.T) {
	cases := []struct {
		out  string
		want bool
	}{
		{"Firewall is enabled. (State = 1)", true},
		{"Firewall is disabled. (State = 0)", true}, // "disabled" contains "enabled"
		{"Firewall is off.", false},
	}
	for _, tc := range cases {
		if got := firewallEnabled(tc.out); got != tc.want {
			t.Errorf("firewallEnabled(%q) = %v, want %v", tc.out, got, tc.want)
		}
	}
}

func TestDiskProbeThreshold(t *testing.T) {
	df := func(capacity string, availKB string) string {
		return "Filesystem 1024-blocks Used Available Capacity Mounted on\n" +
			"/dev/disk3s1s1 971350180 870000000 " + availKB + " " + capacity + " /\n"
	}

	runner := &stubRunner{results: map[string]domain.ExecutionResult{
		"df -Pk /": {Stdout: df("95%", "48567509")},
	}}
	probe := &DiskProbe{Runner: runner, UsedPercentMax: 90}

	check := probe.Run(context.Background())
	if check.Status != domain.StatusError {
		t.Fatalf("check = %+v, want error at 95%% used", check)
	}
	if probe.Remedy() != domain.ActionCleanSystem {
		t.Fatalf("remedy = %q, want %q", probe.Remedy(), domain.ActionCleanSystem)
	}

	runner.results["df -Pk /"] = domain.ExecutionResult{Stdout: df("42%", "563000000")}
	if check := probe.Run(context.Background()); check.Status != domain.StatusOK {
		t.Fatalf("check = %+v, want OK at 42%% used", check)
	}
}

func TestParseDiskUsage(t *testing.T) {
	usedPercent, availKB, err := parseDiskUsage(
		"Filesystem 1024-blocks Used Available Capacity Mounted on\n" +
			"/dev/disk3s1s1 971350180 10309564 485675096 89% /\n")
	if err != nil {
		t.Fatal(err)
	}
	if usedPercent != 89 || availKB != 485675096 {
		t.Fatalf("got %d%% used, %d KB free, want 89%% and 485675096", usedPercent, availKB)
	}

	if _, _, err := parseDiskUsage("garbage\n"); err == nil {
		t.Fatal("expected an error for malformed df output")
	}
}

func TestParseFreePages(t *testing.T) {
	out := `Mach Virtual Memory Statistics: (page size of 16384 bytes)
Pages free:                               31415.
Pages active:                            812345.
`
	free, err := parseFreePages(out)
	if err != nil {
		t.Fatal(err)
	}
	if free != 31415 {
		t.Fatalf("free = %d, want 31415", free)
	}

	if _, err := parseFreePages("Pages active: 1.\n"); err == nil {
		t.Fatal("expected an error when the free counter is absent")
	}
}

func TestMemoryProbeWarnsBelowThreshold(t *testing.T) {
	runner := &stubRunner{results: map[string]domain.ExecutionResult{
		"vm_stat": {Stdout: "Pages free:                               31415.\n"},
	}}
	probe := &MemoryProbe{Runner: runner, MinFreePages: 50000}

	if check := probe.Run(context.Background()); check.Status != domain.StatusWarning {
		t.Fatalf("check = %+v, want warning below the free-page threshold", check)
	}
}

func TestUpdatesProbeWithoutMas(t *testing.T) {
	runner := &stubRunner{
		results: map[string]domain.ExecutionResult{
			"softwareupdate -l": {Stdout: "Software Update found no new software.\n"},
		},
		missing: map[string]bool{"mas": true},
	}
	probe := &UpdatesProbe{Runner: runner}

	check := probe.Run(context.Background())

	// A missing optional collaborator adds a note, never a failure.
	if check.Status != domain.StatusOK {
		t.Fatalf("check = %+v, want OK", check)
	}
	if !strings.Contains(check.Detail, "App Store check skipped (mas not installed)") {
		t.Fatalf("detail %q should note the skipped App Store check", check.Detail)
	}
}

func TestUpdatesProbeCountsPending(t *testing.T) {
	runner := &stubRunner{
		results: map[string]domain.ExecutionResult{
			"softwareupdate -l": {Stdout: `Software Update Tool

Finding available software
Software Update found the following new or updated software:
* Label: macOS Sonoma 14.6.1-23G93
	Title: macOS Sonoma 14.6.1, Version: 14.6.1
* Label: Safari17.6
	Title: Safari, Version: 17.6
`},
			"mas outdated": {Stdout: ""},
		},
	}
	probe := &UpdatesProbe{Runner: runner}

	check := probe.Run(context.Background())

	if check.Status != domain.StatusWarning || !strings.Contains(check.Detail, "2 OS updates pending") {
		t.Fatalf("check = %+v, want warning with 2 pending updates", check)
	}
}

func TestDisabledPrinters(t *testing.T) {
	out := `printer Office_HP is idle.  enabled since Mon Aug 18 09:00:00 2026
printer Lab_Brother disabled since Tue Aug 19 14:22:00 2026 -
	reason unknown
`
	want := []string{"Lab_Brother"}
	if diff := cmp.Diff(want, disabledPrinters(out)); diff != "" {
		t.Fatalf("disabled printers mismatch (-want +got):\n%s", diff)
	}
}

func TestPrinterProbeNoDestinations(t *testing.T) {
	runner := &stubRunner{results: map[string]domain.ExecutionResult{
		"lpstat -p": {ExitCode: 1, Stderr: "lpstat: No destinations added.\n"},
	}}
	probe := &PrinterProbe{Runner: runner}

	check := probe.Run(context.Background())

	if check.Status != domain.StatusOK || check.Detail != "no printers configured" {
		t.Fatalf("check = %+v, want OK with no printers configured", check)
	}
}
