package actions

import (
	"context"
	"strings"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// SmartStatus reads the S.M.A.R.T. verdict of every physical disk. All
// disks are inspected even when an earlier one reports a problem.
type SmartStatus struct {
	Runner ports.CommandRunner
}

func (a *SmartStatus) Name() string      { return domain.ActionSmartStatus }
func (a *SmartStatus) Title() string     { return "Disk S.M.A.R.T. Status" }
func (a *SmartStatus) Destructive() bool { return false }

func (a *SmartStatus) Run(ctx context.Context) domain.Outcome {
	res, err := a.Runner.Run(ctx, "diskutil", "list")
	if err != nil {
		return errorOutcome(a.Name(), "could not list disks: "+err.Error())
	}
	disks := physicalDisks(res.Stdout)
	if len(disks) == 0 {
		return skippedOutcome(a.Name(), "no physical disks found")
	}
	var succeeded, failed []string
	for _, disk := range disks {
		res, err := a.Runner.Run(ctx, "diskutil", "info", disk)
		if err != nil {
			failed = append(failed, disk)
			continue
		}
		switch smartStatus(res.Stdout) {
		case "Verified", "Not Supported", "":
			succeeded = append(succeeded, disk)
		default:
			failed = append(failed, disk)
		}
	}
	return resourceOutcome(a.Name(), "verified", succeeded, failed)
}

// physicalDisks extracts whole-disk identifiers from `diskutil list`,
// skipping synthesized APFS containers and disk images.
func physicalDisks(out string) []string {
	var disks []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "/dev/disk") {
			continue
		}
		if strings.Contains(line, "synthesized") || strings.Contains(line, "disk image") {
			continue
		}
		name, _, _ := strings.Cut(line, " ")
		disks = append(disks, strings.TrimPrefix(name, "/dev/"))
	}
	return disks
}

// smartStatus extracts the "SMART Status" value from `diskutil info`.
func smartStatus(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if value, found := strings.CutPrefix(strings.TrimSpace(line), "SMART Status:"); found {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
