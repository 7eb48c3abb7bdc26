package actions

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// CleanSystem empties the user and system cache directories, then restarts
// the UI processes so they rebuild their state. Permission errors on
// protected system paths are expected and filtered out rather than surfaced
// as failures.
type CleanSystem struct {
	Runner ports.CommandRunner
	// CacheDirs overrides the cleared directories; empty means the
	// standard user and system cache locations.
	CacheDirs []string
}

func (a *CleanSystem) Name() string      { return domain.ActionCleanSystem }
func (a *CleanSystem) Title() string     { return "Clean System" }
func (a *CleanSystem) Destructive() bool { return true }

func (a *CleanSystem) Run(ctx context.Context) domain.Outcome {
	dirs := a.CacheDirs
	if len(dirs) == 0 {
		dirs = defaultCacheDirs()
	}

	removed := 0
	var failures []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrPermission) {
				failures = append(failures, dir)
			}
			continue
		}
		for _, entry := range entries {
			err := os.RemoveAll(filepath.Join(dir, entry.Name()))
			switch {
			case err == nil:
				removed++
			case errors.Is(err, fs.ErrPermission):
				// Protected caches (SIP, other users) stay put.
			default:
				failures = append(failures, entry.Name())
			}
		}
	}

	restart := (&RestartUI{Runner: a.Runner}).Run(ctx)
	detail := fmt.Sprintf("removed %d cache entries; %s", removed, restart.Detail)
	if len(failures) > 0 {
		return domain.Outcome{
			Action: a.Name(),
			Status: domain.OutcomeWarning,
			Detail: fmt.Sprintf("%s; could not remove: %s", detail, strings.Join(failures, ", ")),
			Failed: failures,
		}
	}
	if restart.Status != domain.OutcomeSuccess {
		return domain.Outcome{Action: a.Name(), Status: restart.Status, Detail: detail, Failed: restart.Failed}
	}
	return successOutcome(a.Name(), detail)
}

func defaultCacheDirs() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return []string{"/Library/Caches"}
	}
	return []string{
		filepath.Join(home, "Library", "Caches"),
		"/Library/Caches",
	}
}

// RestartUI restarts the Dock, Finder and SystemUIServer. Every process is
// attempted even when an earlier one fails.
type RestartUI struct {
	Runner ports.CommandRunner
}

func (a *RestartUI) Name() string      { return domain.ActionRestartUI }
func (a *RestartUI) Title() string     { return "Restart UI Processes" }
func (a *RestartUI) Destructive() bool { return false }

func (a *RestartUI) Run(ctx context.Context) domain.Outcome {
	var succeeded, failed []string
	for _, proc := range []string{"Dock", "Finder", "SystemUIServer"} {
		res, err := a.Runner.Run(ctx, "killall", proc)
		if err != nil && !strings.Contains(res.Stderr, "No matching processes") {
			failed = append(failed, proc)
			continue
		}
		succeeded = append(succeeded, proc)
	}
	return resourceOutcome(a.Name(), "restarted", succeeded, failed)
}

// EnableFirewall switches the application firewall's global state on.
// Requires administrator privileges.
type EnableFirewall struct {
	Runner ports.CommandRunner
}

func (a *EnableFirewall) Name() string      { return domain.ActionEnableFirewall }
func (a *EnableFirewall) Title() string     { return "Enable Firewall" }
func (a *EnableFirewall) Destructive() bool { return false }

func (a *EnableFirewall) Run(ctx context.Context) domain.Outcome {
	res, err := a.Runner.Run(ctx, "/usr/libexec/ApplicationFirewall/socketfilterfw", "--setglobalstate", "on")
	if err != nil {
		detail := firstLine(res.Stderr)
		if detail == "" {
			detail = err.Error()
		}
		return errorOutcome(a.Name(), "could not enable firewall (administrator privileges required): "+detail)
	}
	return successOutcome(a.Name(), "application firewall enabled")
}

// ResetPrinting clears and re-enables every configured printer queue.
type ResetPrinting struct {
	Runner ports.CommandRunner
}

func (a *ResetPrinting) Name() string      { return domain.ActionResetPrinting }
func (a *ResetPrinting) Title() string     { return "Reset Printing System" }
func (a *ResetPrinting) Destructive() bool { return true }

func (a *ResetPrinting) Run(ctx context.Context) domain.Outcome {
	res, err := a.Runner.Run(ctx, "lpstat", "-p")
	if err != nil {
		if strings.Contains(res.Stderr, "No destinations") || strings.Contains(res.Stdout, "No destinations") {
			return skippedOutcome(a.Name(), "no printers configured")
		}
		return errorOutcome(a.Name(), "could not list printers: "+err.Error())
	}
	printers := printerNames(res.Stdout)
	var succeeded, failed []string
	for _, printer := range printers {
		_, cancelErr := a.Runner.Run(ctx, "cancel", "-a", printer)
		_, enableErr := a.Runner.Run(ctx, "cupsenable", printer)
		if cancelErr != nil || enableErr != nil {
			failed = append(failed, printer)
		} else {
			succeeded = append(succeeded, printer)
		}
	}
	return resourceOutcome(a.Name(), "reset", succeeded, failed)
}

// printerNames extracts queue names from `lpstat -p` output.
func printerNames(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "printer" {
			names = append(names, fields[1])
		}
	}
	return names
}

// InstallUpdates installs all recommended OS updates. Long-running; blocks
// until softwareupdate finishes.
type InstallUpdates struct {
	Runner ports.CommandRunner
}

func (a *InstallUpdates) Name() string      { return domain.ActionInstallUpdates }
func (a *InstallUpdates) Title() string     { return "Install Software Updates" }
func (a *InstallUpdates) Destructive() bool { return true }

func (a *InstallUpdates) Run(ctx context.Context) domain.Outcome {
	res, err := a.Runner.Run(ctx, "softwareupdate", "-i", "-r")
	combined := res.Stdout + res.Stderr
	if strings.Contains(combined, "No updates are available") {
		return successOutcome(a.Name(), "no updates to install")
	}
	if err != nil {
		detail := firstLine(res.Stderr)
		if detail == "" {
			detail = err.Error()
		}
		return errorOutcome(a.Name(), "software update failed: "+detail)
	}
	return successOutcome(a.Name(), "recommended updates installed")
}
