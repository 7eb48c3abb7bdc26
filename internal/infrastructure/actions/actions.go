// Package actions implements the remedial operations reachable from the
// menu and the scan recommendations. Each action wraps one or more external
// commands and classifies the outcome from exit status and output text.
package actions

import (
	"fmt"
	"strings"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// All returns the static action registry in menu order. The registry is
// built once at process start and read-only afterwards.
func All(runner ports.CommandRunner, cfg domain.Config) []ports.Action {
	return []ports.Action{
		&FlushDNS{Runner: runner},
		&RenewDHCP{Runner: runner},
		&CleanSystem{Runner: runner},
		&RestartUI{Runner: runner},
		&EnableFirewall{Runner: runner},
		&ResetPrinting{Runner: runner},
		&InstallUpdates{Runner: runner},
		&SmartStatus{Runner: runner},
		&SpeedTest{Runner: runner},
		&Traceroute{Runner: runner, Target: cfg.Network.TracerouteTarget},
	}
}

// resourceOutcome classifies an action that iterated several resources.
// Every sub-operation ran regardless of earlier failures; success requires
// all of them to have succeeded, a mix yields a partial warning.
func resourceOutcome(action, verb string, succeeded, failed []string) domain.Outcome {
	switch {
	case len(failed) == 0 && len(succeeded) == 0:
		return domain.Outcome{Action: action, Status: domain.OutcomeSkipped, Detail: "nothing to " + verb}
	case len(failed) == 0:
		return domain.Outcome{
			Action: action,
			Status: domain.OutcomeSuccess,
			Detail: fmt.Sprintf("%s: %s", verb, strings.Join(succeeded, ", ")),
		}
	case len(succeeded) == 0:
		return domain.Outcome{
			Action: action,
			Status: domain.OutcomeError,
			Detail: fmt.Sprintf("%s failed for: %s", verb, strings.Join(failed, ", ")),
			Failed: failed,
		}
	default:
		return domain.Outcome{
			Action: action,
			Status: domain.OutcomeWarning,
			Detail: fmt.Sprintf("partial: %s %s; failed %s", verb, strings.Join(succeeded, ", "), strings.Join(failed, ", ")),
			Failed: failed,
		}
	}
}

func errorOutcome(action, detail string) domain.Outcome {
	return domain.Outcome{Action: action, Status: domain.OutcomeError, Detail: detail}
}

func successOutcome(action, detail string) domain.Outcome {
	return domain.Outcome{Action: action, Status: domain.OutcomeSuccess, Detail: detail}
}

func skippedOutcome(action, detail string) domain.Outcome {
	return domain.Outcome{Action: action, Status: domain.OutcomeSkipped, Detail: detail}
}

// firstLine trims command output down to its first non-empty line for use
// in outcome details.
func firstLine(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
