package domain

import "time"

// Remedial action names. The registry built at process start maps each name
// to exactly one action implementation.
const (
	ActionFlushDNS       = "flush-dns"
	ActionRenewDHCP      = "renew-dhcp"
	ActionCleanSystem    = "clean-system"
	ActionRestartUI      = "restart-ui"
	ActionEnableFirewall = "enable-firewall"
	ActionResetPrinting  = "reset-printing"
	ActionInstallUpdates = "install-updates"
	ActionSmartStatus    = "smart-status"
	ActionSpeedTest      = "speed-test"
	ActionTraceroute     = "traceroute"
)

// OutcomeStatus classifies the result of a remedial action.
type OutcomeStatus string

const (
	OutcomeSuccess   OutcomeStatus = "success"
	OutcomeWarning   OutcomeStatus = "warning"
	OutcomeError     OutcomeStatus = "error"
	OutcomeCancelled OutcomeStatus = "cancelled"
	OutcomeSkipped   OutcomeStatus = "skipped"
)

// Outcome describes how a remedial action went. For actions spanning
// multiple resources, Failed lists the resources that did not succeed.
type Outcome struct {
	Action string
	Status OutcomeStatus
	Detail string
	Failed []string
}

// ActionRecord is one row of the action history.
type ActionRecord struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Action     string        `json:"action"`
	Status     OutcomeStatus `json:"status"`
	Detail     string        `json:"detail"`
	DurationMS int64         `json:"duration_ms"`
}

// SessionCounters accumulate warnings, errors and recommendations across one
// menu iteration. A fresh zero value replaces them before the next
// iteration; no ambient process-wide state is kept.
type SessionCounters struct {
	Warnings        int
	Errors          int
	Recommendations []string
}

// Observe folds an action outcome into the counters.
func (c *SessionCounters) Observe(o Outcome) {
	switch o.Status {
	case OutcomeWarning:
		c.Warnings++
	case OutcomeError:
		c.Errors++
	}
}

// ObserveReport folds a scan report into the counters.
func (c *SessionCounters) ObserveReport(r RunReport) {
	c.Warnings += r.Warnings
	c.Errors += r.Errors
	c.Recommendations = append(c.Recommendations, r.Recommendations...)
}
