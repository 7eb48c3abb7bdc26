package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/macfix/internal/app"
	"github.com/doeshing/macfix/internal/domain"
)

// Menu drives the interactive session: a finite-state loop over the main
// menu and its submenus. Each iteration executes at most one action or
// scan, shows the accumulated summary, then resets the counters. The loop
// only ends on an explicit quit.
type Menu struct {
	container *app.Container
	renderer  *Renderer
	spinner   *Spinner
	in        *bufio.Reader
	out       io.Writer
	counters  domain.SessionCounters
}

// NewMenu builds the interactive menu.
func NewMenu(container *app.Container, renderer *Renderer, in *bufio.Reader, out io.Writer) *Menu {
	return &Menu{
		container: container,
		renderer:  renderer,
		spinner:   NewSpinner(out),
		in:        in,
		out:       out,
	}
}

// Run loops until the user quits. Returns nil on graceful quit.
func (m *Menu) Run(ctx context.Context) error {
	state := domain.MenuMain
	for state != domain.MenuQuit {
		next, err := m.step(ctx, state)
		if err != nil {
			// Closed stdin counts as a quit, not a failure.
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		state = next
	}
	fmt.Fprintln(m.out, "Bye.")
	return nil
}

func (m *Menu) step(ctx context.Context, state domain.MenuID) (domain.MenuID, error) {
	switch state {
	case domain.MenuNetwork:
		return m.networkMenu(ctx)
	case domain.MenuMaintenance:
		return m.maintenanceMenu(ctx)
	case domain.MenuReports:
		return m.reportsMenu(ctx)
	default:
		return m.mainMenu(ctx)
	}
}

func (m *Menu) mainMenu(ctx context.Context) (domain.MenuID, error) {
	fmt.Fprint(m.out, "\n=== macfix ===\n"+
		" 1) Quick System Scan\n"+
		" 2) Network Tools\n"+
		" 3) Maintenance\n"+
		" 4) Reports\n"+
		" 0) Quit\n")
	choice, err := m.readChoice()
	if err != nil {
		return domain.MenuQuit, err
	}
	switch choice {
	case "1":
		m.runScan(ctx)
		m.finishIteration()
		return domain.MenuMain, nil
	case "2":
		return domain.MenuNetwork, nil
	case "3":
		return domain.MenuMaintenance, nil
	case "4":
		return domain.MenuReports, nil
	case "0", "q":
		return domain.MenuQuit, nil
	default:
		fmt.Fprintln(m.out, "Unknown choice.")
		return domain.MenuMain, nil
	}
}

func (m *Menu) networkMenu(ctx context.Context) (domain.MenuID, error) {
	fmt.Fprint(m.out, "\n--- Network Tools ---\n"+
		" 1) Flush DNS Cache\n"+
		" 2) Renew DHCP Lease\n"+
		" 3) Traceroute\n"+
		" 4) Internet Speed Test\n"+
		" 0) Back\n")
	choice, err := m.readChoice()
	if err != nil {
		return domain.MenuQuit, err
	}
	switch choice {
	case "1":
		m.runAction(ctx, domain.ActionFlushDNS)
	case "2":
		m.runAction(ctx, domain.ActionRenewDHCP)
	case "3":
		m.runAction(ctx, domain.ActionTraceroute)
	case "4":
		m.runAction(ctx, domain.ActionSpeedTest)
	case "0":
		return domain.MenuMain, nil
	default:
		fmt.Fprintln(m.out, "Unknown choice.")
		return domain.MenuNetwork, nil
	}
	m.finishIteration()
	return domain.MenuNetwork, nil
}

func (m *Menu) maintenanceMenu(ctx context.Context) (domain.MenuID, error) {
	fmt.Fprint(m.out, "\n--- Maintenance ---\n"+
		" 1) Clean System\n"+
		" 2) Restart UI Processes\n"+
		" 3) Enable Firewall\n"+
		" 4) Reset Printing System\n"+
		" 5) Install Software Updates\n"+
		" 0) Back\n")
	choice, err := m.readChoice()
	if err != nil {
		return domain.MenuQuit, err
	}
	switch choice {
	case "1":
		m.runAction(ctx, domain.ActionCleanSystem)
	case "2":
		m.runAction(ctx, domain.ActionRestartUI)
	case "3":
		m.runAction(ctx, domain.ActionEnableFirewall)
	case "4":
		m.runAction(ctx, domain.ActionResetPrinting)
	case "5":
		m.runAction(ctx, domain.ActionInstallUpdates)
	case "0":
		return domain.MenuMain, nil
	default:
		fmt.Fprintln(m.out, "Unknown choice.")
		return domain.MenuMaintenance, nil
	}
	m.finishIteration()
	return domain.MenuMaintenance, nil
}

func (m *Menu) reportsMenu(ctx context.Context) (domain.MenuID, error) {
	fmt.Fprint(m.out, "\n--- Reports ---\n"+
		" 1) Quick System Scan\n"+
		" 2) Disk S.M.A.R.T. Status\n"+
		" 3) Recent Actions\n"+
		" 0) Back\n")
	choice, err := m.readChoice()
	if err != nil {
		return domain.MenuQuit, err
	}
	switch choice {
	case "1":
		m.runScan(ctx)
	case "2":
		m.runAction(ctx, domain.ActionSmartStatus)
	case "3":
		m.showRecentActions()
	case "0":
		return domain.MenuMain, nil
	default:
		fmt.Fprintln(m.out, "Unknown choice.")
		return domain.MenuReports, nil
	}
	m.finishIteration()
	return domain.MenuReports, nil
}

func (m *Menu) runScan(ctx context.Context) {
	m.spinner.Start("running scan")
	report := m.container.Scanner.Run(ctx)
	m.spinner.Stop()
	m.renderer.Report(report)
	m.counters.ObserveReport(report)
}

func (m *Menu) runAction(ctx context.Context, name string) {
	// No spinner around destructive actions: they prompt first and the
	// animation would garble the confirmation line.
	spin := true
	if act, ok := m.container.Dispatcher.Lookup(name); ok && act.Destructive() {
		spin = false
	}
	if spin {
		m.spinner.Start("working")
	}
	outcome := m.container.Dispatcher.Execute(ctx, name)
	if spin {
		m.spinner.Stop()
	}
	m.renderer.Outcome(outcome)
	m.counters.Observe(outcome)
}

func (m *Menu) showRecentActions() {
	store := m.container.HistoryStore
	if store == nil {
		fmt.Fprintln(m.out, "History is disabled.")
		return
	}
	records, err := store.Records(10, "")
	if err != nil {
		fmt.Fprintf(m.out, "Could not read history: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(m.out, "No actions recorded yet.")
		return
	}
	for _, rec := range records {
		fmt.Fprintf(m.out, "%s | %-15s | %-9s | %s\n",
			rec.Timestamp.Format("2006-01-02 15:04"), rec.Action, rec.Status, rec.Detail)
	}
}

// finishIteration shows the accumulated summary and resets the counters by
// constructing a fresh value.
func (m *Menu) finishIteration() {
	m.renderer.Summary(m.counters)
	m.counters = domain.SessionCounters{}
}

func (m *Menu) readChoice() (string, error) {
	fmt.Fprint(m.out, "Select: ")
	line, err := m.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}
