package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/doeshing/macfix/internal/application/dispatch"
	"github.com/doeshing/macfix/internal/domain"
)

var (
	greenTag  = color.New(color.FgGreen).SprintFunc()
	yellowTag = color.New(color.FgYellow).SprintFunc()
	redTag    = color.New(color.FgRed).SprintFunc()
	cyanTag   = color.New(color.FgCyan).SprintFunc()
)

// Renderer prints reports, outcomes and summaries. Warnings and errors are
// always shown; informational lines only when verbose.
type Renderer struct {
	out     io.Writer
	verbose bool
	titles  map[string]string
}

// NewRenderer builds a renderer. titles maps action names to display
// titles for the recommendation list.
func NewRenderer(out io.Writer, verbose bool, titles map[string]string) *Renderer {
	return &Renderer{out: out, verbose: verbose, titles: titles}
}

// actionTitles collects display titles from the dispatcher registry.
func actionTitles(d *dispatch.Service) map[string]string {
	titles := make(map[string]string)
	for _, act := range d.Actions() {
		titles[act.Name()] = act.Title()
	}
	return titles
}

// Report prints a scan report with recommendations and counters.
func (r *Renderer) Report(rep domain.RunReport) {
	fmt.Fprintln(r.out, "Quick System Scan")
	for _, check := range rep.Checks {
		fmt.Fprintf(r.out, "%s %s - %s\n", statusTag(check.Status), check.Name, check.Detail)
	}
	if len(rep.Recommendations) > 0 {
		fmt.Fprintln(r.out, "\nRecommended actions:")
		for i, name := range rep.Recommendations {
			fmt.Fprintf(r.out, "  %d. %s\n", i+1, r.titleOf(name))
		}
	}
	fmt.Fprintf(r.out, "\nWarnings: %d  Errors: %d\n", rep.Warnings, rep.Errors)
}

// Outcome prints the classified result of a remedial action.
func (r *Renderer) Outcome(o domain.Outcome) {
	fmt.Fprintf(r.out, "%s %s - %s\n", outcomeTag(o.Status), r.titleOf(o.Action), o.Detail)
}

// Summary prints the accumulated counters of one menu iteration.
func (r *Renderer) Summary(c domain.SessionCounters) {
	fmt.Fprintf(r.out, "\nSession summary - warnings: %d, errors: %d", c.Warnings, c.Errors)
	if len(c.Recommendations) > 0 {
		var titles []string
		for _, name := range c.Recommendations {
			titles = append(titles, r.titleOf(name))
		}
		fmt.Fprintf(r.out, ", recommended: %s", strings.Join(titles, ", "))
	}
	fmt.Fprintln(r.out)
}

// Info prints an informational line when verbose.
func (r *Renderer) Info(format string, args ...interface{}) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) titleOf(name string) string {
	if title, ok := r.titles[name]; ok {
		return title
	}
	return name
}

func statusTag(status domain.ProbeStatus) string {
	switch status {
	case domain.StatusOK:
		return greenTag("[OK]     ")
	case domain.StatusWarning:
		return yellowTag("[WARNING]")
	default:
		return redTag("[ERROR]  ")
	}
}

func outcomeTag(status domain.OutcomeStatus) string {
	switch status {
	case domain.OutcomeSuccess:
		return greenTag("[SUCCESS]")
	case domain.OutcomeWarning:
		return yellowTag("[WARNING]")
	case domain.OutcomeCancelled:
		return cyanTag("[CANCELLED]")
	case domain.OutcomeSkipped:
		return cyanTag("[SKIPPED]")
	default:
		return redTag("[ERROR]  ")
	}
}
