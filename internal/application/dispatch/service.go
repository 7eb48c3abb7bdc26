// Package dispatch implements the action dispatcher: it resolves a named
// remedial action from the static registry, handles confirmation for
// disruptive operations and records every execution.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/macfix/internal/domain"
	"github.com/doeshing/macfix/internal/ports"
)

// Service executes remedial actions by name.
type Service struct {
	Prompter   ports.ConfirmationPrompter
	Logger     ports.Logger
	Transcript ports.Transcript
	History    ports.HistoryStore

	// ConfirmDestructive gates the interactive confirmation of disruptive
	// actions. Batch callers may clear it after an explicit --yes.
	ConfirmDestructive bool

	actions map[string]ports.Action
	order   []string
}

// New builds a dispatcher over the given registry, preserving order.
func New(registry []ports.Action) *Service {
	s := &Service{actions: make(map[string]ports.Action, len(registry))}
	for _, act := range registry {
		s.actions[act.Name()] = act
		s.order = append(s.order, act.Name())
	}
	return s
}

// Actions returns the registered actions in registry order.
func (s *Service) Actions() []ports.Action {
	out := make([]ports.Action, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.actions[name])
	}
	return out
}

// Lookup resolves an action by name.
func (s *Service) Lookup(name string) (ports.Action, bool) {
	act, ok := s.actions[name]
	return act, ok
}

// Execute runs the named action and classifies its outcome. Declining the
// confirmation of a disruptive action is not an error: the dispatcher logs
// it and returns a neutral cancelled outcome.
func (s *Service) Execute(ctx context.Context, name string) domain.Outcome {
	act, ok := s.actions[name]
	if !ok {
		return domain.Outcome{
			Action: name,
			Status: domain.OutcomeError,
			Detail: fmt.Sprintf("unknown action %q", name),
		}
	}

	if act.Destructive() && s.ConfirmDestructive && s.Prompter != nil && s.Prompter.Enabled() {
		approved, err := s.Prompter.Confirm(act.Title())
		if err != nil || !approved {
			outcome := domain.Outcome{
				Action: name,
				Status: domain.OutcomeCancelled,
				Detail: "cancelled by user",
			}
			s.record(outcome, 0)
			return outcome
		}
	}

	start := time.Now()
	outcome := act.Run(ctx)
	if outcome.Action == "" {
		outcome.Action = name
	}
	s.record(outcome, time.Since(start).Milliseconds())
	return outcome
}

// record appends the transcript line and history row. Both are best-effort;
// a broken log must not turn a successful fix into a failure.
func (s *Service) record(outcome domain.Outcome, durationMS int64) {
	line := fmt.Sprintf("%s: %s", outcome.Action, outcome.Status)
	if outcome.Detail != "" {
		line += " - " + outcome.Detail
	}
	if s.Transcript != nil {
		if err := s.Transcript.Append(line); err != nil && s.Logger != nil {
			s.Logger.Warn("transcript write failed", map[string]interface{}{"err": err.Error()})
		}
	}
	if s.History != nil {
		record := domain.ActionRecord{
			ID:         uuid.NewString(),
			Timestamp:  time.Now(),
			Action:     outcome.Action,
			Status:     outcome.Status,
			Detail:     outcome.Detail,
			DurationMS: durationMS,
		}
		if err := s.History.Save(record); err != nil && s.Logger != nil {
			s.Logger.Warn("history write failed", map[string]interface{}{"err": err.Error()})
		}
	}
	if s.Logger != nil {
		s.Logger.Info(line, nil)
	}
}
