package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/SscSPs/docflow_backend/internal/apperrors"
)

// Transition is one edge of a workflow's adjacency table.
type Transition struct {
	Action Action
	From   []Status
	To     Status
}

// Workflow is the finite state machine of one document type.
type Workflow struct {
	initial     Status
	states      []Status
	terminal    map[Status]bool
	transitions []Transition
}

// NewWorkflow builds a workflow and validates its adjacency table:
// every referenced status must be declared, terminal states have no outgoing edges,
// non-terminal states have at least one, and an (action, from) pair is never ambiguous.
func NewWorkflow(initial Status, states []Status, terminal []Status, transitions ...Transition) (*Workflow, error) {
	declared := make(map[Status]bool, len(states))
	for _, s := range states {
		declared[s] = true
	}
	if !declared[initial] {
		return nil, fmt.Errorf("initial status %q is not declared", initial)
	}
	term := make(map[Status]bool, len(terminal))
	for _, s := range terminal {
		if !declared[s] {
			return nil, fmt.Errorf("terminal status %q is not declared", s)
		}
		term[s] = true
	}
	if term[initial] {
		return nil, fmt.Errorf("initial status %q cannot be terminal", initial)
	}

	seen := make(map[string]bool)
	outgoing := make(map[Status]bool)
	for _, t := range transitions {
		if t.Action == "" {
			return nil, fmt.Errorf("transition to %q has no action", t.To)
		}
		if !declared[t.To] {
			return nil, fmt.Errorf("action %q targets undeclared status %q", t.Action, t.To)
		}
		if len(t.From) == 0 {
			return nil, fmt.Errorf("action %q has no source status", t.Action)
		}
		for _, from := range t.From {
			if !declared[from] {
				return nil, fmt.Errorf("action %q starts from undeclared status %q", t.Action, from)
			}
			if term[from] {
				return nil, fmt.Errorf("action %q leaves terminal status %q", t.Action, from)
			}
			key := string(t.Action) + "|" + string(from)
			if seen[key] {
				return nil, fmt.Errorf("action %q is declared twice from status %q", t.Action, from)
			}
			seen[key] = true
			outgoing[from] = true
		}
	}
	for _, s := range states {
		if !term[s] && !outgoing[s] {
			return nil, fmt.Errorf("non-terminal status %q has no outgoing transition", s)
		}
	}

	return &Workflow{
		initial:     initial,
		states:      slices.Clone(states),
		terminal:    term,
		transitions: slices.Clone(transitions),
	}, nil
}

func mustWorkflow(initial Status, states []Status, terminal []Status, transitions ...Transition) *Workflow {
	w, err := NewWorkflow(initial, states, terminal, transitions...)
	if err != nil {
		panic("invalid workflow: " + err.Error())
	}
	return w
}

// Initial is the status every new document starts in.
func (w *Workflow) Initial() Status { return w.initial }

// States lists the declared statuses in declaration order.
func (w *Workflow) States() []Status { return slices.Clone(w.states) }

// HasStatus reports whether s belongs to this workflow.
func (w *Workflow) HasStatus(s Status) bool { return slices.Contains(w.states, s) }

// IsTerminal reports whether no transition leaves s.
func (w *Workflow) IsTerminal(s Status) bool { return w.terminal[s] }

// Target resolves the status reached by action from the given status.
func (w *Workflow) Target(from Status, action Action) (Status, bool) {
	for _, t := range w.transitions {
		if t.Action == action && slices.Contains(t.From, from) {
			return t.To, true
		}
	}
	return "", false
}

// AllowedActions lists the actions legal from status s, in table order.
func (w *Workflow) AllowedActions(s Status) []Action {
	var out []Action
	for _, t := range w.transitions {
		if slices.Contains(t.From, s) {
			out = append(out, t.Action)
		}
	}
	return out
}

// Apply performs action on doc. On any error doc is left untouched.
// Stage hooks run against a copy of the payload that is only swapped in on success.
// The log timestamp is clamped so entries never go backwards.
func (w *Workflow) Apply(doc *Document, action Action, actor, note string, at time.Time) error {
	if w.IsTerminal(doc.Status) {
		return fmt.Errorf("%w: %s %s is in terminal status %s", apperrors.ErrIllegalTransition, doc.Type, doc.DocumentNumber, doc.Status)
	}
	to, ok := w.Target(doc.Status, action)
	if !ok {
		return fmt.Errorf("%w: action %q is not allowed from status %s", apperrors.ErrIllegalTransition, action, doc.Status)
	}

	if last := doc.LastTransitionAt(); at.Before(last) {
		at = last
	}

	payload := doc.Payload
	if payload != nil {
		payload = payload.Clone()
		if hook, ok := payload.(StageHook); ok {
			if err := hook.OnTransition(action, at); err != nil {
				return err
			}
		}
	}

	doc.TransitionLog = append(doc.TransitionLog, TransitionEntry{
		FromStatus: doc.Status,
		Status:     to,
		Action:     action,
		Actor:      actor,
		Timestamp:  at,
		Note:       note,
	})
	doc.Status = to
	doc.Payload = payload
	return nil
}
