// Package judge drives the two judge invocations (run and submit) and keeps
// the code buffer in step with the active problem and language.
package judge

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/session"
)

// Judge is the remote execution backend as seen by the orchestrator.
type Judge interface {
	Run(ctx context.Context, a domain.Attempt) (domain.RunResult, error)
	Submit(ctx context.Context, a domain.Attempt) (domain.Submission, error)
}

type Status int

const (
	// Dispatched means the request was sent and its outcome handled.
	Dispatched Status = iota
	// Skipped means a precondition failed: no active problem or blank code.
	Skipped
	// Busy means a request of the same kind was already in flight.
	Busy
)

func (s Status) String() string {
	switch s {
	case Dispatched:
		return "dispatched"
	case Skipped:
		return "skipped"
	case Busy:
		return "busy"
	}
	return "unknown"
}

// Dispatch reports what happened to one invocation. Err is set only for a
// dispatched request that failed in transport or on the server.
type Dispatch struct {
	Status Status
	Err    error
	// Stale is set when the outcome arrived after the user had moved to
	// another problem and was therefore not applied.
	Stale bool
}

type Orchestrator struct {
	store *session.Store
	judge Judge

	running    atomic.Bool
	submitting atomic.Bool
}

func NewOrchestrator(store *session.Store, judge Judge) *Orchestrator {
	return &Orchestrator{
		store: store,
		judge: judge,
	}
}

func (o *Orchestrator) Running() bool {
	return o.running.Load()
}

func (o *Orchestrator) Submitting() bool {
	return o.submitting.Load()
}

// ready checks the preconditions shared by run and submit.
func (o *Orchestrator) ready(a domain.Attempt) bool {
	if a.ProblemID == "" || strings.TrimSpace(a.Code) == "" {
		return false
	}
	return o.store.CurrentProblem() != nil
}

func (o *Orchestrator) currentAttempt() domain.Attempt {
	snap := o.store.Snapshot()
	a := domain.Attempt{
		Language: snap.SelectedLanguage,
		Code:     snap.Code,
	}
	if snap.CurrentProblem != nil {
		a.ProblemID = snap.CurrentProblem.ID
	}
	return a
}
