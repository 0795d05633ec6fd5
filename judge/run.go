package judge

import (
	"context"

	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/logger"
)

const runFailurePrefix = "Failed to run code: "

// Run performs a non-graded execution and replaces the current run result.
// A failed request is turned into a runtime-error result carrying the
// failure message; it is never returned as a bare error to be dropped.
// The current submission is never touched.
func (o *Orchestrator) Run(ctx context.Context, problemID string, lang domain.Language, code string) Dispatch {
	a := domain.Attempt{ProblemID: problemID, Language: lang, Code: code}
	if !o.ready(a) {
		return Dispatch{Status: Skipped}
	}
	if !o.running.CompareAndSwap(false, true) {
		return Dispatch{Status: Busy}
	}
	defer o.running.Store(false)

	ctx = logger.WithProblem(ctx, problemID)
	log := logger.FromContext(ctx)

	res, err := o.judge.Run(ctx, a)
	if err != nil {
		log.Warn("run failed", "language", lang, "error", err)
		res = RunFailure(err)
	}
	res.IsTestRun = true

	if !o.store.SetRunResultFor(problemID, &res) {
		log.Info("discarding run result for inactive problem")
		return Dispatch{Status: Dispatched, Err: err, Stale: true}
	}
	return Dispatch{Status: Dispatched, Err: err}
}

// RunCurrent runs the buffer of the active problem in the selected language.
func (o *Orchestrator) RunCurrent(ctx context.Context) Dispatch {
	a := o.currentAttempt()
	return o.Run(ctx, a.ProblemID, a.Language, a.Code)
}

// RunFailure is the terminal result shown when a run request fails.
func RunFailure(err error) domain.RunResult {
	return domain.RunResult{
		Outcome: domain.Outcome{
			Verdict: domain.VerdictRuntimeError,
			Passed:  0,
			Total:   0,
			Details: &domain.Details{
				Error: runFailurePrefix + err.Error(),
			},
		},
		IsTestRun: true,
	}
}
