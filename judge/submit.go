package judge

import (
	"context"

	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/logger"
)

// Submit requests graded judging and replaces the current submission with
// the result. On failure nothing is stored: a previously accepted
// submission must survive a failed resubmit.
func (o *Orchestrator) Submit(ctx context.Context, problemID string, lang domain.Language, code string) Dispatch {
	a := domain.Attempt{ProblemID: problemID, Language: lang, Code: code}
	if !o.ready(a) {
		return Dispatch{Status: Skipped}
	}
	if !o.submitting.CompareAndSwap(false, true) {
		return Dispatch{Status: Busy}
	}
	defer o.submitting.Store(false)

	ctx = logger.WithProblem(ctx, problemID)
	log := logger.FromContext(ctx)

	sub, err := o.judge.Submit(ctx, a)
	if err != nil {
		log.Error("submit failed", "language", lang, "error", err)
		return Dispatch{Status: Dispatched, Err: err}
	}

	if !o.store.SetSubmissionFor(problemID, &sub) {
		log.Info("discarding submission for inactive problem", "submission_id", sub.ID)
		return Dispatch{Status: Dispatched, Stale: true}
	}
	log.Info("submission judged",
		"submission_id", sub.ID,
		"verdict", sub.Verdict,
		"passed", sub.Passed,
		"total", sub.Total)
	return Dispatch{Status: Dispatched}
}

func (o *Orchestrator) SubmitCurrent(ctx context.Context) Dispatch {
	a := o.currentAttempt()
	return o.Submit(ctx, a.ProblemID, a.Language, a.Code)
}
