package judge_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/judge"
	"github.com/leetcoach/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJudge struct {
	run    func(ctx context.Context, a domain.Attempt) (domain.RunResult, error)
	submit func(ctx context.Context, a domain.Attempt) (domain.Submission, error)

	lock    sync.Mutex
	runs    []domain.Attempt
	submits []domain.Attempt
}

func (f *fakeJudge) Run(ctx context.Context, a domain.Attempt) (domain.RunResult, error) {
	f.lock.Lock()
	f.runs = append(f.runs, a)
	f.lock.Unlock()
	return f.run(ctx, a)
}

func (f *fakeJudge) Submit(ctx context.Context, a domain.Attempt) (domain.Submission, error) {
	f.lock.Lock()
	f.submits = append(f.submits, a)
	f.lock.Unlock()
	return f.submit(ctx, a)
}

func problem(id string) *domain.Problem {
	return &domain.Problem{
		ID:    id,
		Title: "problem " + id,
		StarterCode: map[domain.Language]string{
			domain.LangPython: "def solve():\n    pass",
			domain.LangCpp:    "class Solution {\npublic:\n};",
		},
	}
}

func accepted(id string) domain.Submission {
	return domain.Submission{
		ID:                id,
		ProblemID:         "p-1",
		UnlockedSolutions: true,
		Outcome: domain.Outcome{
			Verdict: domain.VerdictAccepted,
			Passed:  8,
			Total:   8,
		},
	}
}

func setup(j *fakeJudge) (*session.Store, *judge.Orchestrator) {
	store := session.NewStore(domain.LangPython)
	return store, judge.NewOrchestrator(store, j)
}

func TestSelectProblemLoadsStarterAndClearsResults(t *testing.T) {
	store, o := setup(&fakeJudge{})
	store.SetCurrentRunResult(&domain.RunResult{IsTestRun: true})
	sub := accepted("old")
	store.SetCurrentSubmission(&sub)

	o.SelectProblem(problem("p-1"))

	snap := store.Snapshot()
	require.NotNil(t, snap.CurrentProblem)
	assert.Equal(t, "def solve():\n    pass", snap.Code)
	assert.Nil(t, snap.CurrentRunResult)
	assert.Nil(t, snap.CurrentSubmission)

	o.SelectProblem(nil)
	assert.Nil(t, store.CurrentProblem())
	assert.Equal(t, "", store.Code())
}

func TestSwitchLanguageDiscardsEdits(t *testing.T) {
	store, o := setup(&fakeJudge{})
	o.SelectProblem(problem("p-1"))
	o.Edit("def solve():\n    return 42")

	o.SwitchLanguage(domain.LangCpp)
	assert.Equal(t, domain.LangCpp, store.SelectedLanguage())
	assert.Equal(t, "class Solution {\npublic:\n};", store.Code())

	o.SwitchLanguage(domain.LangPython)
	assert.Equal(t, "def solve():\n    pass", store.Code(), "edits are not restored")
}

func TestSwitchToSameLanguageKeepsBuffer(t *testing.T) {
	store, o := setup(&fakeJudge{})
	o.SelectProblem(problem("p-1"))
	o.Edit("print('hi')")

	o.SwitchLanguage(domain.LangPython)
	assert.Equal(t, "print('hi')", store.Code())
}

func TestSwitchLanguageWithoutProblem(t *testing.T) {
	store, o := setup(&fakeJudge{})
	o.Edit("scratch")

	o.SwitchLanguage(domain.LangCpp)
	assert.Equal(t, domain.LangCpp, store.SelectedLanguage())
	assert.Equal(t, "scratch", store.Code())
}

func TestRunSuccess(t *testing.T) {
	j := &fakeJudge{
		run: func(ctx context.Context, a domain.Attempt) (domain.RunResult, error) {
			return domain.RunResult{Outcome: domain.Outcome{Verdict: domain.VerdictAccepted, Passed: 3, Total: 3}}, nil
		},
	}
	store, o := setup(j)
	o.SelectProblem(problem("p-1"))
	sub := accepted("s-1")
	store.SetCurrentSubmission(&sub)

	d := o.RunCurrent(context.Background())
	require.Equal(t, judge.Dispatched, d.Status)
	require.NoError(t, d.Err)

	snap := store.Snapshot()
	require.NotNil(t, snap.CurrentRunResult)
	assert.True(t, snap.CurrentRunResult.IsTestRun)
	assert.Equal(t, 3, snap.CurrentRunResult.Passed)
	require.NotNil(t, snap.CurrentSubmission)
	assert.Equal(t, "s-1", snap.CurrentSubmission.ID, "run never touches the submission")

	require.Len(t, j.runs, 1)
	assert.Equal(t, domain.Attempt{ProblemID: "p-1", Language: domain.LangPython, Code: "def solve():\n    pass"}, j.runs[0])
}

func TestRunFailureBecomesRuntimeError(t *testing.T) {
	j := &fakeJudge{
		run: func(ctx context.Context, a domain.Attempt) (domain.RunResult, error) {
			return domain.RunResult{}, errors.New("connection refused")
		},
	}
	store, o := setup(j)
	o.SelectProblem(problem("p-1"))
	sub := accepted("s-1")
	store.SetCurrentSubmission(&sub)

	d := o.RunCurrent(context.Background())
	require.Equal(t, judge.Dispatched, d.Status)
	require.Error(t, d.Err)

	snap := store.Snapshot()
	require.NotNil(t, snap.CurrentRunResult)
	res := snap.CurrentRunResult
	assert.Equal(t, domain.VerdictRuntimeError, res.Verdict)
	assert.Equal(t, 0, res.Passed)
	assert.Equal(t, 0, res.Total)
	assert.True(t, res.IsTestRun)
	require.NotNil(t, res.Details)
	assert.Contains(t, res.Details.Error, "connection refused")
	assert.Equal(t, "Failed to run code: connection refused", res.Details.Error)

	require.NotNil(t, snap.CurrentSubmission)
	assert.Equal(t, "s-1", snap.CurrentSubmission.ID)
}

func TestSubmitFailureKeepsPreviousSubmission(t *testing.T) {
	j := &fakeJudge{
		submit: func(ctx context.Context, a domain.Attempt) (domain.Submission, error) {
			return domain.Submission{}, errors.New("server error")
		},
	}
	store, o := setup(j)
	o.SelectProblem(problem("p-1"))
	sub := accepted("s-1")
	store.SetCurrentSubmission(&sub)

	d := o.SubmitCurrent(context.Background())
	require.Equal(t, judge.Dispatched, d.Status)
	require.Error(t, d.Err)

	snap := store.Snapshot()
	require.NotNil(t, snap.CurrentSubmission)
	assert.Equal(t, "s-1", snap.CurrentSubmission.ID)
	assert.True(t, snap.CurrentSubmission.UnlockedSolutions)
	assert.Nil(t, snap.CurrentRunResult)
}

func TestSubmitFailureWithoutPriorSubmission(t *testing.T) {
	j := &fakeJudge{
		submit: func(ctx context.Context, a domain.Attempt) (domain.Submission, error) {
			return domain.Submission{}, errors.New("timeout")
		},
	}
	store, o := setup(j)
	o.SelectProblem(problem("p-1"))

	o.SubmitCurrent(context.Background())
	assert.Nil(t, store.CurrentSubmission())
}

func TestSubmitSuccessReplacesSubmission(t *testing.T) {
	j := &fakeJudge{
		submit: func(ctx context.Context, a domain.Attempt) (domain.Submission, error) {
			return accepted("s-2"), nil
		},
	}
	store, o := setup(j)
	o.SelectProblem(problem("p-1"))
	store.SetCurrentRunResult(&domain.RunResult{IsTestRun: true})

	d := o.SubmitCurrent(context.Background())
	require.Equal(t, judge.Dispatched, d.Status)

	snap := store.Snapshot()
	require.NotNil(t, snap.CurrentSubmission)
	assert.Equal(t, "s-2", snap.CurrentSubmission.ID)
	assert.NotNil(t, snap.CurrentRunResult, "submit never touches the run result")
}

func TestPreconditionsSkipWithoutCalling(t *testing.T) {
	j := &fakeJudge{}
	store, o := setup(j)

	d := o.RunCurrent(context.Background())
	assert.Equal(t, judge.Skipped, d.Status)
	d = o.SubmitCurrent(context.Background())
	assert.Equal(t, judge.Skipped, d.Status)

	o.SelectProblem(problem("p-1"))
	o.Edit("   \n\t")
	assert.Equal(t, judge.Skipped, o.RunCurrent(context.Background()).Status)
	assert.Equal(t, judge.Skipped, o.SubmitCurrent(context.Background()).Status)

	assert.Equal(t, judge.Skipped, o.Run(context.Background(), "", domain.LangPython, "x").Status)

	assert.Empty(t, j.runs)
	assert.Empty(t, j.submits)
	snap := store.Snapshot()
	assert.Nil(t, snap.CurrentRunResult)
	assert.Nil(t, snap.CurrentSubmission)
}

func TestSecondRunWhileInFlightIsBusy(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	j := &fakeJudge{
		run: func(ctx context.Context, a domain.Attempt) (domain.RunResult, error) {
			close(started)
			<-release
			return domain.RunResult{Outcome: domain.Outcome{Verdict: domain.VerdictAccepted}}, nil
		},
	}
	_, o := setup(j)
	o.SelectProblem(problem("p-1"))

	done := make(chan judge.Dispatch)
	go func() { done <- o.RunCurrent(context.Background()) }()
	<-started

	assert.True(t, o.Running())
	assert.Equal(t, judge.Busy, o.RunCurrent(context.Background()).Status)

	close(release)
	assert.Equal(t, judge.Dispatched, (<-done).Status)
	assert.False(t, o.Running())
	assert.Len(t, j.runs, 1)
}

func TestSecondSubmitWhileInFlightIsBusy(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	j := &fakeJudge{
		submit: func(ctx context.Context, a domain.Attempt) (domain.Submission, error) {
			close(started)
			<-release
			return accepted("s-2"), nil
		},
	}
	store, o := setup(j)
	o.SelectProblem(problem("p-1"))
	prior := accepted("s-1")
	store.SetCurrentSubmission(&prior)

	done := make(chan judge.Dispatch)
	go func() { done <- o.SubmitCurrent(context.Background()) }()
	<-started

	assert.True(t, o.Submitting())
	assert.Equal(t, judge.Busy, o.SubmitCurrent(context.Background()).Status)
	require.NotNil(t, store.CurrentSubmission())
	assert.Equal(t, "s-1", store.CurrentSubmission().ID, "suppressed submit leaves the store alone")

	close(release)
	assert.Equal(t, judge.Dispatched, (<-done).Status)
	assert.False(t, o.Submitting())
	assert.Len(t, j.submits, 1)
	assert.Equal(t, "s-2", store.CurrentSubmission().ID)
}

func TestRunAndSubmitMayOverlap(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	j := &fakeJudge{
		run: func(ctx context.Context, a domain.Attempt) (domain.RunResult, error) {
			close(started)
			<-release
			return domain.RunResult{}, nil
		},
		submit: func(ctx context.Context, a domain.Attempt) (domain.Submission, error) {
			return accepted("s-1"), nil
		},
	}
	store, o := setup(j)
	o.SelectProblem(problem("p-1"))

	done := make(chan judge.Dispatch)
	go func() { done <- o.RunCurrent(context.Background()) }()
	<-started

	assert.Equal(t, judge.Dispatched, o.SubmitCurrent(context.Background()).Status)
	close(release)
	<-done

	snap := store.Snapshot()
	assert.NotNil(t, snap.CurrentRunResult)
	assert.NotNil(t, snap.CurrentSubmission)
}

func TestResultForPreviousProblemIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	j := &fakeJudge{
		submit: func(ctx context.Context, a domain.Attempt) (domain.Submission, error) {
			close(started)
			<-release
			return accepted("s-late"), nil
		},
	}
	store, o := setup(j)
	o.SelectProblem(problem("p-1"))

	done := make(chan judge.Dispatch)
	go func() { done <- o.SubmitCurrent(context.Background()) }()
	<-started

	o.SelectProblem(problem("p-2"))
	close(release)

	d := <-done
	assert.True(t, d.Stale)
	assert.Nil(t, store.CurrentSubmission())
}

func TestRunResultForPreviousProblemIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	j := &fakeJudge{
		run: func(ctx context.Context, a domain.Attempt) (domain.RunResult, error) {
			close(started)
			<-release
			return domain.RunResult{Outcome: domain.Outcome{Verdict: domain.VerdictAccepted}}, nil
		},
	}
	store, o := setup(j)
	o.SelectProblem(problem("p-1"))

	done := make(chan judge.Dispatch)
	go func() { done <- o.RunCurrent(context.Background()) }()
	<-started

	o.SelectProblem(problem("p-2"))
	close(release)

	d := <-done
	assert.True(t, d.Stale)
	assert.Nil(t, store.Snapshot().CurrentRunResult)
}

func TestSelectProblemPublishesOneSnapshot(t *testing.T) {
	store, o := setup(&fakeJudge{})
	o.SelectProblem(problem("p-1"))
	o.Edit("def solve():\n    return 1")
	store.SetCurrentRunResult(&domain.RunResult{IsTestRun: true})
	sub := accepted("s-1")
	store.SetCurrentSubmission(&sub)

	var seen []session.Snapshot
	store.Subscribe(func(snap session.Snapshot) {
		seen = append(seen, snap)
	})

	o.SelectProblem(problem("p-2"))

	require.Len(t, seen, 1)
	snap := seen[0]
	require.NotNil(t, snap.CurrentProblem)
	assert.Equal(t, "p-2", snap.CurrentProblem.ID)
	assert.Equal(t, "def solve():\n    pass", snap.Code)
	assert.Nil(t, snap.CurrentRunResult)
	assert.Nil(t, snap.CurrentSubmission)
}

func TestSwitchLanguagePublishesOneSnapshot(t *testing.T) {
	store, o := setup(&fakeJudge{})
	o.SelectProblem(problem("p-1"))

	var seen []session.Snapshot
	store.Subscribe(func(snap session.Snapshot) {
		seen = append(seen, snap)
	})

	o.SwitchLanguage(domain.LangCpp)
	o.SwitchLanguage(domain.LangCpp)

	require.Len(t, seen, 1)
	assert.Equal(t, domain.LangCpp, seen[0].SelectedLanguage)
	assert.Equal(t, "class Solution {\npublic:\n};", seen[0].Code)
}
