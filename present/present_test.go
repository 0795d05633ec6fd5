package present_test

import (
	"strings"
	"testing"

	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/gateway"
	"github.com/leetcoach/client/present"
	"github.com/leetcoach/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdictLabelForBothVocabularies(t *testing.T) {
	testCases := []struct {
		wire string
		want string
	}{
		{"ACCEPTED", "Accepted"},
		{"AC", "Accepted"},
		{"WRONG_ANSWER", "Wrong Answer"},
		{"WA", "Wrong Answer"},
		{"TIMEOUT", "Time Limit Exceeded"},
		{"TLE", "Time Limit Exceeded"},
		{"RUNTIME_ERROR", "Runtime Error"},
		{"RE", "Runtime Error"},
		{"COMPILE_ERROR", "Compilation Error"},
		{"CE", "Compilation Error"},
		{"SOMETHING_NEW", "Unknown"},
	}
	for _, tc := range testCases {
		t.Run(tc.wire, func(t *testing.T) {
			assert.Equal(t, tc.want, present.VerdictLabel(gateway.DecodeVerdict(tc.wire)))
		})
	}
}

func TestLabels(t *testing.T) {
	ms, zero := 42, 0
	assert.Equal(t, "Python", present.LanguageLabel(domain.LangPython))
	assert.Equal(t, "C++", present.LanguageLabel(domain.LangCpp))
	assert.Equal(t, "3 / 5", present.PassedLabel(domain.Outcome{Passed: 3, Total: 5}))
	assert.Equal(t, "42ms", present.RuntimeLabel(&ms))
	assert.Equal(t, "N/A", present.RuntimeLabel(nil))
	assert.Equal(t, "N/A", present.RuntimeLabel(&zero))
	assert.Equal(t, "N/A", present.MemoryLabel(nil))
	assert.Equal(t, "42KB", present.MemoryLabel(&ms))
}

func TestResultsPrefersRunResult(t *testing.T) {
	empty := present.Results(session.Snapshot{})
	assert.Equal(t, present.NoResults, empty.Kind)
	assert.Equal(t, present.EmptyResults, empty.Banner)

	sub := &domain.Submission{Outcome: domain.Outcome{Verdict: domain.VerdictWrongAnswer}}
	view := present.Results(session.Snapshot{CurrentSubmission: sub})
	assert.Equal(t, present.SubmissionResults, view.Kind)
	assert.Equal(t, present.SubmissionBanner, view.Banner)

	run := &domain.RunResult{IsTestRun: true, Outcome: domain.Outcome{Verdict: domain.VerdictAccepted}}
	view = present.Results(session.Snapshot{CurrentSubmission: sub, CurrentRunResult: run})
	assert.Equal(t, present.RunResults, view.Kind)
	assert.Equal(t, present.RunBanner, view.Banner)
	assert.Equal(t, domain.VerdictAccepted, view.Outcome.Verdict)
}

func TestTestRows(t *testing.T) {
	long := strings.Repeat("x", 60)
	ms := 7
	rows := present.TestRows(&domain.Details{
		TestResults: []domain.TestResult{
			{Status: domain.TestPass, Input: "[1,2]", Expected: "3", Actual: &long, RuntimeMs: &ms},
			{Status: domain.TestError, Input: long, Expected: "4"},
		},
	})
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Case)
	assert.Equal(t, strings.Repeat("x", 50)+"...", rows[0].Actual)
	assert.Equal(t, "7ms", rows[0].Runtime)

	assert.Equal(t, 2, rows[1].Case)
	assert.Equal(t, "N/A", rows[1].Actual)
	assert.Equal(t, "N/A", rows[1].Runtime)
	assert.Equal(t, strings.Repeat("x", 50)+"...", rows[1].Input)

	assert.Nil(t, present.TestRows(nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", present.Truncate("short", 50))
	assert.Equal(t, "héll...", present.Truncate("héllo", 4))
	assert.Equal(t, strings.Repeat("a", 50), present.Truncate(strings.Repeat("a", 50), 50))
}

func TestRenderOutcome(t *testing.T) {
	out := present.RenderOutcome(present.ResultsView{Kind: present.NoResults, Banner: present.EmptyResults})
	assert.Contains(t, out, present.EmptyResults)

	out = present.RenderOutcome(present.ResultsView{
		Kind:   present.RunResults,
		Banner: present.RunBanner,
		Outcome: domain.Outcome{
			Verdict: domain.VerdictRuntimeError,
			Details: &domain.Details{Error: "Failed to run code: connection refused"},
		},
	})
	assert.Contains(t, out, "Runtime Error")
	assert.Contains(t, out, "0 / 0")
	assert.Contains(t, out, "connection refused")
}
