package present

import (
	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/session"
)

type ResultsKind int

const (
	NoResults ResultsKind = iota
	RunResults
	SubmissionResults
)

const (
	RunBanner        = "This is a test run. Your code was executed but not submitted."
	SubmissionBanner = "Your code has been submitted and judged. Here are the results."
	EmptyResults     = "No results yet. Run your code or submit it to see results."
)

// ResultsView is what the results pane shows. A run result takes
// precedence over a submission.
type ResultsView struct {
	Kind    ResultsKind
	Banner  string
	Outcome domain.Outcome
}

func Results(snap session.Snapshot) ResultsView {
	switch {
	case snap.CurrentRunResult != nil:
		return ResultsView{Kind: RunResults, Banner: RunBanner, Outcome: snap.CurrentRunResult.Outcome}
	case snap.CurrentSubmission != nil:
		return ResultsView{Kind: SubmissionResults, Banner: SubmissionBanner, Outcome: snap.CurrentSubmission.Outcome}
	}
	return ResultsView{Kind: NoResults, Banner: EmptyResults}
}

const cellWidth = 50

// TestRow is one printable line of the per-test table.
type TestRow struct {
	Case     int
	Status   string
	Input    string
	Expected string
	Actual   string
	Runtime  string
}

func TestRows(d *domain.Details) []TestRow {
	if d == nil {
		return nil
	}
	rows := make([]TestRow, 0, len(d.TestResults))
	for i, tr := range d.TestResults {
		actual := "N/A"
		if tr.Actual != nil {
			actual = Truncate(*tr.Actual, cellWidth)
		}
		rows = append(rows, TestRow{
			Case:     i + 1,
			Status:   string(tr.Status),
			Input:    Truncate(tr.Input, cellWidth),
			Expected: Truncate(tr.Expected, cellWidth),
			Actual:   actual,
			Runtime:  RuntimeLabel(tr.RuntimeMs),
		})
	}
	return rows
}

// Truncate cuts s to n runes and marks the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
