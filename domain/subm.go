package domain

import "time"

// RunResult is the ephemeral outcome of a non-graded run.
type RunResult struct {
	Outcome
	IsTestRun bool
}

// Submission is the persisted outcome of a graded submit.
type Submission struct {
	Outcome
	ID                string
	ProblemID         string
	Language          Language
	Code              string
	CreatedAt         time.Time
	UnlockedSolutions bool
}

type Solution struct {
	PythonSolution string
	CppSolution    string
	Explanation    string
	Complexity     string
}

func (s Solution) For(lang Language) string {
	if lang == LangCpp {
		return s.CppSolution
	}
	return s.PythonSolution
}

type Feedback struct {
	ID                    string
	SubmissionID          string
	SummaryBullets        []string
	SuggestedImprovements []string
	ComplexityNotes       string
	CreatedAt             time.Time
}

// CodeReview is the combined coach feedback and judge outcome returned for
// an unsaved piece of code.
type CodeReview struct {
	Feedback string
	Results  Outcome
}

// Attempt is the code the user asks the judge to run or grade.
type Attempt struct {
	ProblemID string
	Language  Language
	Code      string
}
