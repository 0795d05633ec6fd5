package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/leetcoach/client/domain"
)

// Timestamp accepts RFC 3339 as well as the zone-less ISO 8601 the
// backend emits for naive datetimes; the latter are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp is not a string: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

type ProblemJson struct {
	ProblemID        string    `json:"problem_id"`
	Category         string    `json:"category"`
	TemplateSlug     string    `json:"template_slug"`
	Seed             int       `json:"seed"`
	Difficulty       string    `json:"difficulty"`
	Title            string    `json:"title"`
	Prompt           string    `json:"prompt"`
	StarterCodePy    string    `json:"starter_code_py"`
	StarterCodeCpp   string    `json:"starter_code_cpp"`
	TestsPublicCount int       `json:"tests_public_count"`
	CreatedAt        Timestamp `json:"created_at"`
}

type TestResultJson struct {
	Status         string          `json:"status"`
	Input          json.RawMessage `json:"input,omitempty"`
	ExpectedOutput json.RawMessage `json:"expected_output,omitempty"`
	ActualOutput   json.RawMessage `json:"actual_output,omitempty"`
	ErrorMessage   string          `json:"error_message,omitempty"`
	RuntimeMs      *int            `json:"runtime_ms,omitempty"`
}

type DetailsJson struct {
	TestResults       []TestResultJson `json:"test_results,omitempty"`
	CompilationOutput *string          `json:"compilation_output,omitempty"`
	RuntimeOutput     *string          `json:"runtime_output,omitempty"`
	Error             *string          `json:"error,omitempty"`
}

type OutcomeJson struct {
	Verdict   string       `json:"verdict"`
	Passed    int          `json:"passed"`
	Total     int          `json:"total"`
	RuntimeMs *int         `json:"runtime_ms,omitempty"`
	MemoryKb  *int         `json:"memory_kb,omitempty"`
	Details   *DetailsJson `json:"details,omitempty"`
}

type RunResultJson struct {
	OutcomeJson
	IsTestRun bool `json:"is_test_run"`
}

type SubmissionJson struct {
	OutcomeJson
	ID                string    `json:"id"`
	ProblemID         string    `json:"problem_id"`
	Language          string    `json:"language"`
	Code              string    `json:"code"`
	CreatedAt         Timestamp `json:"created_at"`
	UnlockedSolutions bool      `json:"unlocked_solutions"`
}

type ChatMessageJson struct {
	ID            string    `json:"id"`
	ProblemID     string    `json:"problem_id"`
	UserMessage   string    `json:"user_message"`
	CoachResponse string    `json:"coach_response"`
	CodeSnippet   *string   `json:"code_snippet,omitempty"`
	CreatedAt     Timestamp `json:"created_at"`
}

type SolutionJson struct {
	PythonSolution string `json:"python_solution"`
	CppSolution    string `json:"cpp_solution"`
	Explanation    string `json:"explanation"`
	Complexity     string `json:"complexity"`
}

type FeedbackJson struct {
	ID                    string    `json:"id"`
	SubmissionID          string    `json:"submission_id"`
	SummaryBullets        []string  `json:"summary_bullets"`
	SuggestedImprovements []string  `json:"suggested_improvements"`
	ComplexityNotes       *string   `json:"complexity_notes,omitempty"`
	CreatedAt             Timestamp `json:"created_at"`
}

type CodeReviewJson struct {
	Feedback    json.RawMessage `json:"feedback"`
	TestResults OutcomeJson     `json:"test_results"`
}

type AttemptJson struct {
	ProblemID string `json:"problem_id"`
	Language  string `json:"language"`
	Code      string `json:"code"`
}

type ChatRequestJson struct {
	ProblemID   string  `json:"problem_id"`
	UserMessage string  `json:"user_message"`
	CodeSnippet *string `json:"code_snippet,omitempty"`
}

type FeedbackRequestJson struct {
	SubmissionID string `json:"submission_id"`
}

func (p ProblemJson) toDomain() domain.Problem {
	return domain.Problem{
		ID:           p.ProblemID,
		Category:     p.Category,
		TemplateSlug: p.TemplateSlug,
		Seed:         p.Seed,
		Difficulty:   domain.ParseDifficulty(p.Difficulty),
		Title:        p.Title,
		Prompt:       p.Prompt,
		StarterCode: map[domain.Language]string{
			domain.LangPython: p.StarterCodePy,
			domain.LangCpp:    p.StarterCodeCpp,
		},
		TestsPublicCount: p.TestsPublicCount,
		CreatedAt:        p.CreatedAt.Time,
	}
}

func (o OutcomeJson) toDomain() domain.Outcome {
	res := domain.Outcome{
		Verdict:   DecodeVerdict(o.Verdict),
		Passed:    o.Passed,
		Total:     o.Total,
		RuntimeMs: o.RuntimeMs,
		MemoryKb:  o.MemoryKb,
	}
	if o.Details != nil {
		d := o.Details.toDomain()
		res.Details = &d
	}
	return res
}

func (d DetailsJson) toDomain() domain.Details {
	res := domain.Details{
		CompilationOutput: deref(d.CompilationOutput),
		RuntimeOutput:     deref(d.RuntimeOutput),
		Error:             deref(d.Error),
	}
	for _, tr := range d.TestResults {
		res.TestResults = append(res.TestResults, tr.toDomain())
	}
	return res
}

func (t TestResultJson) toDomain() domain.TestResult {
	res := domain.TestResult{
		Status:       domain.TestStatus(strings.ToUpper(t.Status)),
		Input:        compactJson(t.Input),
		Expected:     compactJson(t.ExpectedOutput),
		ErrorMessage: t.ErrorMessage,
		RuntimeMs:    t.RuntimeMs,
	}
	if len(t.ActualOutput) > 0 {
		actual := compactJson(t.ActualOutput)
		res.Actual = &actual
	}
	return res
}

func (r RunResultJson) toDomain() domain.RunResult {
	return domain.RunResult{
		Outcome:   r.OutcomeJson.toDomain(),
		IsTestRun: r.IsTestRun,
	}
}

func (s SubmissionJson) toDomain() domain.Submission {
	lang, _ := domain.ParseLanguage(s.Language)
	return domain.Submission{
		Outcome:           s.OutcomeJson.toDomain(),
		ID:                s.ID,
		ProblemID:         s.ProblemID,
		Language:          lang,
		Code:              s.Code,
		CreatedAt:         s.CreatedAt.Time,
		UnlockedSolutions: s.UnlockedSolutions,
	}
}

func (m ChatMessageJson) toDomain() domain.ChatMessage {
	return domain.ChatMessage{
		ID:            m.ID,
		ProblemID:     m.ProblemID,
		UserMessage:   m.UserMessage,
		CoachResponse: m.CoachResponse,
		CodeSnippet:   deref(m.CodeSnippet),
		CreatedAt:     m.CreatedAt.Time,
	}
}

func (s SolutionJson) toDomain() domain.Solution {
	return domain.Solution{
		PythonSolution: s.PythonSolution,
		CppSolution:    s.CppSolution,
		Explanation:    s.Explanation,
		Complexity:     s.Complexity,
	}
}

func (f FeedbackJson) toDomain() domain.Feedback {
	return domain.Feedback{
		ID:                    f.ID,
		SubmissionID:          f.SubmissionID,
		SummaryBullets:        f.SummaryBullets,
		SuggestedImprovements: f.SuggestedImprovements,
		ComplexityNotes:       deref(f.ComplexityNotes),
		CreatedAt:             f.CreatedAt.Time,
	}
}

func (r CodeReviewJson) toDomain() domain.CodeReview {
	var text string
	if err := json.Unmarshal(r.Feedback, &text); err != nil {
		text = compactJson(r.Feedback)
	}
	return domain.CodeReview{
		Feedback: text,
		Results:  r.TestResults.toDomain(),
	}
}

func compactJson(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
