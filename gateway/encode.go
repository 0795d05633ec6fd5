package gateway

import (
	"encoding/json"

	"github.com/leetcoach/client/domain"
)

// Encoders produce the backend's wire shapes from domain values. They are
// used by the development backend and by tests.

var shortVerdictNames = map[domain.Verdict]string{
	domain.VerdictAccepted:     "AC",
	domain.VerdictWrongAnswer:  "WA",
	domain.VerdictTimeout:      "TLE",
	domain.VerdictRuntimeError: "RE",
	domain.VerdictCompileError: "CE",
}

// EncodeShortVerdict renders v in the short vocabulary used by runs.
func EncodeShortVerdict(v domain.Verdict) string {
	if s, ok := shortVerdictNames[v]; ok {
		return s
	}
	return "UNKNOWN"
}

func ProblemToJson(p domain.Problem) ProblemJson {
	return ProblemJson{
		ProblemID:        p.ID,
		Category:         p.Category,
		TemplateSlug:     p.TemplateSlug,
		Seed:             p.Seed,
		Difficulty:       string(p.Difficulty),
		Title:            p.Title,
		Prompt:           p.Prompt,
		StarterCodePy:    p.Starter(domain.LangPython),
		StarterCodeCpp:   p.Starter(domain.LangCpp),
		TestsPublicCount: p.TestsPublicCount,
		CreatedAt:        Timestamp{p.CreatedAt},
	}
}

// OutcomeToJson encodes o; short selects the short verdict vocabulary.
func OutcomeToJson(o domain.Outcome, short bool) OutcomeJson {
	res := OutcomeJson{
		Verdict:   EncodeVerdict(o.Verdict),
		Passed:    o.Passed,
		Total:     o.Total,
		RuntimeMs: o.RuntimeMs,
		MemoryKb:  o.MemoryKb,
	}
	if short {
		res.Verdict = EncodeShortVerdict(o.Verdict)
	}
	if o.Details != nil {
		d := DetailsJson{
			CompilationOutput: optional(o.Details.CompilationOutput),
			RuntimeOutput:     optional(o.Details.RuntimeOutput),
			Error:             optional(o.Details.Error),
		}
		for _, tr := range o.Details.TestResults {
			row := TestResultJson{
				Status:         string(tr.Status),
				Input:          rawOrNil(tr.Input),
				ExpectedOutput: rawOrNil(tr.Expected),
				ErrorMessage:   tr.ErrorMessage,
				RuntimeMs:      tr.RuntimeMs,
			}
			if tr.Actual != nil {
				row.ActualOutput = rawOrNil(*tr.Actual)
			}
			d.TestResults = append(d.TestResults, row)
		}
		res.Details = &d
	}
	return res
}

func RunResultToJson(r domain.RunResult) RunResultJson {
	return RunResultJson{
		OutcomeJson: OutcomeToJson(r.Outcome, true),
		IsTestRun:   r.IsTestRun,
	}
}

func SubmissionToJson(s domain.Submission) SubmissionJson {
	return SubmissionJson{
		OutcomeJson:       OutcomeToJson(s.Outcome, false),
		ID:                s.ID,
		ProblemID:         s.ProblemID,
		Language:          string(s.Language),
		Code:              s.Code,
		CreatedAt:         Timestamp{s.CreatedAt},
		UnlockedSolutions: s.UnlockedSolutions,
	}
}

func ChatMessageToJson(m domain.ChatMessage) ChatMessageJson {
	return ChatMessageJson{
		ID:            m.ID,
		ProblemID:     m.ProblemID,
		UserMessage:   m.UserMessage,
		CoachResponse: m.CoachResponse,
		CodeSnippet:   optional(m.CodeSnippet),
		CreatedAt:     Timestamp{m.CreatedAt},
	}
}

func SolutionToJson(s domain.Solution) SolutionJson {
	return SolutionJson{
		PythonSolution: s.PythonSolution,
		CppSolution:    s.CppSolution,
		Explanation:    s.Explanation,
		Complexity:     s.Complexity,
	}
}

func FeedbackToJson(f domain.Feedback) FeedbackJson {
	return FeedbackJson{
		ID:                    f.ID,
		SubmissionID:          f.SubmissionID,
		SummaryBullets:        f.SummaryBullets,
		SuggestedImprovements: f.SuggestedImprovements,
		ComplexityNotes:       optional(f.ComplexityNotes),
		CreatedAt:             Timestamp{f.CreatedAt},
	}
}

func CodeReviewToJson(r domain.CodeReview) CodeReviewJson {
	fb, _ := json.Marshal(r.Feedback)
	return CodeReviewJson{
		Feedback:    fb,
		TestResults: OutcomeToJson(r.Results, false),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// rawOrNil keeps s as raw JSON when it is valid JSON, otherwise encodes it
// as a JSON string.
func rawOrNil(s string) json.RawMessage {
	if s == "" {
		return nil
	}
	if json.Valid([]byte(s)) {
		return json.RawMessage(s)
	}
	b, _ := json.Marshal(s)
	return b
}
