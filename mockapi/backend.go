// Package mockapi is an in-memory stand-in for the LeetCoach API, used for
// local development of the client and for contract tests.
package mockapi

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/leetcoach/client/domain"
)

// Grader decides the outcome of running code against a problem. public
// restricts grading to the public tests.
type Grader func(p domain.Problem, a domain.Attempt, public bool) domain.Outcome

// CoachFunc produces the assistant's reply.
type CoachFunc func(p domain.Problem, userMessage, codeSnippet string) string

type Backend struct {
	lock        sync.Mutex
	problems    []domain.Problem
	solutions   map[string]domain.Solution
	submissions map[string]domain.Submission
	feedback    map[string]domain.Feedback
	chat        map[string][]domain.ChatMessage

	grade Grader
	coach CoachFunc
	pick  func(n int) int
	now   func() time.Time
}

func NewBackend(problems []domain.Problem, solutions map[string]domain.Solution) *Backend {
	return &Backend{
		problems:    slices.Clone(problems),
		solutions:   solutions,
		submissions: map[string]domain.Submission{},
		feedback:    map[string]domain.Feedback{},
		chat:        map[string][]domain.ChatMessage{},
		grade:       KeywordGrader,
		coach:       HintCoach,
		pick:        rand.IntN,
		now:         time.Now,
	}
}

// NewSampleBackend serves the bundled fixture problems.
func NewSampleBackend() *Backend {
	return NewBackend(SampleProblems(), SampleSolutions())
}

func (b *Backend) SetGrader(g Grader) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.grade = g
}

func (b *Backend) SetCoach(c CoachFunc) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.coach = c
}

func (b *Backend) problem(id string) (domain.Problem, bool) {
	for _, p := range b.problems {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Problem{}, false
}

func matches(p domain.Problem, f domain.ProblemFilter) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Difficulty != "" && !strings.EqualFold(string(p.Difficulty), string(f.Difficulty)) {
		return false
	}
	return true
}

func (b *Backend) RandomProblem(f domain.ProblemFilter) (domain.Problem, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	var candidates []domain.Problem
	for _, p := range b.problems {
		if matches(p, f) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return domain.Problem{}, ErrNoProblemMatches()
	}
	return candidates[b.pick(len(candidates))], nil
}

func (b *Backend) GetProblem(id string) (domain.Problem, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	p, ok := b.problem(id)
	if !ok {
		return domain.Problem{}, ErrProblemNotFound()
	}
	return p, nil
}

func (b *Backend) ListProblems(f domain.ProblemFilter, limit, offset int) []domain.Problem {
	b.lock.Lock()
	defer b.lock.Unlock()
	res := []domain.Problem{}
	for _, p := range b.problems {
		if matches(p, f) {
			res = append(res, p)
		}
	}
	if offset >= len(res) {
		return []domain.Problem{}
	}
	res = res[offset:]
	if limit > 0 && limit < len(res) {
		res = res[:limit]
	}
	return res
}

func (b *Backend) Categories() []string {
	b.lock.Lock()
	defer b.lock.Unlock()
	var res []string
	for _, p := range b.problems {
		if !slices.Contains(res, p.Category) {
			res = append(res, p.Category)
		}
	}
	return res
}

func validateAttempt(a domain.Attempt) error {
	if a.Language != domain.LangPython && a.Language != domain.LangCpp {
		return ErrInvalidLanguage()
	}
	return nil
}

// Run grades against the public tests only and stores nothing.
func (b *Backend) Run(a domain.Attempt) (domain.RunResult, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	p, ok := b.problem(a.ProblemID)
	if !ok {
		return domain.RunResult{}, ErrProblemNotFound()
	}
	if err := validateAttempt(a); err != nil {
		return domain.RunResult{}, err
	}
	return domain.RunResult{Outcome: b.grade(p, a, true), IsTestRun: true}, nil
}

// unlocks mirrors the backend policy: any judged submission except a
// compilation failure opens the solutions.
func unlocks(v domain.Verdict) bool {
	switch v {
	case domain.VerdictAccepted, domain.VerdictWrongAnswer, domain.VerdictTimeout, domain.VerdictRuntimeError:
		return true
	}
	return false
}

func (b *Backend) Submit(a domain.Attempt) (domain.Submission, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	p, ok := b.problem(a.ProblemID)
	if !ok {
		return domain.Submission{}, ErrProblemNotFound()
	}
	if err := validateAttempt(a); err != nil {
		return domain.Submission{}, err
	}
	outcome := b.grade(p, a, false)
	sub := domain.Submission{
		Outcome:           outcome,
		ID:                uuid.NewString(),
		ProblemID:         p.ID,
		Language:          a.Language,
		Code:              a.Code,
		CreatedAt:         b.now().UTC(),
		UnlockedSolutions: unlocks(outcome.Verdict),
	}
	b.submissions[sub.ID] = sub
	return sub, nil
}

func (b *Backend) GetSubmission(id string) (domain.Submission, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	sub, ok := b.submissions[id]
	if !ok {
		return domain.Submission{}, ErrSubmissionNotFound()
	}
	sub.UnlockedSolutions = unlocks(sub.Verdict)
	return sub, nil
}

// Solution is available once any submission exists for the problem.
func (b *Backend) Solution(problemID string) (domain.Solution, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	submitted := false
	for _, sub := range b.submissions {
		if sub.ProblemID == problemID {
			submitted = true
			break
		}
	}
	if !submitted {
		return domain.Solution{}, ErrSolutionsLocked()
	}
	if _, ok := b.problem(problemID); !ok {
		return domain.Solution{}, ErrProblemNotFound()
	}
	sol, ok := b.solutions[problemID]
	if !ok {
		return domain.Solution{}, ErrSolutionNotFound()
	}
	return sol, nil
}

func (b *Backend) Chat(problemID, userMessage, codeSnippet string) (domain.ChatMessage, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	p, ok := b.problem(problemID)
	if !ok {
		return domain.ChatMessage{}, ErrProblemNotFound()
	}
	msg := domain.ChatMessage{
		ID:            uuid.NewString(),
		ProblemID:     problemID,
		UserMessage:   userMessage,
		CoachResponse: b.coach(p, userMessage, codeSnippet),
		CodeSnippet:   codeSnippet,
		CreatedAt:     b.now().UTC(),
	}
	b.chat[problemID] = append(b.chat[problemID], msg)
	return msg, nil
}

// ChatHistory returns the latest limit messages, oldest first.
func (b *Backend) ChatHistory(problemID string, limit int) []domain.ChatMessage {
	b.lock.Lock()
	defer b.lock.Unlock()
	msgs := b.chat[problemID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return append([]domain.ChatMessage{}, msgs...)
}

func (b *Backend) Feedback(submissionID string) (domain.Feedback, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	sub, ok := b.submissions[submissionID]
	if !ok {
		return domain.Feedback{}, ErrSubmissionNotFound()
	}
	fb := domain.Feedback{
		ID:           uuid.NewString(),
		SubmissionID: sub.ID,
		SummaryBullets: []string{
			fmt.Sprintf("Verdict: %s with %d/%d tests passing", sub.Verdict, sub.Passed, sub.Total),
		},
		SuggestedImprovements: []string{"Check the edge cases: empty input and single element."},
		ComplexityNotes:       "Aim for a single pass over the input.",
		CreatedAt:             b.now().UTC(),
	}
	if sub.Verdict == domain.VerdictAccepted {
		fb.SuggestedImprovements = []string{"Consider naming intermediate values for readability."}
	}
	b.feedback[fb.ID] = fb
	return fb, nil
}

func (b *Backend) ReviewCode(a domain.Attempt) (domain.CodeReview, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	p, ok := b.problem(a.ProblemID)
	if !ok {
		return domain.CodeReview{}, ErrProblemNotFound()
	}
	if err := validateAttempt(a); err != nil {
		return domain.CodeReview{}, err
	}
	outcome := b.grade(p, a, false)
	return domain.CodeReview{
		Feedback: fmt.Sprintf("%s: %d of %d tests pass.", p.Title, outcome.Passed, outcome.Total),
		Results:  outcome,
	}, nil
}
