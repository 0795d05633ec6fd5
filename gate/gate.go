// Package gate decides whether reference solutions may be shown.
package gate

import (
	"context"
	"fmt"

	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/session"
	"github.com/leetcoach/client/srvcerror"
)

// SolutionsVisible is true only for a graded submission that the backend
// marked as unlocking. Runs never unlock, whatever their verdict.
func SolutionsVisible(sub *domain.Submission) bool {
	return sub != nil && sub.UnlockedSolutions
}

// Open evaluates the gate against a store snapshot. Only the current
// submission is consulted.
func Open(snap session.Snapshot) bool {
	return SolutionsVisible(snap.CurrentSubmission)
}

type SolutionFetcher interface {
	Solution(ctx context.Context, problemID string) (domain.Solution, error)
}

// Loader fetches reference solutions for the active problem, but only
// while the gate is open.
type Loader struct {
	fetcher SolutionFetcher
}

func NewLoader(fetcher SolutionFetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

func (l *Loader) Load(ctx context.Context, snap session.Snapshot) (domain.Solution, error) {
	if !Open(snap) || snap.CurrentProblem == nil {
		return domain.Solution{}, ErrSolutionsLocked()
	}
	sol, err := l.fetcher.Solution(ctx, snap.CurrentProblem.ID)
	if err != nil {
		return domain.Solution{}, fmt.Errorf("failed to load solution: %w", err)
	}
	return sol, nil
}

const ErrCodeSolutionsLocked = "solutions_locked"

func ErrSolutionsLocked() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSolutionsLocked,
		"Solutions are locked until you make your first submission.",
	)
}
