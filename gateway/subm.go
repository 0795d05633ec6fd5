package gateway

import (
	"context"
	"net/url"

	"github.com/leetcoach/client/domain"
)

func attemptJson(a domain.Attempt) AttemptJson {
	return AttemptJson{
		ProblemID: a.ProblemID,
		Language:  string(a.Language),
		Code:      a.Code,
	}
}

// Submit asks for graded judging. The returned submission is persisted by
// the backend and carries the unlock flag.
func (c *Client) Submit(ctx context.Context, a domain.Attempt) (domain.Submission, error) {
	var res SubmissionJson
	err := c.post(ctx, "/submit/", attemptJson(a), &res)
	if err != nil {
		return domain.Submission{}, err
	}
	return res.toDomain(), nil
}

// Run executes the code against the public tests without persisting.
func (c *Client) Run(ctx context.Context, a domain.Attempt) (domain.RunResult, error) {
	var res RunResultJson
	err := c.post(ctx, "/submit/run", attemptJson(a), &res)
	if err != nil {
		return domain.RunResult{}, err
	}
	return res.toDomain(), nil
}

func (c *Client) GetSubmission(ctx context.Context, submissionID string) (domain.Submission, error) {
	var res SubmissionJson
	err := c.get(ctx, "/submit/"+url.PathEscape(submissionID), nil, &res)
	if err != nil {
		return domain.Submission{}, err
	}
	return res.toDomain(), nil
}

// GenerateFeedback asks the coach to review a stored submission.
func (c *Client) GenerateFeedback(ctx context.Context, submissionID string) (domain.Feedback, error) {
	var res FeedbackJson
	err := c.post(ctx, "/feedback/", FeedbackRequestJson{SubmissionID: submissionID}, &res)
	if err != nil {
		return domain.Feedback{}, err
	}
	return res.toDomain(), nil
}

// ReviewCode judges unsaved code against all tests and returns coach
// feedback alongside the outcome.
func (c *Client) ReviewCode(ctx context.Context, a domain.Attempt) (domain.CodeReview, error) {
	var res CodeReviewJson
	err := c.post(ctx, "/submit/feedback", attemptJson(a), &res)
	if err != nil {
		return domain.CodeReview{}, err
	}
	return res.toDomain(), nil
}
