package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/leetcoach/client/domain"
)

const DefaultListLimit = 20

type ListParams struct {
	Filter domain.ProblemFilter
	Limit  int // DefaultListLimit when zero
	Offset int
}

func filterQuery(f domain.ProblemFilter) url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Difficulty != "" {
		q.Set("difficulty", string(f.Difficulty))
	}
	return q
}

// RandomProblem asks the backend to generate or pick a problem matching f.
func (c *Client) RandomProblem(ctx context.Context, f domain.ProblemFilter) (domain.Problem, error) {
	var res ProblemJson
	err := c.get(ctx, "/problems/random", filterQuery(f), &res)
	if err != nil {
		return domain.Problem{}, err
	}
	return res.toDomain(), nil
}

func (c *Client) GetProblem(ctx context.Context, problemID string) (domain.Problem, error) {
	var res ProblemJson
	err := c.get(ctx, "/problems/"+url.PathEscape(problemID), nil, &res)
	if err != nil {
		return domain.Problem{}, err
	}
	return res.toDomain(), nil
}

func (c *Client) ListProblems(ctx context.Context, p ListParams) ([]domain.Problem, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	q := filterQuery(p.Filter)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(p.Offset))

	var res []ProblemJson
	err := c.get(ctx, "/problems/", q, &res)
	if err != nil {
		return nil, err
	}
	problems := make([]domain.Problem, 0, len(res))
	for _, p := range res {
		problems = append(problems, p.toDomain())
	}
	return problems, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var res []string
	err := c.get(ctx, "/problems/categories/", nil, &res)
	if err != nil {
		return nil, err
	}
	return res, nil
}
