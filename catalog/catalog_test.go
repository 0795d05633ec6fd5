package catalog_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/leetcoach/client/catalog"
	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	random func(ctx context.Context, f domain.ProblemFilter) (domain.Problem, error)
	get    func(ctx context.Context, problemID string) (domain.Problem, error)

	lock    sync.Mutex
	filters []domain.ProblemFilter
}

func (f *fakeSource) RandomProblem(ctx context.Context, filter domain.ProblemFilter) (domain.Problem, error) {
	f.lock.Lock()
	f.filters = append(f.filters, filter)
	f.lock.Unlock()
	return f.random(ctx, filter)
}

func (f *fakeSource) GetProblem(ctx context.Context, problemID string) (domain.Problem, error) {
	return f.get(ctx, problemID)
}

func (f *fakeSource) ListProblems(ctx context.Context, p gateway.ListParams) ([]domain.Problem, error) {
	return nil, nil
}

func (f *fakeSource) Categories(ctx context.Context) ([]string, error) {
	return catalog.DefaultCategories, nil
}

func TestRandomizeKeepsCategoryOrder(t *testing.T) {
	src := &fakeSource{
		random: func(ctx context.Context, f domain.ProblemFilter) (domain.Problem, error) {
			// finish in reverse order
			if f.Category == "Arrays & Strings" {
				time.Sleep(20 * time.Millisecond)
			}
			return domain.Problem{ID: f.Category, Category: f.Category, Difficulty: f.Difficulty}, nil
		},
	}
	c := catalog.New(src)

	deck, err := c.Randomize(context.Background(), nil, catalog.DefaultDifficulty)
	require.NoError(t, err)
	require.Len(t, deck, 3)
	for i, category := range catalog.DefaultCategories {
		assert.Equal(t, category, deck[i].Category)
		assert.Equal(t, domain.DifficultyEasy, deck[i].Difficulty)
	}
	assert.Len(t, src.filters, 3)
}

func TestRandomizeIsAllOrNothing(t *testing.T) {
	src := &fakeSource{
		random: func(ctx context.Context, f domain.ProblemFilter) (domain.Problem, error) {
			if f.Category == "Linked List" {
				return domain.Problem{}, errors.New("404")
			}
			return domain.Problem{ID: f.Category}, nil
		},
	}
	c := catalog.New(src)

	deck, err := c.Randomize(context.Background(), catalog.DefaultCategories, domain.DifficultyEasy)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Linked List")
	assert.Nil(t, deck)
}

func TestPickReturnsFullProblem(t *testing.T) {
	src := &fakeSource{
		get: func(ctx context.Context, problemID string) (domain.Problem, error) {
			return domain.Problem{ID: problemID, Title: "Two Sum", TestsPublicCount: 4}, nil
		},
	}
	c := catalog.New(src)

	p, err := c.Pick(context.Background(), catalog.Card{ProblemID: "p-1", Title: "Two Sum"})
	require.NoError(t, err)
	assert.Equal(t, 4, p.TestsPublicCount)
}

func TestPickFallsBackToPlaceholder(t *testing.T) {
	src := &fakeSource{
		get: func(ctx context.Context, problemID string) (domain.Problem, error) {
			return domain.Problem{}, errors.New("timeout")
		},
	}
	c := catalog.New(src)
	card := catalog.Card{
		ProblemID:   "p-9",
		Category:    "Stack & Queue",
		Difficulty:  domain.DifficultyEasy,
		Title:       "Min Stack",
		Description: "Design a stack.",
	}

	p, err := c.Pick(context.Background(), card)
	require.Error(t, err)
	assert.Equal(t, "p-9", p.ID)
	assert.Equal(t, "Min Stack", p.Title)
	assert.Equal(t, "Design a stack.", p.Prompt)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestPlaceholder(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	p := catalog.Placeholder(catalog.Card{
		ProblemID:  "p-1",
		Title:      "Valid  Parentheses Check",
		Difficulty: domain.DifficultyMedium,
	}, now)

	assert.Equal(t, "def valid_parentheses_check():\n    # Your code here\n    pass", p.Starter(domain.LangPython))
	assert.Equal(t, "class Solution {\npublic:\n    // Your code here\n};", p.Starter(domain.LangCpp))
	assert.Equal(t, 3, p.TestsPublicCount)
	assert.Equal(t, domain.DifficultyMedium, p.Difficulty)
	assert.Equal(t, now, p.CreatedAt)
}

func TestCardOf(t *testing.T) {
	card := catalog.CardOf(domain.Problem{
		ID:         "p-1",
		Category:   "Linked List",
		Difficulty: domain.DifficultyEasy,
		Title:      "Reverse Linked List",
		Prompt:     "Reverse it.",
	})
	assert.Equal(t, catalog.Card{
		ProblemID:   "p-1",
		Category:    "Linked List",
		Difficulty:  domain.DifficultyEasy,
		Title:       "Reverse Linked List",
		Description: "Reverse it.",
	}, card)
}
