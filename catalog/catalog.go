// Package catalog browses problems: the randomized deck shown on start-up
// and picking one of its cards.
package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/gateway"
	"github.com/leetcoach/client/logger"
	"golang.org/x/sync/errgroup"
)

var DefaultCategories = []string{"Arrays & Strings", "Linked List", "Stack & Queue"}

const DefaultDifficulty = domain.DifficultyEasy

type Source interface {
	RandomProblem(ctx context.Context, f domain.ProblemFilter) (domain.Problem, error)
	GetProblem(ctx context.Context, problemID string) (domain.Problem, error)
	ListProblems(ctx context.Context, p gateway.ListParams) ([]domain.Problem, error)
	Categories(ctx context.Context) ([]string, error)
}

// Card is the preview of a problem shown in the deck.
type Card struct {
	ProblemID   string
	Category    string
	Difficulty  domain.Difficulty
	Title       string
	Description string
}

func CardOf(p domain.Problem) Card {
	return Card{
		ProblemID:   p.ID,
		Category:    p.Category,
		Difficulty:  p.Difficulty,
		Title:       p.Title,
		Description: p.Prompt,
	}
}

type Catalog struct {
	src Source
	now func() time.Time
}

func New(src Source) *Catalog {
	return &Catalog{src: src, now: time.Now}
}

// Randomize fetches one random problem per category concurrently. The deck
// is all or nothing: any failed fetch fails the whole call. Order follows
// categories.
func (c *Catalog) Randomize(ctx context.Context, categories []string, difficulty domain.Difficulty) ([]domain.Problem, error) {
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	deck := make([]domain.Problem, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			p, err := c.src.RandomProblem(gctx, domain.ProblemFilter{
				Category:   category,
				Difficulty: difficulty,
			})
			if err != nil {
				return fmt.Errorf("failed to get random %q problem: %w", category, err)
			}
			deck[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return deck, nil
}

// Pick loads the full problem behind a card. If that fails a placeholder
// built from the card is returned so that the user can still start coding;
// the error is returned alongside it for logging.
func (c *Catalog) Pick(ctx context.Context, card Card) (domain.Problem, error) {
	p, err := c.src.GetProblem(ctx, card.ProblemID)
	if err == nil {
		return p, nil
	}
	logger.FromContext(logger.WithProblem(ctx, card.ProblemID)).
		Warn("failed to fetch problem, using placeholder", "error", err)
	return Placeholder(card, c.now()), err
}

func (c *Catalog) List(ctx context.Context, p gateway.ListParams) ([]domain.Problem, error) {
	return c.src.ListProblems(ctx, p)
}

func (c *Catalog) Categories(ctx context.Context) ([]string, error) {
	return c.src.Categories(ctx)
}

const placeholderPublicTests = 3

var whitespace = regexp.MustCompile(`\s+`)

// Placeholder synthesizes a problem from a card preview.
func Placeholder(card Card, now time.Time) domain.Problem {
	fn := whitespace.ReplaceAllString(strings.ToLower(card.Title), "_")
	return domain.Problem{
		ID:           card.ProblemID,
		Category:     card.Category,
		TemplateSlug: "mock-template",
		Seed:         12345,
		Difficulty:   card.Difficulty,
		Title:        card.Title,
		Prompt:       card.Description,
		StarterCode: map[domain.Language]string{
			domain.LangPython: fmt.Sprintf("def %s():\n    # Your code here\n    pass", fn),
			domain.LangCpp:    "class Solution {\npublic:\n    // Your code here\n};",
		},
		TestsPublicCount: placeholderPublicTests,
		CreatedAt:        now,
	}
}
