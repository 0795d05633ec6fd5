package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/leetcoach/client/domain"
)

const DefaultHistoryLimit = 50

// SendChat relays one user utterance; codeSnippet may be empty.
func (c *Client) SendChat(ctx context.Context, problemID, userMessage, codeSnippet string) (domain.ChatMessage, error) {
	req := ChatRequestJson{
		ProblemID:   problemID,
		UserMessage: userMessage,
		CodeSnippet: optional(codeSnippet),
	}
	var res ChatMessageJson
	err := c.post(ctx, "/chat/", req, &res)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	return res.toDomain(), nil
}

func (c *Client) ChatHistory(ctx context.Context, problemID string, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var res []ChatMessageJson
	err := c.get(ctx, "/chat/"+url.PathEscape(problemID)+"/history", q, &res)
	if err != nil {
		return nil, err
	}
	msgs := make([]domain.ChatMessage, 0, len(res))
	for _, m := range res {
		msgs = append(msgs, m.toDomain())
	}
	return msgs, nil
}

// Solution is gated server-side; a locked problem answers with an error
// status.
func (c *Client) Solution(ctx context.Context, problemID string) (domain.Solution, error) {
	var res SolutionJson
	err := c.get(ctx, "/solutions/"+url.PathEscape(problemID), nil, &res)
	if err != nil {
		return domain.Solution{}, err
	}
	return res.toDomain(), nil
}
