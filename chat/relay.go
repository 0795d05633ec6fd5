// Package chat relays conversation with the coaching assistant and keeps
// the append-only transcript in the session store.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leetcoach/client/domain"
	"github.com/leetcoach/client/logger"
	"github.com/leetcoach/client/session"
)

// OfflineGuidance is appended when the user writes while no problem is
// active. It never reaches the backend.
const OfflineGuidance = `I'd be happy to help you with coding questions! However, I work best when you have a specific problem selected. 

Here are some general tips:
- Select a problem from the Problems tab to get contextual help
- I can help with problem understanding, approach strategies, and debugging
- I provide hints and guidance without giving away complete solutions

What would you like to work on?`

// Apology replaces the coach response when a send fails.
const Apology = "Sorry, I encountered an error. Please try again."

type Coach interface {
	SendChat(ctx context.Context, problemID, userMessage, codeSnippet string) (domain.ChatMessage, error)
	ChatHistory(ctx context.Context, problemID string, limit int) ([]domain.ChatMessage, error)
}

type Route int

const (
	// Dispatched means the message went to the backend (the reply may
	// still be the apology if that failed).
	Dispatched Route = iota
	// LocalFallback means no problem was active and the guidance template
	// was appended without a network call.
	LocalFallback
	// Ignored means the message was blank and nothing was appended.
	Ignored
)

func (r Route) String() string {
	switch r {
	case Dispatched:
		return "dispatched"
	case LocalFallback:
		return "local_fallback"
	case Ignored:
		return "ignored"
	}
	return "unknown"
}

type Outcome struct {
	Route   Route
	Message domain.ChatMessage
	Err     error
}

// Relay sends chat messages. Concurrent sends are independent: each one
// appends when it completes, so replies may land out of issue order.
type Relay struct {
	store *session.Store
	coach Coach

	now   func() time.Time
	newID func() string
}

func NewRelay(store *session.Store, coach Coach) *Relay {
	return &Relay{
		store: store,
		coach: coach,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Send relays userMessage for problemID; an empty problemID means no
// problem is active. The current code buffer travels along as context.
func (r *Relay) Send(ctx context.Context, problemID string, userMessage string) Outcome {
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" {
		return Outcome{Route: Ignored}
	}

	if problemID == "" {
		msg := r.synthesize(domain.GeneralScope, userMessage, OfflineGuidance)
		r.store.AddChatMessage(msg)
		return Outcome{Route: LocalFallback, Message: msg}
	}

	ctx = logger.WithProblem(ctx, problemID)
	msg, err := r.coach.SendChat(ctx, problemID, userMessage, r.store.Code())
	if err != nil {
		logger.FromContext(ctx).Warn("chat send failed", "error", err)
		msg = r.synthesize(problemID, userMessage, Apology)
	}
	r.store.AddChatMessage(msg)
	return Outcome{Route: Dispatched, Message: msg, Err: err}
}

// SendCurrent relays userMessage in the scope of the active problem.
func (r *Relay) SendCurrent(ctx context.Context, userMessage string) Outcome {
	problemID := ""
	if p := r.store.CurrentProblem(); p != nil {
		problemID = p.ID
	}
	return r.Send(ctx, problemID, userMessage)
}

// History reads earlier conversation for a problem. It does not touch the
// transcript.
func (r *Relay) History(ctx context.Context, problemID string, limit int) ([]domain.ChatMessage, error) {
	msgs, err := r.coach.ChatHistory(ctx, problemID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat history: %w", err)
	}
	return msgs, nil
}

// Clear empties the transcript. It is the only way messages go away.
func (r *Relay) Clear() {
	r.store.ClearChat()
}

func (r *Relay) synthesize(problemID, userMessage, response string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:            r.newID(),
		ProblemID:     problemID,
		UserMessage:   userMessage,
		CoachResponse: response,
		CreatedAt:     r.now(),
	}
}
