package domain

import "time"

// GeneralScope owns chat messages exchanged while no problem is active.
const GeneralScope = "general"

// ChatMessage is append-only; it is never mutated after creation.
type ChatMessage struct {
	ID            string
	ProblemID     string
	UserMessage   string
	CoachResponse string
	CodeSnippet   string
	CreatedAt     time.Time
}
