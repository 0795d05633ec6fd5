package domain

import (
	"strings"
	"time"
)

type Language string

const (
	LangPython Language = "python"
	LangCpp    Language = "cpp"
)

var Languages = []Language{LangPython, LangCpp}

func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "python", "py":
		return LangPython, true
	case "cpp", "c++":
		return LangCpp, true
	}
	return "", false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty is case-insensitive. Unknown values are kept verbatim
// so that a newer backend does not make problems undecodable.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	}
	return Difficulty(s)
}

// Problem is immutable once fetched. Identity is ID.
type Problem struct {
	ID               string
	Category         string
	TemplateSlug     string
	Seed             int
	Difficulty       Difficulty
	Title            string
	Prompt           string
	StarterCode      map[Language]string
	TestsPublicCount int
	CreatedAt        time.Time
}

// Starter returns the starter code for lang, or an empty string if the
// problem carries none for it.
func (p *Problem) Starter(lang Language) string {
	if p == nil {
		return ""
	}
	return p.StarterCode[lang]
}

// ProblemFilter narrows random and list queries. Zero values mean "any".
type ProblemFilter struct {
	Category   string
	Difficulty Difficulty
}
