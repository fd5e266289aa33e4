// Package models contains the plain value types shared across the bot:
// FAQ entries, extracted entities, conversation context, and turn results.
package models

// FaqEntry is one question/answer record from the FAQ corpus.
// Entries are loaded once at startup and never mutated.
type FaqEntry struct {
	ID       int                 `yaml:"id" json:"id"`
	Question string              `yaml:"question" json:"question"`
	Answer   string              `yaml:"answer" json:"answer"`
	Keywords []string            `yaml:"keywords" json:"keywords"`
	Intent   string              `yaml:"intent" json:"intent"`
	Synonyms map[string][]string `yaml:"synonyms,omitempty" json:"synonyms,omitempty"`
}

// ScoredFaq pairs a corpus entry with a similarity score in [0,1].
type ScoredFaq struct {
	Faq   *FaqEntry
	Score float64
}

// Suggestion is one "did you mean" candidate shown to the user.
type Suggestion struct {
	Question string  `json:"question"`
	ID       int     `json:"id"`
	Score    float64 `json:"score"`
}
