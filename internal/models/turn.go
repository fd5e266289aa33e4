package models

// FallbackType names the degraded response tiers.
type FallbackType string

const (
	FallbackSuggestion    FallbackType = "suggestion"
	FallbackClarification FallbackType = "clarification"
	FallbackHandover      FallbackType = "handover"
)

// TurnResult is the outcome of one conversational turn.
// FaqID, FallbackType and Suggestions are only set for the tiers that
// produce them.
type TurnResult struct {
	Reply        string              `json:"reply"`
	Intent       string              `json:"intent,omitempty"`
	Entities     EntitySet           `json:"entities"`
	Confidence   float64             `json:"confidence"`
	FaqID        *int                `json:"faq_id,omitempty"`
	FallbackType FallbackType        `json:"fallback_type,omitempty"`
	Suggestions  []Suggestion        `json:"suggestions,omitempty"`
	Context      ConversationContext `json:"context"`
}
