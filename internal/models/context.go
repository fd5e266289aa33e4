package models

// ConversationContext is the minimal cross-turn state kept per conversation.
// It is a plain serializable value: callers persist it between turns and pass
// it back in, the engine never holds it as process state.
type ConversationContext struct {
	LastIntent   string    `json:"last_intent,omitempty"`
	LastEntities EntitySet `json:"last_entities"`
	LastQuery    string    `json:"last_query,omitempty"`
	LastFaqID    *int      `json:"last_faq_id,omitempty"`
	TurnCount    int       `json:"turn_count"`
}

// NewContext returns a fresh context for a conversation with no history.
func NewContext() ConversationContext {
	return ConversationContext{}
}
