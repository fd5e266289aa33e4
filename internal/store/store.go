// Package store persists conversation context between turns. The engine
// itself is stateless; a ContextStore is the collaborator that keeps the
// serialized context alive across requests.
package store

import (
	"context"

	"github.com/edudesk/faqbot/internal/models"
)

// ContextStore loads and saves per-conversation context keyed by
// conversation ID. A missing or corrupt record is reported as absent, never
// as a fatal error to the turn pipeline.
type ContextStore interface {
	// Load returns the stored context and true, or a zero context and
	// false when no usable record exists.
	Load(ctx context.Context, conversationID string) (models.ConversationContext, bool, error)

	// Save persists the context, replacing any previous record.
	Save(ctx context.Context, conversationID string, c models.ConversationContext) error

	// Reset deletes the stored context for the conversation.
	Reset(ctx context.Context, conversationID string) error

	// Close releases any underlying resources.
	Close(ctx context.Context) error
}
