package store

import (
	"context"
	"sync"

	"github.com/edudesk/faqbot/internal/models"
)

// MemoryStore is a process-local ContextStore. Contexts live for the
// process lifetime only; use the SurrealDB store when conversations must
// survive restarts.
type MemoryStore struct {
	mu       sync.RWMutex
	contexts map[string]models.ConversationContext
}

// NewMemoryStore creates an empty in-memory context store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{contexts: make(map[string]models.ConversationContext)}
}

// Load returns the stored context for the conversation, if any.
func (s *MemoryStore) Load(_ context.Context, conversationID string) (models.ConversationContext, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contexts[conversationID]
	return c, ok, nil
}

// Save stores the context, replacing any previous value.
func (s *MemoryStore) Save(_ context.Context, conversationID string, c models.ConversationContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contexts[conversationID] = c
	return nil
}

// Reset removes the conversation's context.
func (s *MemoryStore) Reset(_ context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contexts, conversationID)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close(context.Context) error { return nil }
