package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudesk/faqbot/internal/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := s.Load(ctx, "conv-1")
	require.NoError(t, err)
	assert.False(t, ok)

	faqID := 7
	saved := models.ConversationContext{
		LastIntent:   "hostel",
		LastEntities: models.EntitySet{Semester: "5", CourseCodes: []string{"CS101"}},
		LastQuery:    "hostel for sem 5",
		LastFaqID:    &faqID,
		TurnCount:    2,
	}
	require.NoError(t, s.Save(ctx, "conv-1", saved))

	got, ok, err := s.Load(ctx, "conv-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, got)

	// Other conversations stay isolated.
	_, ok, err = s.Load(ctx, "conv-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreReset(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "conv-1", models.ConversationContext{TurnCount: 1}))
	require.NoError(t, s.Reset(ctx, "conv-1"))

	_, ok, err := s.Load(ctx, "conv-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Resetting an unknown conversation is not an error.
	require.NoError(t, s.Reset(ctx, "never-seen"))
}

func TestConversationContextJSONRoundTrip(t *testing.T) {
	faqID := 4
	in := models.ConversationContext{
		LastIntent:   "admissions",
		LastEntities: models.EntitySet{Year: "2", Dates: []string{"august"}},
		LastQuery:    "admission for 2nd year in august",
		LastFaqID:    &faqID,
		TurnCount:    3,
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out models.ConversationContext
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}
