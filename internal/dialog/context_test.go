package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edudesk/faqbot/internal/models"
)

func TestUpdateContextAdvancesTurnCount(t *testing.T) {
	ctx := models.NewContext()

	faqID := 7
	UpdateContext(&ctx, "hostel", models.EntitySet{Year: "2"}, "hostel for 2nd year", &faqID)
	assert.Equal(t, 1, ctx.TurnCount)
	assert.Equal(t, "hostel", ctx.LastIntent)
	assert.Equal(t, "2", ctx.LastEntities.Year)
	assert.Equal(t, &faqID, ctx.LastFaqID)

	UpdateContext(&ctx, "general", models.EntitySet{Semester: "5"}, "sem 5", nil)
	assert.Equal(t, 2, ctx.TurnCount)
	// Old entities survive the merge; new ones are added.
	assert.Equal(t, "2", ctx.LastEntities.Year)
	assert.Equal(t, "5", ctx.LastEntities.Semester)
	assert.Nil(t, ctx.LastFaqID)
}

func TestResolveFollowupKeepsRememberedIntent(t *testing.T) {
	ctx := models.ConversationContext{
		LastIntent:   "hostel",
		LastEntities: models.EntitySet{Year: "2"},
		TurnCount:    1,
	}

	// Short referential query with a weak classification leans on history.
	intent, entities := ResolveFollowup(ctx, "what about that", "general", models.EntitySet{}, 0.2)
	assert.Equal(t, "hostel", intent)
	assert.Equal(t, "2", entities.Year)
}

func TestResolveFollowupConfidentIntentWins(t *testing.T) {
	ctx := models.ConversationContext{
		LastIntent:   "hostel",
		LastEntities: models.EntitySet{Year: "2"},
		TurnCount:    1,
	}

	// Still a follow-up (referential word), but the fresh classification is
	// strong enough to replace the remembered intent. Entities still merge.
	intent, entities := ResolveFollowup(ctx, "and the fees", "admissions", models.EntitySet{}, 0.5)
	assert.Equal(t, "admissions", intent)
	assert.Equal(t, "2", entities.Year)
}

func TestResolveFollowupCurrentEntitiesOverride(t *testing.T) {
	ctx := models.ConversationContext{
		LastIntent:   "exams",
		LastEntities: models.EntitySet{Semester: "3", Year: "2"},
		TurnCount:    2,
	}

	intent, entities := ResolveFollowup(ctx, "what about sem 5", "general", models.EntitySet{Semester: "5"}, 0.1)
	assert.Equal(t, "exams", intent)
	assert.Equal(t, "5", entities.Semester)
	assert.Equal(t, "2", entities.Year)
}

func TestResolveFollowupFirstTurnNeverResolves(t *testing.T) {
	ctx := models.NewContext()

	intent, entities := ResolveFollowup(ctx, "what about it", "general", models.EntitySet{}, 0.0)
	assert.Equal(t, "general", intent)
	assert.True(t, entities.Empty())
}

func TestResolveFollowupLongQueryStandsAlone(t *testing.T) {
	ctx := models.ConversationContext{
		LastIntent:   "hostel",
		LastEntities: models.EntitySet{Year: "2"},
		TurnCount:    1,
	}

	// Five words is past the short-query cutoff.
	intent, entities := ResolveFollowup(ctx, "when does the next semester start", "exams", models.EntitySet{}, 0.1)
	assert.Equal(t, "exams", intent)
	assert.True(t, entities.Empty())
}

func TestResolveFollowupMissingEntitiesTriggers(t *testing.T) {
	ctx := models.ConversationContext{
		LastIntent:   "exams",
		LastEntities: models.EntitySet{Semester: "3"},
		TurnCount:    1,
	}

	// No referential word and a confident classification, but the query is
	// short and carries no entities while the previous turn did.
	intent, entities := ResolveFollowup(ctx, "fees due date", "admissions", models.EntitySet{}, 0.5)
	assert.Equal(t, "admissions", intent)
	assert.Equal(t, "3", entities.Semester)
}
