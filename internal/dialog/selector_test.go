package dialog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudesk/faqbot/internal/models"
)

func rankedFixture(scores ...float64) ([]models.ScoredFaq, []models.FaqEntry) {
	entries := make([]models.FaqEntry, len(scores))
	ranked := make([]models.ScoredFaq, len(scores))
	for i, s := range scores {
		entries[i] = models.FaqEntry{
			ID:       i + 1,
			Question: "question " + strings.Repeat("x", i+1),
			Answer:   "answer",
		}
		ranked[i] = models.ScoredFaq{Faq: &entries[i], Score: s}
	}
	return ranked, entries
}

func TestSelectResponseDirectAnswer(t *testing.T) {
	ranked, entries := rankedFixture(0.6, 0.2)

	resp := selectResponse(&entries[0], 0.6, ranked, models.EntitySet{})
	direct, ok := resp.(directAnswer)
	require.True(t, ok, "expected directAnswer, got %T", resp)
	assert.Equal(t, 1, direct.faq.ID)
	assert.Equal(t, "answer", direct.render())
}

func TestSelectResponseDirectAnswerWithEntityNotes(t *testing.T) {
	ranked, entries := rankedFixture(0.6)

	resp := selectResponse(&entries[0], 0.6, ranked, models.EntitySet{Semester: "5", Year: "2"})
	direct, ok := resp.(directAnswer)
	require.True(t, ok)

	reply := direct.render()
	assert.Contains(t, reply, "📌 Semester: 5")
	assert.Contains(t, reply, "📌 Year: 2")
}

func TestSelectResponseSuggestions(t *testing.T) {
	// 0.05 is below the keep floor and must not appear; at most three
	// survivors make the list.
	ranked, entries := rankedFixture(0.2, 0.1, 0.08, 0.05)

	resp := selectResponse(&entries[0], 0.2, ranked, models.EntitySet{})
	sugg, ok := resp.(suggestionList)
	require.True(t, ok, "expected suggestionList, got %T", resp)
	require.Len(t, sugg.items, 3)
	assert.Equal(t, 1, sugg.items[0].ID)
	assert.Equal(t, 3, sugg.items[2].ID)

	reply := sugg.render()
	assert.Contains(t, reply, "Did you mean")
	assert.Contains(t, reply, entries[0].Question)
}

func TestSelectResponseSuggestionsWithoutSurvivors(t *testing.T) {
	// The synonym matcher can win with a score in the suggestion band while
	// every vector candidate sits below the keep floor. An empty suggestion
	// list degrades to a clarification, never an empty "did you mean".
	ranked, _ := rankedFixture(0.05, 0.02)
	winner := models.FaqEntry{ID: 9, Question: "q", Answer: "a"}

	resp := selectResponse(&winner, 0.16, ranked, models.EntitySet{})
	assert.IsType(t, clarification{}, resp)
}

func TestSelectResponseClarification(t *testing.T) {
	ranked, entries := rankedFixture(0.1, 0.03)

	// 0.1 is under the suggestion band but over the clarification floor.
	resp := selectResponse(&entries[0], 0.1, ranked, models.EntitySet{})
	clar, ok := resp.(clarification)
	require.True(t, ok, "expected clarification, got %T", resp)
	assert.Contains(t, clar.render(), "rephrase")
}

func TestSelectResponseHandover(t *testing.T) {
	ranked, entries := rankedFixture(0.01)

	resp := selectResponse(&entries[0], 0.01, ranked, models.EntitySet{})
	hand, ok := resp.(handover)
	require.True(t, ok, "expected handover, got %T", resp)

	reply := hand.render()
	assert.Contains(t, reply, advisor.Email)
	assert.Contains(t, reply, advisor.Phone)
}

func TestGreetingReply(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"hi", true},
		{"Hi!", true},
		{"  HELLO?  ", true},
		{"good morning", true},
		{"thank you!!", true},
		{"hi there how are you", false},
		{"what are the fees", false},
		{"", false},
	}
	for _, tt := range tests {
		got := greetingReply(tt.input)
		if tt.want {
			assert.NotEmpty(t, got, "input %q", tt.input)
		} else {
			assert.Empty(t, got, "input %q", tt.input)
		}
	}
}
