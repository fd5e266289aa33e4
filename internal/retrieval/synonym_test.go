package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudesk/faqbot/internal/corpus"
)

func TestSynonymMatchVariant(t *testing.T) {
	entries := loadCorpus(t)
	table := corpus.BuildSynonymTable(entries)
	m := NewSynonymMatcher(entries, table)

	// "boarding" is not a keyword anywhere, but it maps to "hostel".
	faq, score := m.Match("boarding")
	require.NotNil(t, faq)
	assert.Equal(t, 7, faq.ID)
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestSynonymMatchDirectKeywords(t *testing.T) {
	entries := loadCorpus(t)
	m := NewSynonymMatcher(entries, corpus.BuildSynonymTable(entries))

	// payment, cost, price all map onto "fees", so coverage counts the
	// canonical too: 4 of 6 keywords.
	faq, score := m.Match("payment cost price")
	require.NotNil(t, faq)
	assert.Equal(t, 2, faq.ID)
	assert.InDelta(t, 4.0/6.0, score, 1e-9)
}

func TestSynonymMatchExpansionNeverHurts(t *testing.T) {
	entries := loadCorpus(t)
	m := NewSynonymMatcher(entries, corpus.BuildSynonymTable(entries))
	bare := NewSynonymMatcher(entries, nil)

	queries := []string{
		"boarding",
		"dormitory stay",
		"payment cost",
		"library gym",
		"asdkj qwop",
	}
	for _, q := range queries {
		_, withSyn := m.Match(q)
		_, withoutSyn := bare.Match(q)
		assert.GreaterOrEqual(t, withSyn, withoutSyn, "query %q", q)
	}
}

func TestSynonymMatchNoOverlap(t *testing.T) {
	entries := loadCorpus(t)
	m := NewSynonymMatcher(entries, corpus.BuildSynonymTable(entries))

	faq, score := m.Match("asdkj qwop")
	assert.Nil(t, faq)
	assert.Equal(t, 0.0, score)
}

func TestSynonymMatchEmptyQuery(t *testing.T) {
	entries := loadCorpus(t)
	m := NewSynonymMatcher(entries, corpus.BuildSynonymTable(entries))

	faq, score := m.Match("")
	assert.Nil(t, faq)
	assert.Equal(t, 0.0, score)
}
