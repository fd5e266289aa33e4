package retrieval

import (
	"strings"

	"github.com/edudesk/faqbot/internal/models"
	"github.com/edudesk/faqbot/internal/nlp"
)

// SynonymMatcher scores FAQ entries by keyword-set coverage after expanding
// query tokens through the corpus synonym table.
type SynonymMatcher struct {
	entries  []models.FaqEntry
	synonyms map[string]string // variant -> canonical
	keywords []map[string]struct{}
}

// NewSynonymMatcher builds the matcher over the corpus and its flattened
// synonym table.
func NewSynonymMatcher(entries []models.FaqEntry, synonyms map[string]string) *SynonymMatcher {
	keywords := make([]map[string]struct{}, len(entries))
	for i, e := range entries {
		set := make(map[string]struct{}, len(e.Keywords))
		for _, kw := range e.Keywords {
			set[strings.ToLower(kw)] = struct{}{}
		}
		keywords[i] = set
	}
	return &SynonymMatcher{entries: entries, synonyms: synonyms, keywords: keywords}
}

// Match returns the entry with the highest keyword coverage for the query,
// or (nil, 0) when nothing scores above zero. Expansion is additive: the
// canonical form of each known token is added alongside the original.
// Coverage = |expanded tokens ∩ keywords| / |keywords|, capped at 1. The
// corpus is scanned in order, so the first entry reaching the best score
// wins ties.
func (m *SynonymMatcher) Match(query string) (*models.FaqEntry, float64) {
	expanded := nlp.TokenSet(query)
	var canonicals []string
	for tok := range expanded {
		if canonical, ok := m.synonyms[tok]; ok {
			canonicals = append(canonicals, canonical)
		}
	}
	for _, c := range canonicals {
		expanded[c] = struct{}{}
	}

	var best *models.FaqEntry
	bestScore := 0.0
	for i := range m.entries {
		if len(m.keywords[i]) == 0 {
			continue
		}
		matched := 0
		for kw := range m.keywords[i] {
			if _, ok := expanded[kw]; ok {
				matched++
			}
		}
		score := float64(matched) / float64(len(m.keywords[i]))
		if score > 1 {
			score = 1
		}
		if score > bestScore {
			bestScore = score
			best = &m.entries[i]
		}
	}
	return best, bestScore
}
