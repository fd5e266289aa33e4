// Package corpus loads the embedded FAQ dataset and derives the read-only
// lookup structures built from it. Everything here is constructed once at
// startup and safe for unsynchronized concurrent reads afterwards.
package corpus

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/edudesk/faqbot/internal/models"
)

//go:embed faqs.yaml
var faqsYAML []byte

// Load parses the embedded FAQ corpus.
// Entry IDs must be unique; duplicate or missing IDs are a data error.
func Load() ([]models.FaqEntry, error) {
	var entries []models.FaqEntry
	if err := yaml.Unmarshal(faqsYAML, &entries); err != nil {
		return nil, fmt.Errorf("parse faq corpus: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("faq corpus is empty")
	}

	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		if e.ID <= 0 {
			return nil, fmt.Errorf("faq %q: missing id", e.Question)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate faq id %d", e.ID)
		}
		seen[e.ID] = true
	}
	return entries, nil
}

// BuildSynonymTable flattens every entry's synonym groups into a single
// variant -> canonical mapping, including canonical -> canonical identity
// entries.
func BuildSynonymTable(entries []models.FaqEntry) map[string]string {
	table := make(map[string]string)
	for _, e := range entries {
		for canonical, variants := range e.Synonyms {
			c := strings.ToLower(canonical)
			for _, v := range variants {
				table[strings.ToLower(v)] = c
			}
			table[c] = c
		}
	}
	return table
}
