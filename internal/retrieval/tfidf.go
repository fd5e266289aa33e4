// Package retrieval ranks FAQ corpus entries against free-text queries.
// It provides two independent scorers: a TF-IDF vector-space model and a
// synonym-expanded keyword matcher. Both are built once over the corpus at
// startup and are safe for concurrent use.
package retrieval

import (
	"math"
	"sort"
	"strings"

	"github.com/edudesk/faqbot/internal/models"
	"github.com/edudesk/faqbot/internal/nlp"
)

// VectorSpace is a TF-IDF model over the FAQ corpus. Each document is the
// normalized text of an entry's question plus its keywords. Vocabulary and
// IDF values are fixed at construction.
type VectorSpace struct {
	entries    []models.FaqEntry
	vocabulary map[string]int
	idf        []float64
	docVectors [][]float64 // one L2-normalized vector per entry
}

// NewVectorSpace builds the TF-IDF model over the given corpus.
func NewVectorSpace(entries []models.FaqEntry) *VectorSpace {
	docs := make([][]string, len(entries))
	df := make(map[string]int)
	for i, e := range entries {
		docs[i] = nlp.Normalize(e.Question + " " + strings.Join(e.Keywords, " "))
		seen := make(map[string]struct{})
		for _, tok := range docs[i] {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	// Sorted vocabulary for a stable term -> index assignment.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vs := &VectorSpace{
		entries:    entries,
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(entries))
	for i, term := range terms {
		vs.vocabulary[term] = i
		// Smoothed IDF: ln(N/df) + 1 keeps terms present in every
		// document from vanishing entirely.
		vs.idf[i] = math.Log(n/float64(df[term])) + 1
	}

	vs.docVectors = make([][]float64, len(entries))
	for i, tokens := range docs {
		vs.docVectors[i] = vs.vectorize(tokens)
	}
	return vs
}

// vectorize builds the L2-normalized tf*idf vector for a token sequence.
// Tokens outside the vocabulary contribute nothing. An all-out-of-vocabulary
// input yields the zero vector.
func (vs *VectorSpace) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(vs.vocabulary))
	for _, tok := range tokens {
		if idx, ok := vs.vocabulary[tok]; ok {
			vec[idx]++
		}
	}
	var norm float64
	for i := range vec {
		if vec[i] > 0 {
			vec[i] *= vs.idf[i]
			norm += vec[i] * vec[i]
		}
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// Retrieve ranks the corpus by cosine similarity to the query and returns at
// most topK results, ordered by score descending with ties broken by corpus
// order. Scores are in [0,1]; a query with no known terms scores 0 for every
// entry. Retrieve never fails.
func (vs *VectorSpace) Retrieve(query string, topK int) []models.ScoredFaq {
	if topK <= 0 {
		topK = 3
	}
	queryVec := vs.vectorize(nlp.Normalize(query))

	results := make([]models.ScoredFaq, len(vs.entries))
	for i := range vs.entries {
		results[i] = models.ScoredFaq{
			Faq:   &vs.entries[i],
			Score: dot(queryVec, vs.docVectors[i]),
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// dot is the cosine similarity of two L2-normalized vectors. The zero
// vector simply yields 0, never a division by zero.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	// Guard against float drift pushing the score past 1.
	return math.Min(sum, 1)
}
