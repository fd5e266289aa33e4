package dialog

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/edudesk/faqbot/internal/metrics"
	"github.com/edudesk/faqbot/internal/models"
	"github.com/edudesk/faqbot/internal/nlp"
	"github.com/edudesk/faqbot/internal/retrieval"
)

// emptyInputReply is returned for blank messages without touching context.
const emptyInputReply = "Please type a question!"

// defaultTopK is how many ranked candidates feed the response selector.
const defaultTopK = 3

// Engine runs one conversational turn end to end. All of its fields are
// built once and read-only afterwards, so a single Engine is shared across
// concurrent conversations.
type Engine struct {
	vectors  *retrieval.VectorSpace
	synonyms *retrieval.SynonymMatcher
	topK     int
	stats    *metrics.Collector
	logger   *slog.Logger
}

// NewEngine builds the retrieval models over the corpus and returns a ready
// engine. stats may be nil to disable metrics; a nil logger falls back to
// slog.Default().
func NewEngine(entries []models.FaqEntry, synonymTable map[string]string, topK int, stats *metrics.Collector, logger *slog.Logger) *Engine {
	if topK <= 0 {
		topK = defaultTopK
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		vectors:  retrieval.NewVectorSpace(entries),
		synonyms: retrieval.NewSynonymMatcher(entries, synonymTable),
		topK:     topK,
		stats:    stats,
		logger:   logger,
	}
}

// NewContext returns a fresh, empty conversation context.
func (e *Engine) NewContext() models.ConversationContext {
	return models.NewContext()
}

// HandleTurn processes one message against the given conversation context
// and returns the reply plus the updated context. The context advances by
// exactly one turn for every non-empty message, whichever tier fired; a
// blank message short-circuits with a fixed prompt and leaves the context
// untouched.
func (e *Engine) HandleTurn(raw string, ctx models.ConversationContext) models.TurnResult {
	start := time.Now()

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.TurnResult{Reply: emptyInputReply, Context: ctx}
	}

	if reply := greetingReply(trimmed); reply != "" {
		UpdateContext(&ctx, nlp.IntentGreeting, models.EntitySet{}, trimmed, nil)
		e.stats.RecordTier("greeting")
		e.stats.RecordTiming(metrics.OpTurn, time.Since(start))
		return models.TurnResult{
			Reply:      reply,
			Intent:     nlp.IntentGreeting,
			Confidence: 1.0,
			Context:    ctx,
		}
	}

	entities := nlp.ExtractEntities(trimmed)

	intentStart := time.Now()
	intent, intentConf := nlp.ClassifyIntent(trimmed)
	e.stats.RecordTiming(metrics.OpIntent, time.Since(intentStart))

	resolvedIntent, resolvedEntities := ResolveFollowup(ctx, trimmed, intent, entities, intentConf)

	retrieveStart := time.Now()
	ranked := e.vectors.Retrieve(trimmed, e.topK)
	e.stats.RecordTiming(metrics.OpRetrieval, time.Since(retrieveStart))

	synStart := time.Now()
	synFaq, synScore := e.synonyms.Match(trimmed)
	e.stats.RecordTiming(metrics.OpSynonym, time.Since(synStart))

	// Best of the two scorers wins. The reported confidence is always the
	// winning entry's own score, never the other scorer's.
	var winner *models.FaqEntry
	var score float64
	if len(ranked) > 0 {
		winner = ranked[0].Faq
		score = ranked[0].Score
	}
	if synFaq != nil && synScore > score {
		winner = synFaq
		score = synScore
	}

	e.logger.Debug("scored turn",
		"intent", resolvedIntent,
		"intent_confidence", intentConf,
		"score", score,
		"vector_score", topScore(ranked),
		"synonym_score", synScore,
	)

	result := models.TurnResult{
		Intent:     resolvedIntent,
		Entities:   resolvedEntities,
		Confidence: round3(score),
	}

	switch resp := selectResponse(winner, score, ranked, resolvedEntities).(type) {
	case directAnswer:
		result.Reply = resp.render()
		result.FaqID = &resp.faq.ID
		UpdateContext(&ctx, resolvedIntent, resolvedEntities, trimmed, &resp.faq.ID)
		e.stats.RecordTier("answer")
	case suggestionList:
		result.Reply = resp.render()
		result.FallbackType = models.FallbackSuggestion
		result.Suggestions = resp.items
		UpdateContext(&ctx, resolvedIntent, resolvedEntities, trimmed, nil)
		e.stats.RecordTier(string(models.FallbackSuggestion))
	case clarification:
		result.Reply = resp.render()
		result.FallbackType = models.FallbackClarification
		UpdateContext(&ctx, resolvedIntent, resolvedEntities, trimmed, nil)
		e.stats.RecordTier(string(models.FallbackClarification))
	case handover:
		result.Reply = resp.render()
		result.FallbackType = models.FallbackHandover
		UpdateContext(&ctx, resolvedIntent, resolvedEntities, trimmed, nil)
		e.stats.RecordTier(string(models.FallbackHandover))
	}

	result.Context = ctx
	e.stats.RecordTiming(metrics.OpTurn, time.Since(start))
	return result
}

func topScore(ranked []models.ScoredFaq) float64 {
	if len(ranked) == 0 {
		return 0
	}
	return ranked[0].Score
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
