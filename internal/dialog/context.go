// Package dialog implements the conversational layer: follow-up resolution,
// confidence-tiered response selection, and the per-turn engine that wires
// the scoring components together.
package dialog

import (
	"strings"

	"github.com/edudesk/faqbot/internal/models"
)

const (
	// followupMaxTokens is the length (whitespace tokens) at or below which
	// a query counts as "short" for follow-up detection.
	followupMaxTokens = 4

	// followupLowConfidence marks an intent classification too weak to
	// stand on its own.
	followupLowConfidence = 0.3

	// intentKeepConfidence is the classification confidence above which the
	// current turn's intent overrides the remembered one in a follow-up.
	intentKeepConfidence = 0.4
)

// referentialWords is the closed class of words that point back at the
// previous turn ("what about it", "and the fees too").
var referentialWords = map[string]struct{}{
	"it": {}, "that": {}, "this": {}, "those": {}, "same": {},
	"also": {}, "what": {}, "about": {}, "and": {}, "too": {},
}

// ResolveFollowup decides whether the current query depends on the previous
// turn and, if so, merges the remembered intent and entities into it.
//
// A turn is a follow-up when there is history (turn count > 0) and the query
// is short combined with any of: a referential word, low classification
// confidence, or no new entities while the previous turn had some. On a
// follow-up the remembered intent wins unless the current classification is
// confident (> intentKeepConfidence), and remembered entities are merged in
// with current values overriding.
func ResolveFollowup(ctx models.ConversationContext, query, currentIntent string, currentEntities models.EntitySet, confidence float64) (string, models.EntitySet) {
	words := strings.Fields(strings.ToLower(query))
	isShort := len(words) <= followupMaxTokens
	isLowConf := confidence < followupLowConfidence
	hasReference := false
	for _, w := range words {
		if _, ok := referentialWords[w]; ok {
			hasReference = true
			break
		}
	}
	noNewEntities := currentEntities.Empty() && !ctx.LastEntities.Empty()

	isFollowup := ctx.TurnCount > 0 && isShort && (hasReference || isLowConf || noNewEntities)

	if isFollowup && ctx.LastIntent != "" {
		resolvedIntent := ctx.LastIntent
		if confidence > intentKeepConfidence {
			resolvedIntent = currentIntent
		}
		return resolvedIntent, ctx.LastEntities.Merge(currentEntities)
	}
	return currentIntent, currentEntities
}

// UpdateContext records the finished turn. It must run exactly once per
// turn, whichever response tier fired, so the cross-turn memory stays
// consistent. Entities merge with new values overriding; the turn count
// always advances by exactly one.
func UpdateContext(ctx *models.ConversationContext, intent string, entities models.EntitySet, query string, faqID *int) {
	ctx.LastIntent = intent
	ctx.LastEntities = ctx.LastEntities.Merge(entities)
	ctx.LastQuery = query
	ctx.LastFaqID = faqID
	ctx.TurnCount++
}
