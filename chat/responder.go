package chat

import (
	"context"
	"math/rand"
	"strings"
	"unicode"

	"github.com/theimaginaryfoundation/mood-o-meter/sentiment"
)

// Responder turns a user message and its sentiment score into a reply string.
// It sees the score and nothing else of the aggregation internals.
type Responder interface {
	Reply(ctx context.Context, text string, score sentiment.Score) (string, error)
}

// TemplateResponder selects a canned reply: keyword intents first, then a reply drawn from
// the catalog matching the message's sentiment label.
type TemplateResponder struct {
	rng *rand.Rand
}

// NewTemplateResponder creates a TemplateResponder picking among equivalent templates with
// the given source. Pass a seeded source for deterministic replies in tests.
func NewTemplateResponder(rng *rand.Rand) *TemplateResponder {
	return &TemplateResponder{rng: rng}
}

// Reply never fails; the catalogs cover all labels.
func (r *TemplateResponder) Reply(_ context.Context, text string, score sentiment.Score) (string, error) {
	lower := strings.ToLower(text)

	if matchesIntent(lower, greetingKeywords) {
		return r.pick(greetingTemplates), nil
	}
	if matchesIntent(lower, farewellKeywords) {
		return r.pick(farewellTemplates), nil
	}
	if matchesIntent(lower, problemKeywords) {
		return problemReply, nil
	}
	if matchesIntent(lower, pricingKeywords) {
		if score.Label == sentiment.LabelNegative {
			return pricingReplyNegative, nil
		}
		return pricingReplyDefault, nil
	}
	if matchesIntent(lower, thanksKeywords) {
		return thanksReply, nil
	}

	templates, ok := labelTemplates[score.Label]
	if !ok {
		templates = labelTemplates[sentiment.LabelNeutral]
	}
	return r.pick(templates), nil
}

func (r *TemplateResponder) pick(templates []string) string {
	return templates[r.rng.Intn(len(templates))]
}

// matchesIntent reports whether lowerText contains any keyword as a whole word, so "hi"
// does not fire inside "this". Multi-word keywords ("see you") match as phrases. Keywords
// are stored lowercase.
func matchesIntent(lowerText string, keywords []string) bool {
	words := strings.FieldsFunc(lowerText, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(lowerText, kw) {
				return true
			}
			continue
		}
		for _, w := range words {
			if w == kw {
				return true
			}
		}
	}
	return false
}
