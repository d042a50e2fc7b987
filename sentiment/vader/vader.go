// Package vader adapts the govader lexicon engine to the sentiment.Lexicon capability.
//
// VADER is a lexicon/rule-based valence model tuned for conversational and social-media
// text, which is what a chat session feeds it. The lexicon itself is the library's; this
// package only maps its output shape.
package vader

import (
	"github.com/jonreiter/govader"

	"github.com/theimaginaryfoundation/mood-o-meter/sentiment"
)

// Engine is a sentiment.Lexicon backed by govader.
type Engine struct {
	sia *govader.SentimentIntensityAnalyzer
}

// New creates a ready-to-use Engine. Construction loads the lexicon once; the analyzer is
// reused across calls.
func New() *Engine {
	return &Engine{sia: govader.NewSentimentIntensityAnalyzer()}
}

// PolarityScores scores one text. govader never fails on valid input, so the error is
// always nil; the interface carries it for engines that can.
func (e *Engine) PolarityScores(text string) (sentiment.Polarity, error) {
	s := e.sia.PolarityScores(text)
	return sentiment.Polarity{
		Compound: s.Compound,
		Positive: s.Positive,
		Neutral:  s.Neutral,
		Negative: s.Negative,
	}, nil
}
