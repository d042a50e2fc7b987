package sentiment

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

var (
	// ErrInvalidInput marks text the scorer refuses to pass to the lexicon engine.
	ErrInvalidInput = errors.New("invalid input text")

	// ErrEngineUnavailable marks a lexicon engine that is missing, failed, or produced
	// out-of-range output. Scores are never fabricated in its place.
	ErrEngineUnavailable = errors.New("lexicon engine unavailable")
)

// Lexicon is the capability the scorer consumes: given text, return four normalized floats.
// Implementations live outside this package (see sentiment/vader) and are swappable without
// touching the analyzer.
type Lexicon interface {
	PolarityScores(text string) (Polarity, error)
}

// Scorer converts lexicon output into a labeled Score.
type Scorer struct {
	lex Lexicon
}

// NewScorer creates a Scorer backed by the given lexicon engine.
func NewScorer(lex Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// Score analyzes a single text. It is a pure function of its input: no history is consulted
// and no state is mutated. Empty text is scored like any other text (lexicon engines
// typically yield compound 0 for it, hence a Neutral label).
func (s *Scorer) Score(text string) (Score, error) {
	if s == nil || s.lex == nil {
		return Score{}, fmt.Errorf("Score: %w", ErrEngineUnavailable)
	}
	if !utf8.ValidString(text) {
		return Score{}, fmt.Errorf("Score: text is not valid UTF-8: %w", ErrInvalidInput)
	}

	p, err := s.lex.PolarityScores(text)
	if err != nil {
		return Score{}, fmt.Errorf("Score: %w: %w", ErrEngineUnavailable, err)
	}
	if err := validatePolarity(p); err != nil {
		return Score{}, fmt.Errorf("Score: %w: %w", ErrEngineUnavailable, err)
	}

	return Score{
		Compound: p.Compound,
		Positive: p.Positive,
		Neutral:  p.Neutral,
		Negative: p.Negative,
		Label:    LabelForCompound(p.Compound),
	}, nil
}

func validatePolarity(p Polarity) error {
	for _, v := range []float64{p.Compound, p.Positive, p.Neutral, p.Negative} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("polarity contains NaN/Inf")
		}
	}
	if p.Compound < -1 || p.Compound > 1 {
		return fmt.Errorf("compound %v outside [-1,1]", p.Compound)
	}
	return nil
}
