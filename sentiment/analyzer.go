package sentiment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// moodShiftBand is the half/half mean-compound difference beyond which the conversation
// counts as improving or declining.
const moodShiftBand = 0.2

// Analyzer computes conversation-level sentiment reports. Each call recomputes from scratch
// over the turns it is given; there is no caching or incremental state.
type Analyzer struct {
	scorer *Scorer
}

// NewAnalyzer creates an Analyzer that scores user turns with the given scorer.
func NewAnalyzer(scorer *Scorer) *Analyzer {
	return &Analyzer{scorer: scorer}
}

// Analyze scores every user turn in order and aggregates the results.
//
// A conversation with no user turns yields the empty report: Neutral overall, zero mean,
// an empty (but non-nil) distribution, and no mood shift or per-message scores.
//
// If scoring any single message fails, the whole call fails; skipping a message would
// silently change the message count and corrupt the distribution totals.
func (a *Analyzer) Analyze(turns []Turn) (Report, error) {
	if a == nil || a.scorer == nil {
		return Report{}, fmt.Errorf("Analyze: %w", ErrEngineUnavailable)
	}

	var userTexts []string
	for _, t := range turns {
		if t.Role == RoleUser {
			userTexts = append(userTexts, t.Text)
		}
	}

	if len(userTexts) == 0 {
		return Report{
			OverallLabel: LabelNeutral,
			MeanCompound: 0,
			UserMessages: 0,
			Distribution: map[Label]int{},
		}, nil
	}

	scores := make([]Score, 0, len(userTexts))
	compounds := make([]float64, 0, len(userTexts))
	for i, text := range userTexts {
		sc, err := a.scorer.Score(text)
		if err != nil {
			return Report{}, fmt.Errorf("Analyze: score user message %d: %w", i, err)
		}
		scores = append(scores, sc)
		compounds = append(compounds, sc.Compound)
	}

	mean := stat.Mean(compounds, nil)

	distribution := map[Label]int{
		LabelPositive: 0,
		LabelNeutral:  0,
		LabelNegative: 0,
	}
	for _, sc := range scores {
		distribution[sc.Label]++
	}

	return Report{
		// Label from the unrounded mean; rounding is display precision only.
		OverallLabel: LabelForCompound(mean),
		MeanCompound: round3(mean),
		UserMessages: len(userTexts),
		Distribution: distribution,
		MoodShift:    detectMoodShift(compounds),
		Scores:       scores,
	}, nil
}

// detectMoodShift splits the compounds at floor(n/2) and compares half means. For n >= 2
// both halves are non-empty; for n == 2 each "half" is a single score.
func detectMoodShift(compounds []float64) MoodShift {
	n := len(compounds)
	if n < 2 {
		return MoodShiftInsufficient
	}

	mid := n / 2
	firstAvg := stat.Mean(compounds[:mid], nil)
	secondAvg := stat.Mean(compounds[mid:], nil)

	diff := secondAvg - firstAvg
	switch {
	case diff > moodShiftBand:
		return MoodShiftImproving
	case diff < -moodShiftBand:
		return MoodShiftDeclining
	default:
		return MoodShiftStable
	}
}

// round3 rounds to 3 decimal places, halves away from zero (math.Round semantics).
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
