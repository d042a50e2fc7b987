package sentiment

import (
	"errors"
	"testing"
)

func analyzerWith(compounds map[string]float64) *Analyzer {
	return NewAnalyzer(NewScorer(fakeLexicon{compounds: compounds}))
}

func userTurns(texts ...string) []Turn {
	turns := make([]Turn, 0, len(texts))
	for _, txt := range texts {
		turns = append(turns, Turn{Role: RoleUser, Text: txt})
	}
	return turns
}

func TestAnalyze_EmptyConversation(t *testing.T) {
	t.Parallel()

	rep, err := analyzerWith(nil).Analyze(nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.OverallLabel != LabelNeutral {
		t.Fatalf("OverallLabel=%q, want Neutral", rep.OverallLabel)
	}
	if rep.MeanCompound != 0 || rep.UserMessages != 0 {
		t.Fatalf("mean=%v count=%d, want 0/0", rep.MeanCompound, rep.UserMessages)
	}
	if rep.Distribution == nil || len(rep.Distribution) != 0 {
		t.Fatalf("Distribution=%v, want empty non-nil map", rep.Distribution)
	}
	if rep.MoodShift != MoodShiftNone {
		t.Fatalf("MoodShift=%q, want absent", rep.MoodShift)
	}
	if rep.Scores != nil {
		t.Fatalf("Scores=%v, want absent", rep.Scores)
	}
}

func TestAnalyze_BotOnlyTurnsBehaveLikeEmpty(t *testing.T) {
	t.Parallel()

	turns := []Turn{
		{Role: RoleBot, Text: "Hello!"},
		{Role: RoleBot, Text: "Still here."},
		{Role: RoleBot, Text: "Anything else?"},
	}
	rep, err := analyzerWith(nil).Analyze(turns)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.UserMessages != 0 || len(rep.Distribution) != 0 || rep.MoodShift != MoodShiftNone || rep.Scores != nil {
		t.Fatalf("bot-only report=%+v, want empty report", rep)
	}
}

func TestAnalyze_DistributionAndOrder(t *testing.T) {
	t.Parallel()

	a := analyzerWith(map[string]float64{
		"love it":  0.8,
		"fine":     0.0,
		"hate it":  -0.7,
		"love too": 0.6,
	})
	turns := []Turn{
		{Role: RoleUser, Text: "love it"},
		{Role: RoleBot, Text: "Great!"},
		{Role: RoleUser, Text: "fine"},
		{Role: RoleUser, Text: "hate it"},
		{Role: RoleBot, Text: "Sorry to hear."},
		{Role: RoleUser, Text: "love too"},
	}

	rep, err := a.Analyze(turns)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.UserMessages != 4 {
		t.Fatalf("UserMessages=%d, want 4", rep.UserMessages)
	}
	if len(rep.Scores) != rep.UserMessages {
		t.Fatalf("len(Scores)=%d, want %d", len(rep.Scores), rep.UserMessages)
	}

	// Order preserved: user turns in conversation order.
	wantCompounds := []float64{0.8, 0.0, -0.7, 0.6}
	for i, sc := range rep.Scores {
		if sc.Compound != wantCompounds[i] {
			t.Fatalf("Scores[%d].Compound=%v, want %v", i, sc.Compound, wantCompounds[i])
		}
	}

	// All three label keys present; counts sum to the user message count.
	if len(rep.Distribution) != 3 {
		t.Fatalf("Distribution=%v, want all three labels present", rep.Distribution)
	}
	sum := 0
	for _, n := range rep.Distribution {
		sum += n
	}
	if sum != rep.UserMessages {
		t.Fatalf("distribution sum=%d, want %d", sum, rep.UserMessages)
	}
	if rep.Distribution[LabelPositive] != 2 || rep.Distribution[LabelNeutral] != 1 || rep.Distribution[LabelNegative] != 1 {
		t.Fatalf("Distribution=%v, want 2/1/1", rep.Distribution)
	}
}

// Go's math.Round rounds halves away from zero; that is the rounding MeanCompound uses.
func TestAnalyze_MeanRounding(t *testing.T) {
	t.Parallel()

	a := analyzerWith(map[string]float64{
		"a": 0.001,
		"b": 0.0,
	})
	rep, err := a.Analyze(userTurns("a", "b"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	// mean = 0.0005, half rounds away from zero to 0.001.
	if rep.MeanCompound != 0.001 {
		t.Fatalf("MeanCompound=%v, want 0.001", rep.MeanCompound)
	}
}

// The overall label comes from the unrounded mean: a mean just under the threshold stays
// Neutral even when display rounding would land it exactly on 0.05.
func TestAnalyze_LabelUsesUnroundedMean(t *testing.T) {
	t.Parallel()

	a := analyzerWith(map[string]float64{
		"x": 0.0495,
		"y": 0.0495,
	})
	rep, err := a.Analyze(userTurns("x", "y"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.MeanCompound != 0.05 {
		t.Fatalf("MeanCompound=%v, want rounded 0.05", rep.MeanCompound)
	}
	if rep.OverallLabel != LabelNeutral {
		t.Fatalf("OverallLabel=%q, want Neutral (threshold before rounding)", rep.OverallLabel)
	}
}

func TestAnalyze_MoodShift(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		compounds []float64
		want      MoodShift
	}{
		{"single message", []float64{0.9}, MoodShiftInsufficient},
		{"two messages improving", []float64{-0.8, 0.8}, MoodShiftImproving},
		{"two messages stable", []float64{0.1, 0.05}, MoodShiftStable},
		{"two messages declining", []float64{0.8, -0.8}, MoodShiftDeclining},
		{"odd count splits at floor", []float64{-0.9, 0.5, 0.5}, MoodShiftImproving},
		{"band edge is stable", []float64{0.0, 0.2}, MoodShiftStable},
	}

	for _, c := range cases {
		compounds := map[string]float64{}
		texts := make([]string, len(c.compounds))
		for i, v := range c.compounds {
			texts[i] = string(rune('a' + i))
			compounds[texts[i]] = v
		}

		rep, err := analyzerWith(compounds).Analyze(userTurns(texts...))
		if err != nil {
			t.Fatalf("%s: Analyze: %v", c.name, err)
		}
		if rep.MoodShift != c.want {
			t.Fatalf("%s: MoodShift=%q, want %q", c.name, rep.MoodShift, c.want)
		}
	}
}

func TestAnalyze_ScoringFailureFailsWholeCall(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer(NewScorer(fakeLexicon{failOn: "boom"}))
	_, err := a.Analyze(userTurns("fine", "boom", "also fine"))
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("err=%v, want ErrEngineUnavailable; partial reports must not be produced", err)
	}
}
