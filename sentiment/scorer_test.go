package sentiment

import (
	"errors"
	"fmt"
	"testing"
)

// fakeLexicon returns a scripted compound per text. Unknown texts score 0.
type fakeLexicon struct {
	compounds map[string]float64
	failOn    string
}

func (f fakeLexicon) PolarityScores(text string) (Polarity, error) {
	if f.failOn != "" && text == f.failOn {
		return Polarity{}, fmt.Errorf("lexicon blew up on %q", text)
	}
	c := f.compounds[text]
	return Polarity{Compound: c, Neutral: 1}, nil
}

// brokenLexicon reports an out-of-range compound.
type brokenLexicon struct {
	compound float64
}

func (b brokenLexicon) PolarityScores(string) (Polarity, error) {
	return Polarity{Compound: b.compound, Neutral: 1}, nil
}

func TestLabelForCompound_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		compound float64
		want     Label
	}{
		{0.05, LabelPositive},
		{0.06, LabelPositive},
		{1, LabelPositive},
		{0.049999, LabelNeutral},
		{0.04, LabelNeutral},
		{0, LabelNeutral},
		{-0.04, LabelNeutral},
		{-0.049999, LabelNeutral},
		{-0.05, LabelNegative},
		{-0.06, LabelNegative},
		{-1, LabelNegative},
	}
	for _, c := range cases {
		if got := LabelForCompound(c.compound); got != c.want {
			t.Fatalf("LabelForCompound(%v)=%q, want %q", c.compound, got, c.want)
		}
	}
}

func TestScorer_LabelsFromLexicon(t *testing.T) {
	t.Parallel()

	s := NewScorer(fakeLexicon{compounds: map[string]float64{
		"great": 0.7,
		"awful": -0.6,
		"meh":   0.01,
	}})

	sc, err := s.Score("great")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if sc.Label != LabelPositive || sc.Compound != 0.7 {
		t.Fatalf("score=%+v, want Positive/0.7", sc)
	}

	sc, err = s.Score("awful")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if sc.Label != LabelNegative {
		t.Fatalf("label=%q, want Negative", sc.Label)
	}

	sc, err = s.Score("meh")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if sc.Label != LabelNeutral {
		t.Fatalf("label=%q, want Neutral", sc.Label)
	}
}

func TestScorer_EmptyTextIsScoredNotRejected(t *testing.T) {
	t.Parallel()

	s := NewScorer(fakeLexicon{})
	sc, err := s.Score("")
	if err != nil {
		t.Fatalf("Score(\"\"): %v", err)
	}
	if sc.Label != LabelNeutral || sc.Compound != 0 {
		t.Fatalf("score=%+v, want Neutral/0", sc)
	}
}

func TestScorer_InvalidUTF8(t *testing.T) {
	t.Parallel()

	s := NewScorer(fakeLexicon{})
	_, err := s.Score("ok so far \xff\xfe")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
}

func TestScorer_EngineUnavailable(t *testing.T) {
	t.Parallel()

	// Nil lexicon.
	if _, err := NewScorer(nil).Score("hi"); !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("nil lexicon err=%v, want ErrEngineUnavailable", err)
	}

	// Lexicon failure propagates, never substituted with a default score.
	if _, err := NewScorer(fakeLexicon{failOn: "hi"}).Score("hi"); !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("failing lexicon err=%v, want ErrEngineUnavailable", err)
	}

	// Out-of-range compound is an engine fault, not a score.
	if _, err := NewScorer(brokenLexicon{compound: 1.5}).Score("hi"); !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("out-of-range err=%v, want ErrEngineUnavailable", err)
	}
}

func TestScorer_Deterministic(t *testing.T) {
	t.Parallel()

	s := NewScorer(fakeLexicon{compounds: map[string]float64{"same": 0.42}})
	first, err := s.Score("same")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	second, err := s.Score("same")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if first != second {
		t.Fatalf("scores differ: %+v vs %+v", first, second)
	}
}
