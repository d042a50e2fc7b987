package sentiment

// Role identifies the speaker of a conversation turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one message in a conversation, tagged by speaker role.
// Turns are append-only once recorded; a session reset replaces the whole sequence.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`

	// CreateTime is unix seconds, when known.
	CreateTime *float64 `json:"create_time,omitempty"`
}

// Label is the categorical sentiment of a text, derived from its compound score.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNeutral  Label = "Neutral"
	LabelNegative Label = "Negative"
)

// Compound score thresholds for label derivation.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// LabelForCompound maps a compound score in [-1,1] to a Label.
// compound >= 0.05 is Positive, compound <= -0.05 is Negative, everything between is Neutral.
func LabelForCompound(compound float64) Label {
	switch {
	case compound >= positiveThreshold:
		return LabelPositive
	case compound <= negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Polarity is the raw four-number output of a lexicon engine: a compound valence in [-1,1]
// plus positive/neutral/negative proportions in [0,1] summing to 1.
type Polarity struct {
	Compound float64
	Positive float64
	Neutral  float64
	Negative float64
}

// Score is the normalized sentiment of a single analyzed text.
type Score struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
	Label    Label   `json:"label"`
}

// MoodShift classifies the sentiment trend of a conversation by comparing the mean compound
// of the first half of user messages against the second half.
type MoodShift string

const (
	// MoodShiftNone is the zero value: no shift was computed (empty conversation).
	MoodShiftNone         MoodShift = ""
	MoodShiftInsufficient MoodShift = "insufficient"
	MoodShiftImproving    MoodShift = "improving"
	MoodShiftDeclining    MoodShift = "declining"
	MoodShiftStable       MoodShift = "stable"
)

// Describe returns a human-facing sentence for the mood shift.
func (m MoodShift) Describe() string {
	switch m {
	case MoodShiftInsufficient:
		return "Insufficient data"
	case MoodShiftImproving:
		return "Improving (conversation became more positive)"
	case MoodShiftDeclining:
		return "Declining (conversation became more negative)"
	case MoodShiftStable:
		return "Stable (consistent mood throughout)"
	default:
		return ""
	}
}

// Report is the conversation-level sentiment analysis over all user turns.
//
// For a conversation with no user messages, Distribution is an empty map and
// MoodShift/Scores are absent; they are never filled with synthesized defaults.
type Report struct {
	OverallLabel Label `json:"overall_sentiment"`

	// MeanCompound is the mean compound score of all user messages, rounded to 3 decimals.
	// The overall label is derived from the unrounded mean.
	MeanCompound float64 `json:"compound_score"`

	UserMessages int `json:"message_count"`

	// Distribution counts user messages per label. For non-empty conversations all three
	// labels are present, zero-valued where unseen; counts sum to UserMessages.
	Distribution map[Label]int `json:"sentiment_distribution"`

	MoodShift MoodShift `json:"mood_shift,omitempty"`

	// Scores holds one Score per user message, in conversation order.
	Scores []Score `json:"individual_scores,omitempty"`
}
