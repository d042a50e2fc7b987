package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/theimaginaryfoundation/mood-o-meter/sentiment"
)

// Session owns one conversation: an append-only turn sequence plus the collaborators that
// score messages and produce replies. A session is used from a single goroutine; there is
// no locking and no sharing across sessions.
type Session struct {
	id        uuid.UUID
	clock     clockwork.Clock
	startedAt time.Time

	scorer    *sentiment.Scorer
	analyzer  *sentiment.Analyzer
	responder Responder

	turns []sentiment.Turn
}

// NewSession creates an empty session. The clock stamps turns as they are recorded; inject
// a fake clock in tests.
func NewSession(scorer *sentiment.Scorer, responder Responder, clock clockwork.Clock) *Session {
	return &Session{
		id:        uuid.New(),
		clock:     clock,
		startedAt: clock.Now(),
		scorer:    scorer,
		analyzer:  sentiment.NewAnalyzer(scorer),
		responder: responder,
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) StartedAt() time.Time { return s.startedAt }

// Turns returns a copy of the conversation so far, in order.
func (s *Session) Turns() []sentiment.Turn {
	return append([]sentiment.Turn(nil), s.turns...)
}

// Len returns the number of recorded turns (user and bot).
func (s *Session) Len() int { return len(s.turns) }

// Process scores a user message, records the user turn, obtains a reply, and records the
// bot turn. Each message is handled fully before the next one; there is no pipelining.
// If scoring fails nothing is recorded, so the history never holds unscoreable turns.
func (s *Session) Process(ctx context.Context, text string) (string, sentiment.Score, error) {
	score, err := s.scorer.Score(text)
	if err != nil {
		return "", sentiment.Score{}, fmt.Errorf("Process: %w", err)
	}

	s.append(sentiment.RoleUser, text)

	reply, err := s.responder.Reply(ctx, text, score)
	if err != nil {
		return "", score, fmt.Errorf("Process: reply: %w", err)
	}
	s.append(sentiment.RoleBot, reply)

	return reply, score, nil
}

func (s *Session) append(role sentiment.Role, text string) {
	now := float64(s.clock.Now().UnixMilli()) / 1000
	s.turns = append(s.turns, sentiment.Turn{
		Role:       role,
		Text:       text,
		CreateTime: &now,
	})
}

// Analysis recomputes the conversation-level report from the current turns.
func (s *Session) Analysis() (sentiment.Report, error) {
	return s.analyzer.Analyze(s.turns)
}

// Reset atomically replaces the turn sequence with an empty one. The session keeps its
// identity and collaborators.
func (s *Session) Reset() {
	s.turns = nil
}
