// Package transcript persists finished conversations and renders their sentiment reports.
// The JSON artifact keeps the turn sequence exactly as the session recorded it, so a batch
// run can recompute the same analysis later.
package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/theimaginaryfoundation/mood-o-meter/chat"
	"github.com/theimaginaryfoundation/mood-o-meter/fileutils"
	"github.com/theimaginaryfoundation/mood-o-meter/sentiment"
)

// Transcript is the on-disk form of one conversation.
type Transcript struct {
	ConversationID string           `json:"conversation_id"`
	StartedAt      *float64         `json:"started_at,omitempty"`
	Turns          []sentiment.Turn `json:"turns"`
}

// FromSession snapshots the session's current state.
func FromSession(s *chat.Session) Transcript {
	started := float64(s.StartedAt().UnixMilli()) / 1000
	return Transcript{
		ConversationID: s.ID().String(),
		StartedAt:      &started,
		Turns:          s.Turns(),
	}
}

// Write stores the transcript as JSON, atomically. Without overwrite an existing file is an
// error rather than a silent replacement.
func Write(path string, tr Transcript, pretty, overwrite bool) error {
	if path == "" {
		return errors.New("Write: path is empty")
	}
	if tr.ConversationID == "" {
		return errors.New("Write: transcript has no conversation id")
	}
	if !overwrite && fileutils.FileExists(path) {
		return fmt.Errorf("Write: file exists: %s", path)
	}
	if err := fileutils.WriteJSONFileAtomic(path, tr, pretty); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return nil
}

// Read loads a transcript JSON file.
func Read(path string) (Transcript, error) {
	if path == "" {
		return Transcript{}, errors.New("Read: path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Transcript{}, fmt.Errorf("Read: %w", err)
	}
	var tr Transcript
	if err := json.Unmarshal(b, &tr); err != nil {
		return Transcript{}, fmt.Errorf("Read: unmarshal %s: %w", path, err)
	}
	if tr.ConversationID == "" {
		return Transcript{}, fmt.Errorf("Read: %s has no conversation_id", path)
	}
	return tr, nil
}

func startedAtISO8601(startedAt *float64) string {
	if startedAt == nil || *startedAt <= 0 {
		return ""
	}
	ns := int64(math.Round(*startedAt * 1e9))
	return time.Unix(0, ns).UTC().Format(time.RFC3339)
}
