package transcript

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theimaginaryfoundation/mood-o-meter/fileutils"
	"github.com/theimaginaryfoundation/mood-o-meter/sentiment"
)

// RenderReportMarkdown renders one conversation's sentiment report as a markdown section.
func RenderReportMarkdown(tr Transcript, rep sentiment.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Conversation `%s`\n\n", tr.ConversationID)
	if iso := startedAtISO8601(tr.StartedAt); iso != "" {
		fmt.Fprintf(&b, "- started_at: `%.3f` (`%s`)\n", *tr.StartedAt, iso)
	}
	fmt.Fprintf(&b, "- overall_sentiment: **%s**\n", rep.OverallLabel)
	fmt.Fprintf(&b, "- compound_score: `%.3f`\n", rep.MeanCompound)
	fmt.Fprintf(&b, "- message_count: `%d`\n", rep.UserMessages)
	b.WriteString("\n")

	if rep.UserMessages > 0 {
		b.WriteString("**Distribution**\n\n")
		for _, label := range []sentiment.Label{sentiment.LabelPositive, sentiment.LabelNeutral, sentiment.LabelNegative} {
			n := rep.Distribution[label]
			pct := float64(n) / float64(rep.UserMessages) * 100
			fmt.Fprintf(&b, "- %s: %d (%.1f%%)\n", label, n, pct)
		}
		b.WriteString("\n")
	}

	if rep.MoodShift != "" {
		fmt.Fprintf(&b, "**Mood shift**: %s\n\n", rep.MoodShift.Describe())
	}

	if len(rep.Scores) > 0 {
		b.WriteString("**Messages**\n\n")
		userTexts := userTexts(tr.Turns)
		for i, sc := range rep.Scores {
			text := ""
			if i < len(userTexts) {
				text = fileutils.Truncate(fileutils.SanitizeNewlines(userTexts[i]), 120)
			}
			fmt.Fprintf(&b, "%d. [%s %.3f] %s\n", i+1, sc.Label, sc.Compound, escapeMarkdownInline(text))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	return b.String()
}

// WriteReport writes a single-conversation markdown report.
func WriteReport(path string, tr Transcript, rep sentiment.Report, overwrite bool) error {
	if path == "" {
		return errors.New("WriteReport: path is empty")
	}
	if !overwrite && fileutils.FileExists(path) {
		return fmt.Errorf("WriteReport: file exists: %s", path)
	}
	md := "# Conversation Sentiment Report\n\n" + RenderReportMarkdown(tr, rep)
	if err := fileutils.WriteFileAtomicSameDir(path, []byte(md), 0o644); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}
	return nil
}

func userTexts(turns []sentiment.Turn) []string {
	var out []string
	for _, t := range turns {
		if t.Role == sentiment.RoleUser {
			out = append(out, t.Text)
		}
	}
	return out
}

func escapeMarkdownInline(s string) string {
	r := strings.NewReplacer("*", "\\*", "_", "\\_", "`", "\\`", "[", "\\[", "]", "\\]")
	return r.Replace(s)
}
