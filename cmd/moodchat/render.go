package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/theimaginaryfoundation/mood-o-meter/fileutils"
	"github.com/theimaginaryfoundation/mood-o-meter/sentiment"
)

func renderWelcome(w io.Writer, st styles) {
	fmt.Fprintln(w, st.Title.Render("Mood-o-Meter support chat"))
	fmt.Fprintln(w, st.Dim.Render("Commands: 'quit' or 'exit' to leave, 'toggle' to show/hide scores,"))
	fmt.Fprintln(w, st.Dim.Render("'reset' to start over, 'report' to see the analysis so far."))
	fmt.Fprintln(w)
}

func renderScoreLine(w io.Writer, st styles, score sentiment.Score) {
	line := fmt.Sprintf("[%s %.3f]", score.Label, score.Compound)
	fmt.Fprintln(w, st.ForLabel(score.Label).Render(line))
}

func renderBotReply(w io.Writer, st styles, reply string) {
	fmt.Fprintf(w, "%s %s\n", st.Bot.Render("Bot:"), reply)
}

func renderReport(w io.Writer, st styles, rep sentiment.Report, turns []sentiment.Turn) {
	fmt.Fprintln(w, st.Title.Render("--- Conversation Analysis ---"))
	fmt.Fprintf(w, "Overall sentiment: %s\n", st.ForLabel(rep.OverallLabel).Render(string(rep.OverallLabel)))
	fmt.Fprintf(w, "Compound score:    %.3f\n", rep.MeanCompound)
	fmt.Fprintf(w, "Messages analyzed: %d\n", rep.UserMessages)

	if rep.UserMessages > 0 {
		fmt.Fprintln(w, "Distribution:")
		for _, label := range []sentiment.Label{sentiment.LabelPositive, sentiment.LabelNeutral, sentiment.LabelNegative} {
			n := rep.Distribution[label]
			pct := float64(n) / float64(rep.UserMessages) * 100
			bar := strings.Repeat("#", n)
			fmt.Fprintf(w, "  %-8s %3d (%5.1f%%) %s\n", label, n, pct, st.ForLabel(label).Render(bar))
		}
	}

	if rep.MoodShift != "" {
		fmt.Fprintf(w, "Mood shift: %s\n", rep.MoodShift.Describe())
	}

	if len(rep.Scores) > 0 {
		fmt.Fprintln(w, "Messages:")
		texts := userTexts(turns)
		for i, sc := range rep.Scores {
			text := ""
			if i < len(texts) {
				text = fileutils.Truncate(fileutils.SanitizeNewlines(texts[i]), 60)
			}
			tag := st.ForLabel(sc.Label).Render(fmt.Sprintf("[%s %.3f]", sc.Label, sc.Compound))
			fmt.Fprintf(w, "  %2d. %s %s\n", i+1, tag, text)
		}
	}
	fmt.Fprintln(w)
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
