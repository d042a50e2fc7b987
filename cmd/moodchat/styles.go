package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theimaginaryfoundation/mood-o-meter/sentiment"
)

var (
	colorRed    = lipgloss.Color("#FF0000")
	colorGreen  = lipgloss.Color("#00FF00")
	colorYellow = lipgloss.Color("#FFFF00")
	colorCyan   = lipgloss.Color("#00FFFF")
	colorGray   = lipgloss.Color("#666666")
)

type styles struct {
	Title    lipgloss.Style
	Bot      lipgloss.Style
	Prompt   lipgloss.Style
	Dim      lipgloss.Style
	Error    lipgloss.Style
	Positive lipgloss.Style
	Neutral  lipgloss.Style
	Negative lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			Title:    plain,
			Bot:      plain,
			Prompt:   plain,
			Dim:      plain,
			Error:    plain,
			Positive: plain,
			Neutral:  plain,
			Negative: plain,
		}
	}
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		Bot:      lipgloss.NewStyle().Foreground(colorCyan),
		Prompt:   lipgloss.NewStyle().Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(colorGray),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(colorRed),
		Positive: lipgloss.NewStyle().Foreground(colorGreen),
		Neutral:  lipgloss.NewStyle().Foreground(colorYellow),
		Negative: lipgloss.NewStyle().Foreground(colorRed),
	}
}

func (s styles) ForLabel(label sentiment.Label) lipgloss.Style {
	switch label {
	case sentiment.LabelPositive:
		return s.Positive
	case sentiment.LabelNegative:
		return s.Negative
	default:
		return s.Neutral
	}
}
