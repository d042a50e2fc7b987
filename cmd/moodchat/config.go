package main

import (
	"errors"
	"strings"
)

type Config struct {
	TranscriptPath string
	ReportPath     string
	Overwrite      bool
	NoColor        bool
	ShowScores     bool

	UseModel bool
	Model    string
	APIKey   string

	Seed int64
}

func (c Config) Validate() error {
	if c.UseModel && strings.TrimSpace(c.Model) == "" {
		return errors.New("missing -model (required with -llm)")
	}
	if c.UseModel && strings.TrimSpace(c.APIKey) == "" {
		return errors.New("missing API key: set -api-key or OPENAI_API_KEY (required with -llm)")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		ShowScores: true,
		Model:      "gpt-4o-mini",
	}
}
