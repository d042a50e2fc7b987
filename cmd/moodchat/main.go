package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/theimaginaryfoundation/mood-o-meter/chat"
	"github.com/theimaginaryfoundation/mood-o-meter/sentiment"
	"github.com/theimaginaryfoundation/mood-o-meter/sentiment/vader"
	"github.com/theimaginaryfoundation/mood-o-meter/transcript"
)

func main() {
	_ = godotenv.Load()

	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(cfg Config) error {
	st := newStyles(cfg.NoColor)

	scorer := sentiment.NewScorer(vader.New())
	responder := buildResponder(cfg)
	session := chat.NewSession(scorer, responder, clockwork.NewRealClock())

	renderWelcome(os.Stdout, st)

	showScores := cfg.ShowScores
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

loop:
	for {
		fmt.Print(st.Prompt.Render("You: "))
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		switch strings.ToLower(text) {
		case "quit", "exit":
			break loop
		case "toggle":
			showScores = !showScores
			if showScores {
				fmt.Println(st.Dim.Render("Sentiment scores on."))
			} else {
				fmt.Println(st.Dim.Render("Sentiment scores off."))
			}
			continue
		case "reset":
			session.Reset()
			fmt.Println(st.Dim.Render("Conversation cleared."))
			continue
		case "report":
			if err := showReport(st, session); err != nil {
				fmt.Fprintln(os.Stderr, st.Error.Render(err.Error()))
			}
			continue
		}

		reply, score, err := session.Process(ctx, text)
		if err != nil {
			if errors.Is(err, sentiment.ErrInvalidInput) {
				fmt.Println(st.Error.Render("That message could not be read; please try again."))
				continue
			}
			return fmt.Errorf("process message: %w", err)
		}
		if showScores {
			renderScoreLine(os.Stdout, st, score)
		}
		renderBotReply(os.Stdout, st, reply)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Println(st.Bot.Render("Bot: Goodbye!"))
	if err := showReport(st, session); err != nil {
		return err
	}
	return saveArtifacts(cfg, session)
}

func showReport(st styles, session *chat.Session) error {
	rep, err := session.Analysis()
	if err != nil {
		return fmt.Errorf("analyze conversation: %w", err)
	}
	renderReport(os.Stdout, st, rep, session.Turns())
	return nil
}

func saveArtifacts(cfg Config, session *chat.Session) error {
	if cfg.TranscriptPath == "" && cfg.ReportPath == "" {
		return nil
	}
	tr := transcript.FromSession(session)
	if cfg.TranscriptPath != "" {
		if err := transcript.Write(cfg.TranscriptPath, tr, true, cfg.Overwrite); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote transcript %s\n", cfg.TranscriptPath)
	}
	if cfg.ReportPath != "" {
		rep, err := session.Analysis()
		if err != nil {
			return fmt.Errorf("analyze conversation: %w", err)
		}
		if err := transcript.WriteReport(cfg.ReportPath, tr, rep, cfg.Overwrite); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote report %s\n", cfg.ReportPath)
	}
	return nil
}

func buildResponder(cfg Config) chat.Responder {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	base := chat.NewTemplateResponder(rand.New(rand.NewSource(seed)))
	if !cfg.UseModel {
		return base
	}
	client := openai.NewClient(option.WithAPIKey(cfg.APIKey))
	return chat.NewModelResponder(&client, cfg.Model, base)
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)
	fs.StringVar(&cfg.TranscriptPath, "transcript", "", "Optional path to write the conversation transcript JSON on exit")
	fs.StringVar(&cfg.ReportPath, "report", "", "Optional path to write a markdown sentiment report on exit")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite existing transcript/report files")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.ShowScores, "scores", cfg.ShowScores, "Show per-message sentiment scores (toggle at runtime with 'toggle')")
	fs.BoolVar(&cfg.UseModel, "llm", false, "Rephrase canned replies with an OpenAI model")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "OpenAI model for reply rephrasing (with -llm)")
	fs.StringVar(&cfg.APIKey, "api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Random seed for template selection (0 = time-based)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return cfg, nil
}
