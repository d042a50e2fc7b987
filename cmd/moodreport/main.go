package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/theimaginaryfoundation/mood-o-meter/sentiment"
	"github.com/theimaginaryfoundation/mood-o-meter/sentiment/vader"
	"github.com/theimaginaryfoundation/mood-o-meter/transcript"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	paths, err := collectTranscriptFiles(cfg.InPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "no transcript *.json files found")
		os.Exit(2)
	}

	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("mkdir -out: %w", err).Error())
			os.Exit(1)
		}
	}

	analyzer := sentiment.NewAnalyzer(sentiment.NewScorer(vader.New()))

	failed := 0
	for i, p := range paths {
		if !cfg.Quiet {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", i+1, len(paths), filepath.Base(p))
		}
		if err := processTranscript(cfg, analyzer, p); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d transcripts failed\n", failed, len(paths))
		os.Exit(1)
	}
}

func processTranscript(cfg Config, analyzer *sentiment.Analyzer, path string) error {
	tr, err := transcript.Read(path)
	if err != nil {
		return err
	}
	rep, err := analyzer.Analyze(tr.Turns)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", path, err)
	}

	if cfg.JSONOut {
		line, err := json.Marshal(struct {
			ConversationID string `json:"conversation_id"`
			sentiment.Report
		}{ConversationID: tr.ConversationID, Report: rep})
		if err != nil {
			return fmt.Errorf("marshal report for %s: %w", path, err)
		}
		fmt.Println(string(line))
	} else {
		fmt.Println(summaryLine(tr, rep))
	}

	if cfg.OutDir != "" {
		outPath := filepath.Join(cfg.OutDir, reportName(path))
		if err := transcript.WriteReport(outPath, tr, rep, cfg.Overwrite); err != nil {
			return err
		}
	}
	return nil
}

func summaryLine(tr transcript.Transcript, rep sentiment.Report) string {
	line := fmt.Sprintf("%s  %-8s  mean=%+.3f  messages=%d", tr.ConversationID, rep.OverallLabel, rep.MeanCompound, rep.UserMessages)
	if rep.MoodShift != "" {
		line += "  shift=" + string(rep.MoodShift)
	}
	return line
}

func reportName(transcriptPath string) string {
	base := filepath.Base(transcriptPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".report.md"
}

func collectTranscriptFiles(inPath string) ([]string, error) {
	fi, err := os.Stat(inPath)
	if err != nil {
		return nil, fmt.Errorf("stat -in: %w", err)
	}
	if !fi.IsDir() {
		return []string{inPath}, nil
	}

	var files []string
	err = filepath.WalkDir(inPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(path), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk transcripts: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)
	fs.StringVar(&cfg.InPath, "in", cfg.InPath, "Transcript JSON file, or a directory searched recursively for *.json")
	fs.StringVar(&cfg.OutDir, "out", "", "Optional directory for per-conversation markdown reports")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite existing report files")
	fs.BoolVar(&cfg.JSONOut, "json", false, "Print one JSON report per line instead of summary lines")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Suppress per-file progress on stderr")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.InPath != "" {
		cfg.InPath = filepath.Clean(cfg.InPath)
	}
	if cfg.OutDir != "" {
		cfg.OutDir = filepath.Clean(cfg.OutDir)
	}
	return cfg, nil
}
