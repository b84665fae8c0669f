package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"debattle/internal/caseprep"
	"debattle/internal/config"
	"debattle/internal/judge"
	"debattle/internal/report"
	"debattle/internal/transcript"
)

const version = "1.0.0"

var (
	// Global flags
	verbose    bool
	configPath string

	// judge flags
	transcriptPath string
	debugLabels    bool

	// case flags
	caseLimit int

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "debattle",
	Short: "Debattle - deterministic debate judging",
	Long: `Debattle judges a tagged debate transcript with an LLM and enforces the
result into a bounded scorecard: clamped scores, normalized analysis,
rebalanced move labels, and a composed final statement.

It can also draft hypothetical debate cases seeded from public Australian
court judgment pages.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// judgeCmd evaluates one transcript end to end
var judgeCmd = &cobra.Command{
	Use:   "judge",
	Short: "Judge a debate transcript",
	Long: `Evaluates a transcript of [MM:SS AFF-Name] / [MM:SS NEG-Name] tagged lines.
Transcripts with too little substantive content receive the canonical
zero-score verdict without a model call.

Without --transcript a small built-in demo round is judged.`,
	RunE: runJudge,
}

// caseCmd generates a hypothetical debate case
var caseCmd = &cobra.Command{
	Use:   "case [area]",
	Short: "Generate a hypothetical debate case",
	Long: `Fetches recent judgment summaries for the given area (constitutional,
business, or criminal) and asks the model to invent a short hypothetical
case inspired by their themes.`,
	Args: cobra.ExactArgs(1),
	RunE: runCase,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("debattle %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")

	judgeCmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "Path to transcript file (default: built-in demo)")
	judgeCmd.Flags().BoolVar(&debugLabels, "debug", false, "Print per-side move label counts")

	caseCmd.Flags().IntVar(&caseLimit, "sources", 0, "Maximum source extracts to fetch (default from config)")

	rootCmd.AddCommand(judgeCmd)
	rootCmd.AddCommand(caseCmd)
	rootCmd.AddCommand(versionCmd)
}

func runJudge(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	text := judge.DemoTranscript
	if transcriptPath != "" {
		data, err := os.ReadFile(transcriptPath)
		if err != nil {
			return fmt.Errorf("failed to read transcript: %w", err)
		}
		text = string(data)
	}

	ctx := cmd.Context()
	client, err := newModelClient(ctx, cfg)
	if err != nil {
		return err
	}

	j := judge.New(client, transcript.GateConfig{
		MinSpeechLines:  cfg.Gate.MinSpeechLines,
		MinPayloadChars: cfg.Gate.MinPayloadChars,
	}, logger)

	v, err := j.Evaluate(ctx, text)
	if err != nil {
		return err
	}

	if debugLabels {
		printLabelCounts(v)
	}
	return report.Write(os.Stdout, v)
}

// printLabelCounts writes the per-side move label distribution, useful when
// checking how the rebalancer settled a round.
func printLabelCounts(v *judge.Verdict) {
	for _, side := range []judge.Side{judge.SideAffirmative, judge.SideNegative} {
		counts := map[judge.Label]int{}
		for _, m := range v.SideAnalysisFor(side).NotableMoves {
			counts[m.Label]++
		}
		fmt.Printf("[debug] %s labels:", side)
		for _, l := range []judge.Label{judge.LabelBrilliant, judge.LabelGreat, judge.LabelGood, judge.LabelInaccuracy, judge.LabelBlunder} {
			if counts[l] > 0 {
				fmt.Printf(" %s=%d", l, counts[l])
			}
		}
		fmt.Println()
	}
}

func runCase(cmd *cobra.Command, args []string) error {
	area, err := caseprep.ParseArea(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	limit := caseLimit
	if limit <= 0 {
		limit = cfg.CasePrep.MaxExtracts
	}

	ctx := cmd.Context()
	fetcher := caseprep.NewFetcher(cfg.CasePrep.TimeoutDuration(), logger)
	extracts, err := fetcher.Extracts(ctx, area, limit)
	if err != nil {
		return err
	}

	client, err := newModelClient(ctx, cfg)
	if err != nil {
		return err
	}

	c, err := caseprep.NewGenerator(client, logger).Generate(ctx, area, extracts)
	if err != nil {
		return err
	}

	fmt.Println(c.Body)
	fmt.Println("\nSources:")
	for _, s := range c.Sources {
		fmt.Printf("  - %s (%s)\n", s.Title, s.URL)
	}
	return nil
}

// newModelClient builds the configured provider's client.
func newModelClient(ctx context.Context, cfg *config.Config) (judge.ModelClient, error) {
	switch cfg.LLM.Provider {
	case "", "ollama":
		return judge.NewOllamaClient(cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.TimeoutDuration()), nil
	case "gemini":
		return judge.NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
	}
	return nil, fmt.Errorf("unknown LLM provider %q (want ollama or gemini)", cfg.LLM.Provider)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
