package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/legal-simplifier/internal/config"
	"github.com/jonathan/legal-simplifier/internal/pipeline"
	"github.com/jonathan/legal-simplifier/internal/simplify"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full document pipeline end-to-end",
	Long: `Orchestrates the entire process: ingestion -> cleaning -> readability -> simplification or summarization -> readability -> term annotation.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath        string
	runInput             string
	runInputURL          string
	runMode              string
	runLevel             string
	runMaxChunkChars     int
	runSummaryChunkChars int
	runOverlap           int
	runAPIKey            string
	runDatabaseURL       string
	runUseBrowser        bool
	runVerbose           bool
	runOutHTML           string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runInput, "input", "i", "", "Path to document text file (mutually exclusive with --input-url)")
	runCommand.Flags().StringVar(&runInputURL, "input-url", "", "URL to fetch the document from (mutually exclusive with --input)")
	runCommand.Flags().StringVarP(&runMode, "mode", "m", "simplify", "Pipeline mode: simplify or summarize")
	runCommand.Flags().StringVarP(&runLevel, "level", "l", "", "Simplification level: basic, intermediate, advanced")
	runCommand.Flags().IntVar(&runMaxChunkChars, "max-chunk-chars", 0, "Character budget per simplification chunk")
	runCommand.Flags().IntVar(&runSummaryChunkChars, "summary-chunk-chars", 0, "Character budget per summarization chunk")
	runCommand.Flags().IntVar(&runOverlap, "overlap", 1, "Sentences of overlap between chunks (0 or 1)")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for script-heavy sites (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCommand.Flags().StringVarP(&runOutHTML, "out", "o", "", "Path to write the annotated HTML output (optional)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for glossary overlay and artifact persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("input") {
		cfg.Input = runInput
	}
	if cmd.Flags().Changed("input-url") {
		cfg.InputURL = runInputURL
	}
	if cmd.Flags().Changed("level") {
		cfg.Level = runLevel
	}
	if cmd.Flags().Changed("max-chunk-chars") {
		cfg.MaxChunkChars = runMaxChunkChars
	}
	if cmd.Flags().Changed("summary-chunk-chars") {
		cfg.SummaryChunkChars = runSummaryChunkChars
	}
	if cmd.Flags().Changed("overlap") {
		cfg.Overlap = runOverlap
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		Level:             string(simplify.LevelIntermediate),
		MaxChunkChars:     simplify.DefaultChunkChars,
		SummaryChunkChars: 800,
		Overlap:           runOverlap,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Input == "" && cfg.InputURL == "" {
		return fmt.Errorf("either --input or --input-url must be provided (via flag or config)")
	}
	if cfg.Input != "" && cfg.InputURL != "" {
		return fmt.Errorf("--input and --input-url are mutually exclusive; provide only one")
	}

	// Step 5: API key handling
	apiKey, err := resolveAPIKey(cfg.APIKey)
	if err != nil {
		return err
	}

	// Step 6: Database URL handling (optional; glossary falls back to defaults)
	databaseURL := resolveDatabaseURL(cfg.DatabaseURL)

	client, err := newLLMClient(ctx, apiKey)
	if err != nil {
		return err
	}
	defer client.Close()

	opts := pipeline.RunOptions{
		InputPath:         cfg.Input,
		InputURL:          cfg.InputURL,
		Mode:              pipeline.Mode(runMode),
		Level:             simplify.Level(cfg.Level),
		MaxChunkChars:     cfg.MaxChunkChars,
		SummaryChunkChars: cfg.SummaryChunkChars,
		OverlapSentences:  cfg.Overlap,
		APIKey:            apiKey,
		DatabaseURL:       databaseURL,
		UseBrowser:        cfg.UseBrowser,
		Verbose:           cfg.Verbose,
	}

	result, err := pipeline.Run(ctx, client, opts)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n", result.Output)
	fmt.Printf("\nReadability: grade %.2f -> %.2f, ease %.2f -> %.2f\n",
		result.ReadabilityBefore.GradeLevel, result.ReadabilityAfter.GradeLevel,
		result.ReadabilityBefore.ReadingEase, result.ReadabilityAfter.ReadingEase)
	fmt.Printf("Glossary terms annotated: %d\n", len(result.Matches))

	if runOutHTML != "" {
		if err := writeOutputFile(runOutHTML, result.AnnotatedHTML); err != nil {
			return err
		}
		fmt.Printf("Annotated HTML: %s\n", runOutHTML)
	}

	return nil
}
