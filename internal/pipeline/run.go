// Package pipeline provides the high-level orchestration for document
// simplification and summarization runs.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/legal-simplifier/internal/db"
	"github.com/jonathan/legal-simplifier/internal/glossary"
	"github.com/jonathan/legal-simplifier/internal/ingestion"
	"github.com/jonathan/legal-simplifier/internal/llm"
	"github.com/jonathan/legal-simplifier/internal/observability"
	"github.com/jonathan/legal-simplifier/internal/preprocessing"
	"github.com/jonathan/legal-simplifier/internal/readability"
	"github.com/jonathan/legal-simplifier/internal/simplify"
	"github.com/jonathan/legal-simplifier/internal/summarize"
	"github.com/jonathan/legal-simplifier/internal/types"
)

// Mode selects which generative transform the pipeline applies.
type Mode string

// Pipeline modes.
const (
	ModeSimplify  Mode = "simplify"
	ModeSummarize Mode = "summarize"
)

// Artifact step names recorded in the database.
const (
	StepCleaned           = "cleaned"
	StepReadabilityBefore = "readability_before"
	StepGenerated         = "generated"
	StepReadabilityAfter  = "readability_after"
	StepAnnotations       = "annotations"
	StepAnnotatedHTML     = "annotated_html"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	InputPath         string
	InputURL          string
	Mode              Mode
	Level             simplify.Level
	MaxChunkChars     int
	SummaryChunkChars int
	OverlapSentences  int
	APIKey            string
	DatabaseURL       string
	UseBrowser        bool
	Verbose           bool
	OnProgress        ProgressCallback
}

// Result bundles everything a run produces.
type Result struct {
	Source            string                  `json:"source"`
	Mode              Mode                    `json:"mode"`
	CleanedText       string                  `json:"cleaned_text"`
	Output            string                  `json:"output"`
	ReadabilityBefore types.ReadabilityReport `json:"readability_before"`
	ReadabilityAfter  types.ReadabilityReport `json:"readability_after"`
	Matches           []types.Match           `json:"matches"`
	AnnotatedHTML     string                  `json:"annotated_html"`
	RunID             uuid.UUID               `json:"run_id,omitempty"`
}

// Validate checks that the options describe a runnable pipeline.
func (opts *RunOptions) Validate() error {
	if opts.InputPath == "" && opts.InputURL == "" {
		return fmt.Errorf("%w: either an input path or an input URL is required", types.ErrInvalidConfiguration)
	}
	if opts.InputPath != "" && opts.InputURL != "" {
		return fmt.Errorf("%w: input path and input URL are mutually exclusive", types.ErrInvalidConfiguration)
	}
	switch opts.Mode {
	case ModeSimplify, ModeSummarize:
	default:
		return fmt.Errorf("%w: unknown mode %q", types.ErrInvalidConfiguration, opts.Mode)
	}
	if opts.Mode == ModeSimplify && opts.Level != "" && !opts.Level.Valid() {
		return fmt.Errorf("%w: unknown simplification level %q", types.ErrInvalidConfiguration, opts.Level)
	}
	if opts.APIKey == "" {
		return fmt.Errorf("%w: an API key is required", types.ErrInvalidConfiguration)
	}
	return nil
}

// source returns the human-readable origin of the input.
func (opts *RunOptions) source() string {
	if opts.InputURL != "" {
		return opts.InputURL
	}
	return opts.InputPath
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// Run orchestrates a full document run: ingest, clean, measure, transform,
// measure again, and annotate.
func Run(ctx context.Context, client llm.Client, opts RunOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	printer := observability.NewPrinter(os.Stdout)

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
			if err := database.Migrate(ctx); err != nil {
				fmt.Printf("Warning: Failed to migrate database: %v\n", err)
				database.Close()
				database = nil
			} else if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	// Step 1: Ingest document (from URL or file)
	var raw string
	var err error
	if opts.InputURL != "" {
		fmt.Printf("Step 1/5: Ingesting document from URL: %s...\n", opts.InputURL)
		raw, err = ingestion.FromURL(ctx, opts.InputURL, opts.UseBrowser, opts.Verbose)
		if err != nil {
			return nil, fmt.Errorf("document ingestion from URL failed: %w", err)
		}
	} else {
		fmt.Printf("Step 1/5: Ingesting document from file: %s...\n", opts.InputPath)
		raw, err = ingestion.FromFile(opts.InputPath)
		if err != nil {
			return nil, fmt.Errorf("document ingestion from file failed: %w", err)
		}
	}

	// Step 2: Clean and segment
	fmt.Printf("Step 2/5: Cleaning and segmenting text...\n")
	seg := preprocessing.NewRuleSegmenter()
	doc := preprocessing.Preprocess(raw, seg)
	if doc.CleanedText == "" {
		return nil, fmt.Errorf("%w: document is empty after cleaning", types.ErrInvalidInput)
	}
	emitProgress(&opts, StepCleaned,
		fmt.Sprintf("Cleaned document: %d words, %d sentences", doc.WordCount, doc.SentenceCount), nil)

	if database != nil {
		runID, err = database.CreateRun(ctx, opts.source(), string(opts.Mode))
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
			runID = uuid.Nil
		} else {
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
			}
			_ = database.SaveTextArtifact(ctx, runID, StepCleaned, doc.CleanedText)
		}
	}

	result := &Result{
		Source:      opts.source(),
		Mode:        opts.Mode,
		CleanedText: doc.CleanedText,
		RunID:       runID,
	}

	// Step 3: Readability of the original and the generative transform run
	// in parallel; neither needs the other.
	fmt.Printf("Step 3/5: Measuring readability and transforming text...\n")

	g, gCtx := errgroup.WithContext(ctx)
	var mu sync.Mutex

	g.Go(func() error {
		report := readability.Analyze(doc.CleanedText)
		mu.Lock()
		result.ReadabilityBefore = report
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		output, err := runTransform(gCtx, client, doc.CleanedText, seg, opts)
		if err != nil {
			return fmt.Errorf("%s failed: %w", opts.Mode, err)
		}
		mu.Lock()
		result.Output = output
		mu.Unlock()
		if opts.Verbose {
			printer.PrintStepTiming(string(opts.Mode), time.Since(start).Seconds())
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if database != nil && runID != uuid.Nil {
			_ = database.CompleteRun(ctx, runID, db.RunStatusFailed)
		}
		return nil, err
	}

	if opts.Verbose {
		printer.PrintReadabilityReport("ORIGINAL READABILITY", &result.ReadabilityBefore)
	}
	emitProgress(&opts, StepGenerated,
		fmt.Sprintf("Transformed document with mode %s", opts.Mode), nil)

	// Step 4: Readability of the transformed text
	fmt.Printf("Step 4/5: Measuring readability of the result...\n")
	result.ReadabilityAfter = readability.Analyze(result.Output)
	if opts.Verbose {
		printer.PrintReadabilityReport("RESULT READABILITY", &result.ReadabilityAfter)
	}

	// Step 5: Annotate glossary terms in the transformed text
	fmt.Printf("Step 5/5: Annotating legal terms...\n")
	var store glossary.Store
	if database != nil {
		store = database
	}
	terms := glossary.Merged(ctx, store)
	result.Matches = glossary.Identify(result.Output, terms)
	result.AnnotatedHTML, err = glossary.Render(result.Output, result.Matches)
	if err != nil {
		return nil, fmt.Errorf("annotating terms failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintMatches(result.Matches)
	}
	emitProgress(&opts, StepAnnotations,
		fmt.Sprintf("Found %d glossary terms", len(result.Matches)), result.Matches)

	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, StepReadabilityBefore, result.ReadabilityBefore)
		_ = database.SaveTextArtifact(ctx, runID, StepGenerated, result.Output)
		_ = database.SaveArtifact(ctx, runID, StepReadabilityAfter, result.ReadabilityAfter)
		_ = database.SaveArtifact(ctx, runID, StepAnnotations, result.Matches)
		_ = database.SaveTextArtifact(ctx, runID, StepAnnotatedHTML, result.AnnotatedHTML)
		_ = database.CompleteRun(ctx, runID, db.RunStatusCompleted)
	}

	fmt.Printf("Done!\n")
	return result, nil
}

// runTransform dispatches to the simplifier or summarizer based on mode.
func runTransform(ctx context.Context, client llm.Client, text string, seg preprocessing.Segmenter, opts RunOptions) (string, error) {
	switch opts.Mode {
	case ModeSummarize:
		chunkChars := opts.SummaryChunkChars
		if chunkChars <= 0 {
			chunkChars = summarize.DefaultChunkChars
		}
		return summarize.LongText(ctx, client, text, seg, chunkChars)
	default:
		simplifyOpts := simplify.DefaultOptions()
		if opts.Level != "" {
			simplifyOpts.Level = opts.Level
		}
		if opts.MaxChunkChars > 0 {
			simplifyOpts.MaxChunkChars = opts.MaxChunkChars
		}
		simplifyOpts.OverlapSentences = opts.OverlapSentences
		return simplify.LongText(ctx, client, text, seg, simplifyOpts)
	}
}

// RunAll processes several documents concurrently with a shared client.
// A failure in one document does not stop or discard the others; completed
// results are returned alongside the combined error.
func RunAll(ctx context.Context, client llm.Client, optsList []RunOptions) ([]*Result, error) {
	results := make([]*Result, len(optsList))
	errs := make([]error, len(optsList))

	var g errgroup.Group
	for i, opts := range optsList {
		i, opts := i, opts
		g.Go(func() error {
			result, err := Run(ctx, client, opts)
			if err != nil {
				errs[i] = fmt.Errorf("document %s: %w", opts.source(), err)
				return nil
			}
			results[i] = result
			return nil
		})
	}

	_ = g.Wait()
	return results, errors.Join(errs...)
}
