package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/legal-simplifier/internal/observability"
	"github.com/jonathan/legal-simplifier/internal/preprocessing"
	"github.com/jonathan/legal-simplifier/internal/readability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score the readability of a document",
	Long:  "Clean a document and compute its readability scores: Flesch-Kincaid grade, Gunning Fog, Flesch Reading Ease, SMOG, ARI, and Coleman-Liau. No API key needed.",
	RunE:  runAnalyze,
}

var (
	analyzeInput      string
	analyzeInputURL   string
	analyzeJSON       bool
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Path to document text file (mutually exclusive with --input-url)")
	analyzeCmd.Flags().StringVar(&analyzeInputURL, "input-url", "", "URL to fetch the document from (mutually exclusive with --input)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for script-heavy sites (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeInput == "" && analyzeInputURL == "" {
		return fmt.Errorf("either --input or --input-url must be provided")
	}
	if analyzeInput != "" && analyzeInputURL != "" {
		return fmt.Errorf("--input and --input-url are mutually exclusive; provide only one")
	}

	ctx := context.Background()
	raw, err := readDocument(ctx, analyzeInput, analyzeInputURL, analyzeUseBrowser, analyzeVerbose)
	if err != nil {
		return err
	}

	doc := preprocessing.Preprocess(raw, preprocessing.NewRuleSegmenter())
	report := readability.Analyze(doc.CleanedText)

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	fmt.Printf("Words: %d  Sentences: %d\n", doc.WordCount, doc.SentenceCount)
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReadabilityReport("READABILITY REPORT", &report)
	return nil
}
