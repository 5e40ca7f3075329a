package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/legal-simplifier/internal/preprocessing"
	"github.com/jonathan/legal-simplifier/internal/summarize"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a legal document",
	Long:  "Summarize a legal document from a text file or URL. Long documents are summarized chunk by chunk, then the partial summaries are combined.",
	RunE:  runSummarize,
}

var (
	summarizeInput      string
	summarizeInputURL   string
	summarizeChunkChars int
	summarizeAPIKey     string
	summarizeUseBrowser bool
	summarizeVerbose    bool
)

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeInput, "input", "i", "", "Path to document text file (mutually exclusive with --input-url)")
	summarizeCmd.Flags().StringVar(&summarizeInputURL, "input-url", "", "URL to fetch the document from (mutually exclusive with --input)")
	summarizeCmd.Flags().IntVar(&summarizeChunkChars, "max-chunk-chars", summarize.DefaultChunkChars, "Character budget per chunk")
	summarizeCmd.Flags().StringVar(&summarizeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	summarizeCmd.Flags().BoolVar(&summarizeUseBrowser, "use-browser", false, "Use headless browser for script-heavy sites (requires Chrome)")
	summarizeCmd.Flags().BoolVarP(&summarizeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	if summarizeInput == "" && summarizeInputURL == "" {
		return fmt.Errorf("either --input or --input-url must be provided")
	}
	if summarizeInput != "" && summarizeInputURL != "" {
		return fmt.Errorf("--input and --input-url are mutually exclusive; provide only one")
	}

	apiKey, err := resolveAPIKey(summarizeAPIKey)
	if err != nil {
		return err
	}

	ctx := context.Background()
	raw, err := readDocument(ctx, summarizeInput, summarizeInputURL, summarizeUseBrowser, summarizeVerbose)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx, apiKey)
	if err != nil {
		return err
	}
	defer client.Close()

	seg := preprocessing.NewRuleSegmenter()
	cleaned := preprocessing.Clean(raw)

	output, err := summarize.LongText(ctx, client, cleaned, seg, summarizeChunkChars)
	if err != nil {
		return fmt.Errorf("summarization failed: %w", err)
	}

	fmt.Println(output)
	return nil
}
