package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/legal-simplifier/internal/observability"
	"github.com/jonathan/legal-simplifier/internal/preprocessing"
)

var chunkCmd = &cobra.Command{
	Use:   "chunk",
	Short: "Show how a document would be split into chunks",
	Long:  "Clean and segment a document, then split it into sentence-aligned chunks under a character budget. Useful for inspecting what the model would see. No API key needed.",
	RunE:  runChunk,
}

var (
	chunkInput    string
	chunkInputURL string
	chunkMaxChars int
	chunkOverlap  int
	chunkJSON     bool
)

func init() {
	chunkCmd.Flags().StringVarP(&chunkInput, "input", "i", "", "Path to document text file (mutually exclusive with --input-url)")
	chunkCmd.Flags().StringVar(&chunkInputURL, "input-url", "", "URL to fetch the document from (mutually exclusive with --input)")
	chunkCmd.Flags().IntVar(&chunkMaxChars, "max-chars", 400, "Character budget per chunk")
	chunkCmd.Flags().IntVar(&chunkOverlap, "overlap", 1, "Sentences of overlap between chunks (0 or 1)")
	chunkCmd.Flags().BoolVar(&chunkJSON, "json", false, "Output chunks as JSON")

	rootCmd.AddCommand(chunkCmd)
}

func runChunk(cmd *cobra.Command, args []string) error {
	if chunkInput == "" && chunkInputURL == "" {
		return fmt.Errorf("either --input or --input-url must be provided")
	}
	if chunkInput != "" && chunkInputURL != "" {
		return fmt.Errorf("--input and --input-url are mutually exclusive; provide only one")
	}

	ctx := context.Background()
	raw, err := readDocument(ctx, chunkInput, chunkInputURL, false, false)
	if err != nil {
		return err
	}

	doc := preprocessing.Preprocess(raw, preprocessing.NewRuleSegmenter())
	chunks, err := preprocessing.Split(doc.Sentences, chunkMaxChars, chunkOverlap)
	if err != nil {
		return err
	}

	if chunkJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(chunks)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintChunks(chunks)
	return nil
}
