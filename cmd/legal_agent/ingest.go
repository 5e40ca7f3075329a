package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/legal-simplifier/internal/preprocessing"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest and clean a document without transforming it",
	Long:  "Fetch a document from a text file or URL, clean it, and output the normalized text. Useful for inspecting what the pipeline would operate on. No API key needed.",
	RunE:  runIngest,
}

var (
	ingestInput      string
	ingestInputURL   string
	ingestOut        string
	ingestUseBrowser bool
	ingestVerbose    bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestInput, "input", "i", "", "Path to document text file (mutually exclusive with --input-url)")
	ingestCmd.Flags().StringVar(&ingestInputURL, "input-url", "", "URL to fetch the document from (mutually exclusive with --input)")
	ingestCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Path to write the cleaned text (defaults to stdout)")
	ingestCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Use headless browser for script-heavy sites (requires Chrome)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestInput == "" && ingestInputURL == "" {
		return fmt.Errorf("either --input or --input-url must be provided")
	}
	if ingestInput != "" && ingestInputURL != "" {
		return fmt.Errorf("--input and --input-url are mutually exclusive; provide only one")
	}

	ctx := context.Background()
	raw, err := readDocument(ctx, ingestInput, ingestInputURL, ingestUseBrowser, ingestVerbose)
	if err != nil {
		return err
	}

	doc := preprocessing.Preprocess(raw, preprocessing.NewRuleSegmenter())
	if ingestVerbose {
		fmt.Printf("Words: %d  Sentences: %d\n", doc.WordCount, doc.SentenceCount)
	}

	if ingestOut != "" {
		if err := writeOutputFile(ingestOut, doc.CleanedText); err != nil {
			return err
		}
		fmt.Printf("Cleaned text: %s\n", ingestOut)
		return nil
	}

	fmt.Println(doc.CleanedText)
	return nil
}
