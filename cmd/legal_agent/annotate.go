package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/legal-simplifier/internal/db"
	"github.com/jonathan/legal-simplifier/internal/glossary"
	"github.com/jonathan/legal-simplifier/internal/observability"
	"github.com/jonathan/legal-simplifier/internal/preprocessing"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Annotate legal terms in a document with tooltips",
	Long:  "Find glossary terms in a document and wrap each occurrence in an HTML tooltip span. Uses the built-in glossary, overlaid with database entries when --db-url or DATABASE_URL is set. No API key needed.",
	RunE:  runAnnotate,
}

var (
	annotateInput       string
	annotateInputURL    string
	annotateOut         string
	annotateDatabaseURL string
	annotateUseBrowser  bool
	annotateVerbose     bool
)

func init() {
	annotateCmd.Flags().StringVarP(&annotateInput, "input", "i", "", "Path to document text file (mutually exclusive with --input-url)")
	annotateCmd.Flags().StringVar(&annotateInputURL, "input-url", "", "URL to fetch the document from (mutually exclusive with --input)")
	annotateCmd.Flags().StringVarP(&annotateOut, "out", "o", "", "Path to write the annotated HTML (defaults to stdout)")
	annotateCmd.Flags().StringVar(&annotateDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	annotateCmd.Flags().BoolVar(&annotateUseBrowser, "use-browser", false, "Use headless browser for script-heavy sites (requires Chrome)")
	annotateCmd.Flags().BoolVarP(&annotateVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	if annotateInput == "" && annotateInputURL == "" {
		return fmt.Errorf("either --input or --input-url must be provided")
	}
	if annotateInput != "" && annotateInputURL != "" {
		return fmt.Errorf("--input and --input-url are mutually exclusive; provide only one")
	}

	ctx := context.Background()
	raw, err := readDocument(ctx, annotateInput, annotateInputURL, annotateUseBrowser, annotateVerbose)
	if err != nil {
		return err
	}
	cleaned := preprocessing.Clean(raw)

	var store glossary.Store
	if databaseURL := resolveDatabaseURL(annotateDatabaseURL); databaseURL != "" {
		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to connect to database: %v\n", err)
			fmt.Fprintf(os.Stderr, "Continuing with the built-in glossary...\n")
		} else {
			defer database.Close()
			store = database
		}
	}

	terms := glossary.Merged(ctx, store)
	matches := glossary.Identify(cleaned, terms)
	annotated, err := glossary.Render(cleaned, matches)
	if err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}

	if annotateVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMatches(matches)
	}

	if annotateOut != "" {
		if err := writeOutputFile(annotateOut, annotated); err != nil {
			return err
		}
		fmt.Printf("Annotated %d terms. Output: %s\n", len(matches), annotateOut)
		return nil
	}

	fmt.Println(annotated)
	return nil
}
