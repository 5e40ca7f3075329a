package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/legal-simplifier/internal/preprocessing"
	"github.com/jonathan/legal-simplifier/internal/simplify"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify",
	Short: "Simplify a legal document into plain language",
	Long:  "Simplify a legal document from a text file or URL. Long documents are split into sentence-aligned chunks before the model sees them.",
	RunE:  runSimplify,
}

var (
	simplifyInput      string
	simplifyInputURL   string
	simplifyLevel      string
	simplifyChunkChars int
	simplifyOverlap    int
	simplifyAPIKey     string
	simplifyUseBrowser bool
	simplifyVerbose    bool
)

func init() {
	simplifyCmd.Flags().StringVarP(&simplifyInput, "input", "i", "", "Path to document text file (mutually exclusive with --input-url)")
	simplifyCmd.Flags().StringVar(&simplifyInputURL, "input-url", "", "URL to fetch the document from (mutually exclusive with --input)")
	simplifyCmd.Flags().StringVarP(&simplifyLevel, "level", "l", string(simplify.LevelIntermediate), "Simplification level: basic, intermediate, advanced")
	simplifyCmd.Flags().IntVar(&simplifyChunkChars, "max-chunk-chars", simplify.DefaultChunkChars, "Character budget per chunk")
	simplifyCmd.Flags().IntVar(&simplifyOverlap, "overlap", 1, "Sentences of overlap between chunks (0 or 1)")
	simplifyCmd.Flags().StringVar(&simplifyAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	simplifyCmd.Flags().BoolVar(&simplifyUseBrowser, "use-browser", false, "Use headless browser for script-heavy sites (requires Chrome)")
	simplifyCmd.Flags().BoolVarP(&simplifyVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(simplifyCmd)
}

func runSimplify(cmd *cobra.Command, args []string) error {
	if simplifyInput == "" && simplifyInputURL == "" {
		return fmt.Errorf("either --input or --input-url must be provided")
	}
	if simplifyInput != "" && simplifyInputURL != "" {
		return fmt.Errorf("--input and --input-url are mutually exclusive; provide only one")
	}

	level := simplify.Level(simplifyLevel)
	if !level.Valid() {
		return fmt.Errorf("unknown level %q; expected basic, intermediate, or advanced", simplifyLevel)
	}

	apiKey, err := resolveAPIKey(simplifyAPIKey)
	if err != nil {
		return err
	}

	ctx := context.Background()
	raw, err := readDocument(ctx, simplifyInput, simplifyInputURL, simplifyUseBrowser, simplifyVerbose)
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

	output, err := simplify.LongText(ctx, client, cleaned, seg, simplify.Options{
		Level:            level,
		MaxChunkChars:    simplifyChunkChars,
		OverlapSentences: simplifyOverlap,
	})
	if err != nil {
		return fmt.Errorf("simplification failed: %w", err)
	}

	fmt.Println(output)
	return nil
}
