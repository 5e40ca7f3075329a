package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/legal-simplifier/internal/db"
	"github.com/jonathan/legal-simplifier/internal/schemas"
	"github.com/jonathan/legal-simplifier/internal/types"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Manage the legal term glossary",
	Long:  "Add, update, delete, list, search, and bulk-import glossary terms. Requires a PostgreSQL database via --db-url or DATABASE_URL.",
}

var glossaryDatabaseURL string

func init() {
	glossaryCmd.PersistentFlags().StringVar(&glossaryDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	glossaryCmd.AddCommand(glossaryAddCmd)
	glossaryCmd.AddCommand(glossaryUpdateCmd)
	glossaryCmd.AddCommand(glossaryDeleteCmd)
	glossaryCmd.AddCommand(glossaryListCmd)
	glossaryCmd.AddCommand(glossarySearchCmd)
	glossaryCmd.AddCommand(glossaryImportCmd)

	rootCmd.AddCommand(glossaryCmd)
}

// connectGlossaryDB connects and migrates the glossary database.
func connectGlossaryDB(ctx context.Context) (*db.DB, error) {
	databaseURL := resolveDatabaseURL(glossaryDatabaseURL)
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

var (
	glossaryTerm        string
	glossaryExplanation string
	glossaryCategory    string
)

var glossaryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a glossary term",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := connectGlossaryDB(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		entry, err := database.AddTerm(ctx, types.AddTermRequest{
			Term:        glossaryTerm,
			Explanation: glossaryExplanation,
			Category:    glossaryCategory,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added term %q (%s)\n", entry.Term, entry.ID)
		return nil
	},
}

var glossaryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a glossary term's explanation or category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid term id: %w", err)
		}

		req := types.UpdateTermRequest{}
		if cmd.Flags().Changed("explanation") {
			req.Explanation = &glossaryExplanation
		}
		if cmd.Flags().Changed("category") {
			req.Category = &glossaryCategory
		}
		if req.Explanation == nil && req.Category == nil {
			return fmt.Errorf("provide --explanation or --category to update")
		}

		ctx := context.Background()
		database, err := connectGlossaryDB(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		entry, err := database.UpdateTerm(ctx, id, req)
		if err != nil {
			return err
		}

		fmt.Printf("Updated term %q (%s)\n", entry.Term, entry.ID)
		return nil
	},
}

var glossaryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a glossary term",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid term id: %w", err)
		}

		ctx := context.Background()
		database, err := connectGlossaryDB(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.DeleteTerm(ctx, id); err != nil {
			return err
		}

		fmt.Printf("Deleted term %s\n", id)
		return nil
	},
}

var glossaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all glossary terms",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := connectGlossaryDB(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		entries, err := database.ListTerms(ctx)
		if err != nil {
			return err
		}

		printEntries(entries)
		return nil
	},
}

var glossarySearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search glossary terms and explanations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		database, err := connectGlossaryDB(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		entries, err := database.SearchTerms(ctx, args[0])
		if err != nil {
			return err
		}

		printEntries(entries)
		return nil
	},
}

var glossaryImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Bulk-import glossary terms from a JSON file",
	Long:  "Import terms from a JSON file validated against schemas/glossary_import.schema.json. Existing terms have their explanations replaced.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		terms, err := schemas.LoadGlossaryImport(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()
		database, err := connectGlossaryDB(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		count, err := database.ImportTerms(ctx, terms)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d terms\n", count)
		return nil
	},
}

func printEntries(entries []types.GlossaryEntry) {
	if len(entries) == 0 {
		fmt.Println("No glossary terms found")
		return
	}
	for _, e := range entries {
		if e.Category != "" {
			fmt.Printf("%s  %-24s [%s]  %s\n", e.ID, e.Term, e.Category, e.Explanation)
		} else {
			fmt.Printf("%s  %-24s %s\n", e.ID, e.Term, e.Explanation)
		}
	}
}

func init() {
	glossaryAddCmd.Flags().StringVarP(&glossaryTerm, "term", "t", "", "The legal term (required)")
	glossaryAddCmd.Flags().StringVarP(&glossaryExplanation, "explanation", "e", "", "Plain-language explanation (required)")
	glossaryAddCmd.Flags().StringVarP(&glossaryCategory, "category", "c", "", "Optional grouping label")
	_ = glossaryAddCmd.MarkFlagRequired("term")
	_ = glossaryAddCmd.MarkFlagRequired("explanation")

	glossaryUpdateCmd.Flags().StringVarP(&glossaryExplanation, "explanation", "e", "", "New explanation")
	glossaryUpdateCmd.Flags().StringVarP(&glossaryCategory, "category", "c", "", "New category")
}
