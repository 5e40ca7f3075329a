// Package main provides the entry point for the Legal Simplifier CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "legal_agent",
	Short: "Legal document simplifier",
	Long:  "Legal Simplifier rewrites dense legal documents into plain language, scores readability before and after, and annotates legal terms with plain-language tooltips.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
