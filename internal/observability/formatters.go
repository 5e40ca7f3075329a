// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/legal-simplifier/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReadabilityReport outputs the formula scores and bands for a text.
func (p *Printer) PrintReadabilityReport(title string, report *types.ReadabilityReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	if report.TooShort() {
		sb.WriteString("Text too short for readability analysis\n")
		p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
		return
	}

	sb.WriteString(fmt.Sprintf("Flesch-Kincaid Grade:  %.2f\n", report.GradeLevel))
	sb.WriteString(fmt.Sprintf("Gunning Fog Index:     %.2f\n", report.FogIndex))
	sb.WriteString(fmt.Sprintf("Flesch Reading Ease:   %.2f\n", report.ReadingEase))
	sb.WriteString(fmt.Sprintf("SMOG Index:            %.2f\n", report.Smog))
	sb.WriteString(fmt.Sprintf("ARI:                   %.2f\n", report.ARI))
	sb.WriteString(fmt.Sprintf("Coleman-Liau Index:    %.2f\n", report.ColemanLiau))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Grade band: %s\n", report.GradeBand.Description()))
	sb.WriteString(fmt.Sprintf("Ease band:  %s\n", report.EaseBand.Description()))

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintChunks outputs a summary of how a document was chunked.
func (p *Printer) PrintChunks(chunks []types.Chunk) {
	if len(chunks) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total chunks: %d\n\n", len(chunks)))

	count := min(len(chunks), maxItemsToShow)
	for i := 0; i < count; i++ {
		chunk := chunks[i]
		sb.WriteString(fmt.Sprintf("#%d  %d sentences, %d chars\n", i+1, chunk.SentenceCount(), len(chunk.Text)))
		preview := chunk.Text
		if len(preview) > 40 {
			preview = preview[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", preview))
	}
	if len(chunks) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(chunks)-maxItemsToShow))
	}

	p.printBox("DOCUMENT CHUNKS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the glossary terms found in a document.
func (p *Printer) PrintMatches(matches []types.Match) {
	var sb strings.Builder

	if len(matches) == 0 {
		sb.WriteString("No glossary terms found\n")
		p.printBox("GLOSSARY TERMS", strings.TrimSuffix(sb.String(), "\n"))
		return
	}

	sb.WriteString(fmt.Sprintf("Terms found: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("• %s [%d:%d]\n", m.SurfaceText, m.Start, m.End))
		explanation := m.Explanation
		if len(explanation) > 44 {
			explanation = explanation[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", explanation))
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(matches)-maxItemsToShow))
	}

	p.printBox("GLOSSARY TERMS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStepTiming outputs a single pipeline step duration line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStepTiming(step string, seconds float64) {
	fmt.Fprintf(p.out, "  [%s] completed in %.2fs\n", step, seconds)
}
